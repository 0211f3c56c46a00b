package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceDetailInput tramo de precio nuevo. minimum_quantity por defecto 1.
type PriceDetailInput struct {
	PricelistID     int64           `json:"pricelist_id" validate:"required"`
	Price           decimal.Decimal `json:"price" swaggertype:"string"`
	MinimumQuantity *int            `json:"minimum_quantity,omitempty"`
}

// PriceDetailUpdateInput modificación de un tramo existente del mismo SKU.
type PriceDetailUpdateInput struct {
	ID              int64            `json:"id" validate:"required"`
	Price           *decimal.Decimal `json:"price,omitempty" swaggertype:"string"`
	MinimumQuantity *int             `json:"minimum_quantity,omitempty"`
}

// AttributeValueInput valor (texto) de un atributo para el SKU.
type AttributeValueInput struct {
	AttributeID int64  `json:"attribute_id" validate:"required"`
	Value       string `json:"value" validate:"required,min=1,max=50"`
}

// CreateSkuRequest crea el SKU con sus tramos y valores en una sola transacción.
type CreateSkuRequest struct {
	Name            string                `json:"name" validate:"required,min=1,max=100"`
	Description     string                `json:"description,omitempty"`
	ProductID       int64                 `json:"product_id" validate:"required"`
	SkuNumber       *string               `json:"sku_number,omitempty"`
	IsActive        *bool                 `json:"is_active,omitempty"`
	Sequence        int                   `json:"sequence,omitempty"`
	PriceDetails    []PriceDetailInput    `json:"price_details,omitempty"`
	AttributeValues []AttributeValueInput `json:"attribute_values,omitempty"`
}

// PriceDetailPatch cambios sobre los tramos de precio; se aplican en orden borrar → crear → actualizar.
type PriceDetailPatch struct {
	ToCreate []PriceDetailInput
	ToUpdate []PriceDetailUpdateInput
	ToDelete []int64
}

// Empty true si el patch no trae ningún cambio.
func (p PriceDetailPatch) Empty() bool {
	return len(p.ToCreate) == 0 && len(p.ToUpdate) == 0 && len(p.ToDelete) == 0
}

// UpdateSkuRequest patch parcial del agregado.
// attribute_values: ausente o null → sin cambios; [] → borra todos; lista → reemplaza todos.
type UpdateSkuRequest struct {
	Name                 *string                         `json:"name,omitempty"`
	Description          *string                         `json:"description,omitempty"`
	ProductID            *int64                          `json:"product_id,omitempty"`
	IsActive             *bool                           `json:"is_active,omitempty"`
	Sequence             *int                            `json:"sequence,omitempty"`
	PriceDetailsToCreate []PriceDetailInput              `json:"price_details_to_create,omitempty"`
	PriceDetailsToUpdate []PriceDetailUpdateInput        `json:"price_details_to_update,omitempty"`
	PriceDetailsToDelete []int64                         `json:"price_details_to_delete,omitempty"`
	AttributeValues      Optional[[]AttributeValueInput] `json:"attribute_values,omitzero" swaggertype:"array,object"`
}

// PriceDetailPatch agrupa los tres campos de tramos.
func (r UpdateSkuRequest) PriceDetailPatch() PriceDetailPatch {
	return PriceDetailPatch{
		ToCreate: r.PriceDetailsToCreate,
		ToUpdate: r.PriceDetailsToUpdate,
		ToDelete: r.PriceDetailsToDelete,
	}
}

// SkuFilterRequest filtros de listado (query string).
type SkuFilterRequest struct {
	Name      string `query:"name"`
	Slug      string `query:"slug"`
	SkuNumber string `query:"sku_number"`
	ProductID *int64 `query:"product_id"`
	IsActive  *bool  `query:"is_active"`
}

// PricelistSummary lista de precios embebida en un tramo.
type PricelistSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// PriceDetailSummary tramo de precio en la respuesta del SKU.
type PriceDetailSummary struct {
	ID              int64            `json:"id"`
	Price           decimal.Decimal  `json:"price" swaggertype:"string"`
	MinimumQuantity int              `json:"minimum_quantity"`
	Pricelist       PricelistSummary `json:"pricelist"`
}

// AttributeSummary atributo embebido en un valor.
type AttributeSummary struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	DataType string `json:"data_type"`
	UOM      string `json:"uom,omitempty"`
}

// AttributeValueSummary valor de atributo en la respuesta del SKU.
type AttributeValueSummary struct {
	ID        int64            `json:"id"`
	Value     string           `json:"value"`
	Attribute AttributeSummary `json:"attribute"`
}

// SkuResponse salida del agregado con tramos, valores y full path (categorías → producto → SKU).
type SkuResponse struct {
	ID                 int64                   `json:"id"`
	Name               string                  `json:"name"`
	Slug               string                  `json:"slug"`
	SkuNumber          string                  `json:"sku_number"`
	ProductID          int64                   `json:"product_id"`
	Description        string                  `json:"description"`
	IsActive           bool                    `json:"is_active"`
	Sequence           int                     `json:"sequence"`
	CreatedAt          time.Time               `json:"created_at"`
	UpdatedAt          time.Time               `json:"updated_at"`
	CreatedBy          int64                   `json:"created_by"`
	UpdatedBy          int64                   `json:"updated_by"`
	PriceDetails       []PriceDetailSummary    `json:"price_details"`
	SkuAttributeValues []AttributeValueSummary `json:"sku_attribute_values"`
	FullPath           []PathItemResponse      `json:"full_path"`
}

// SkuListResponse lista paginada de SKUs.
type SkuListResponse struct {
	Items []SkuResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}
