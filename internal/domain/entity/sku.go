package entity

import "github.com/shopspring/decimal"

// Sku raíz del agregado: es dueño exclusivo de sus PriceDetail y SkuAttributeValue.
type Sku struct {
	ID          int64
	Name        string
	Slug        string
	SkuNumber   string // 10 caracteres 0-9A-F, en mayúsculas, único
	ProductID   int64
	Description string
	IsActive    bool
	Sequence    int
	Audit
}

// PriceDetail precio de un SKU en una lista de precios a partir de una cantidad mínima.
// Único por (SkuID, PricelistID, MinimumQuantity).
type PriceDetail struct {
	ID              int64
	SkuID           int64
	PricelistID     int64
	Price           decimal.Decimal // > 0
	MinimumQuantity int             // >= 1
	Audit
}

// SkuAttributeValue valor de un atributo para un SKU. Único por (SkuID, AttributeID).
type SkuAttributeValue struct {
	ID          int64
	SkuID       int64
	AttributeID int64
	Value       string
	Audit
}
