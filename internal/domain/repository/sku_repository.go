package repository

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// SkuFilter filtros opcionales para listar SKUs.
type SkuFilter struct {
	Name      *string // parcial
	Slug      *string
	SkuNumber *string
	ProductID *int64
	IsActive  *bool
}

// SkuRepository puerto de persistencia para la raíz del agregado SKU.
type SkuRepository interface {
	// Create inserta y asigna ID (sin commit: el id queda visible dentro de la tx).
	Create(ctx context.Context, sku *entity.Sku) error
	GetByID(ctx context.Context, id int64) (*entity.Sku, error)
	GetByName(ctx context.Context, name string) (*entity.Sku, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Sku, error)
	GetBySkuNumber(ctx context.Context, skuNumber string) (*entity.Sku, error)
	Update(ctx context.Context, sku *entity.Sku) error
	List(ctx context.Context, filter SkuFilter, limit, offset int) ([]*entity.Sku, error)
	Count(ctx context.Context, filter SkuFilter) (int, error)
	SetActive(ctx context.Context, id int64, active bool, actorID int64) error
}

// PriceDetailRepository filas de precio; solo se escriben como parte del agregado SKU.
type PriceDetailRepository interface {
	Create(ctx context.Context, pd *entity.PriceDetail) error
	GetByID(ctx context.Context, id int64) (*entity.PriceDetail, error)
	Update(ctx context.Context, pd *entity.PriceDetail) error
	Delete(ctx context.Context, id int64) error
	ListBySku(ctx context.Context, skuID int64) ([]*entity.PriceDetail, error)
}

// SkuAttributeValueRepository valores de atributo; solo se escriben como parte del agregado SKU.
type SkuAttributeValueRepository interface {
	Create(ctx context.Context, v *entity.SkuAttributeValue) error
	DeleteBySku(ctx context.Context, skuID int64) (int64, error)
	ListBySku(ctx context.Context, skuID int64) ([]*entity.SkuAttributeValue, error)
}
