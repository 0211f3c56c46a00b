package repository

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// AttributeRepository lectura en lote de atributos (el CRUD simple vive fuera del catálogo).
type AttributeRepository interface {
	ListActiveByIDs(ctx context.Context, ids []int64) ([]*entity.Attribute, error)
	ListByIDs(ctx context.Context, ids []int64) ([]*entity.Attribute, error)
}

// PricelistRepository lectura en lote de listas de precios.
type PricelistRepository interface {
	ListActiveByIDs(ctx context.Context, ids []int64) ([]*entity.Pricelist, error)
	ListByIDs(ctx context.Context, ids []int64) ([]*entity.Pricelist, error)
}
