package repository

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// ProductRepository lectura de productos (el CRUD de productos vive fuera del catálogo).
type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
}
