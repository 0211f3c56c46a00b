package repository

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// CategoryFilter filtros opcionales para listar categorías (nil = sin filtro).
type CategoryFilter struct {
	Name           *string // coincidencia parcial, sin distinguir mayúsculas
	Slug           *string // exacto
	CategoryTypeID *int64
	ParentID       *int64
	IsActive       *bool
	TopLevel       bool // solo raíces (parent_id IS NULL)
}

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Los Get devuelven (nil, nil) si no existe.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	List(ctx context.Context, filter CategoryFilter, limit, offset int) ([]*entity.Category, error)
	Count(ctx context.Context, filter CategoryFilter) (int, error)
	ListActiveChildren(ctx context.Context, parentID int64) ([]*entity.Category, error)
	CountActiveChildren(ctx context.Context, parentID int64) (int, error)
	CountActiveByType(ctx context.Context, categoryTypeID int64) (int, error)
	SetActive(ctx context.Context, id int64, active bool, actorID int64) error
}
