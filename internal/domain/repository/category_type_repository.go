package repository

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// CategoryTypeRepository define el puerto de persistencia para CategoryType.
type CategoryTypeRepository interface {
	Create(ctx context.Context, ct *entity.CategoryType) error
	GetByID(ctx context.Context, id int64) (*entity.CategoryType, error)
	GetBySlug(ctx context.Context, slug string) (*entity.CategoryType, error)
	Update(ctx context.Context, ct *entity.CategoryType) error
	List(ctx context.Context, limit, offset int) ([]*entity.CategoryType, error)
	Count(ctx context.Context) (int, error)
	SetActive(ctx context.Context, id int64, active bool, actorID int64) error
}
