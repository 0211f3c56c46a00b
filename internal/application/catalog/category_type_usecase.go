package catalog

import (
	"context"
	"time"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
	"github.com/jhoicas/Catalogo-api/pkg/slug"
)

// CategoryTypeUseCase ciclo de vida de los tipos de categoría.
type CategoryTypeUseCase struct {
	repos    Repositories
	txRunner TxRunner
	cache    Cache
	log      *logger.Logger
	now      clock
}

// NewCategoryTypeUseCase construye el caso de uso.
func NewCategoryTypeUseCase(repos Repositories, txRunner TxRunner, cache Cache, log *logger.Logger) *CategoryTypeUseCase {
	cache, log = defaults(cache, log)
	return &CategoryTypeUseCase{repos: repos, txRunner: txRunner, cache: cache, log: log, now: time.Now}
}

// Create crea un tipo; el slug derivado del nombre debe ser único.
func (uc *CategoryTypeUseCase) Create(ctx context.Context, actorID int64, in dto.CreateCategoryTypeRequest) (*dto.CategoryTypeResponse, error) {
	name, err := requiredName("category_type", in.Name)
	if err != nil {
		return nil, err
	}
	s := slug.Make(name)
	if s == "" {
		return nil, domain.Invalid("category_type", "el nombre '%s' no produce un slug válido", name)
	}
	ct := &entity.CategoryType{
		Name:     name,
		Slug:     s,
		Sequence: in.Sequence,
		IsActive: boolOr(in.IsActive, true),
	}
	ct.Stamp(actorID, uc.now())
	err = uc.txRunner.Run(ctx, func(repos Repositories) error {
		existing, err := repos.CategoryTypes.GetBySlug(ctx, s)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.AlreadyExists("category_type", "ya existe un tipo de categoría con el slug '%s'", s)
		}
		return repos.CategoryTypes.Create(ctx, ct)
	})
	if err != nil {
		return nil, err
	}
	afterCommit(ctx, uc.cache)
	uc.log.Info().Int64("category_type_id", ct.ID).Int64("actor_id", actorID).Msg("tipo de categoría creado")
	return toCategoryTypeResponse(ct), nil
}

// GetByID obtiene un tipo por ID.
func (uc *CategoryTypeUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoryTypeResponse, error) {
	ct, err := uc.repos.CategoryTypes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ct == nil {
		return nil, domain.NotFound("category_type", "el tipo de categoría %d no existe", id)
	}
	return toCategoryTypeResponse(ct), nil
}

// List lista los tipos con paginación.
func (uc *CategoryTypeUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.CategoryTypeListResponse, error) {
	page = normalizePage(page)
	list, err := uc.repos.CategoryTypes.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.repos.CategoryTypes.Count(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryTypeResponse, 0, len(list))
	for _, ct := range list {
		items = append(items, *toCategoryTypeResponse(ct))
	}
	return &dto.CategoryTypeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Update aplica un patch parcial; un nombre nuevo regenera el slug.
func (uc *CategoryTypeUseCase) Update(ctx context.Context, actorID, id int64, in dto.UpdateCategoryTypeRequest) (*dto.CategoryTypeResponse, error) {
	var out *entity.CategoryType
	err := uc.txRunner.Run(ctx, func(repos Repositories) error {
		ct, err := repos.CategoryTypes.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if ct == nil {
			return domain.NotFound("category_type", "el tipo de categoría %d no existe", id)
		}
		if in.Name != nil {
			name, err := requiredName("category_type", *in.Name)
			if err != nil {
				return err
			}
			s := slug.Make(name)
			if s == "" {
				return domain.Invalid("category_type", "el nombre '%s' no produce un slug válido", name)
			}
			other, err := repos.CategoryTypes.GetBySlug(ctx, s)
			if err != nil {
				return err
			}
			if other != nil && other.ID != id {
				return domain.AlreadyExists("category_type", "ya existe un tipo de categoría con el slug '%s'", s)
			}
			ct.Name, ct.Slug = name, s
		}
		if in.Sequence != nil {
			ct.Sequence = *in.Sequence
		}
		if in.IsActive != nil {
			if ct.IsActive && !*in.IsActive {
				n, err := repos.Categories.CountActiveByType(ctx, id)
				if err != nil {
					return err
				}
				if n > 0 {
					return domain.DependencyConflict("category_type", "no se puede desactivar el tipo de categoría: tiene %d categorías activas", n)
				}
			}
			ct.IsActive = *in.IsActive
		}
		ct.Touch(actorID, uc.now())
		if err := repos.CategoryTypes.Update(ctx, ct); err != nil {
			return err
		}
		out = ct
		return nil
	})
	if err != nil {
		return nil, err
	}
	afterCommit(ctx, uc.cache)
	uc.log.Info().Int64("category_type_id", id).Int64("actor_id", actorID).Msg("tipo de categoría actualizado")
	return toCategoryTypeResponse(out), nil
}

// SoftDelete desactiva el tipo; se rechaza mientras clasifique categorías activas.
func (uc *CategoryTypeUseCase) SoftDelete(ctx context.Context, actorID, id int64) error {
	err := uc.txRunner.Run(ctx, func(repos Repositories) error {
		ct, err := repos.CategoryTypes.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if ct == nil {
			return domain.NotFound("category_type", "el tipo de categoría %d no existe", id)
		}
		n, err := repos.Categories.CountActiveByType(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.DependencyConflict("category_type", "no se puede eliminar el tipo de categoría: tiene %d categorías activas", n)
		}
		return repos.CategoryTypes.SetActive(ctx, id, false, actorID)
	})
	if err != nil {
		return err
	}
	afterCommit(ctx, uc.cache)
	uc.log.Info().Int64("category_type_id", id).Int64("actor_id", actorID).Msg("tipo de categoría desactivado")
	return nil
}

func toCategoryTypeResponse(ct *entity.CategoryType) *dto.CategoryTypeResponse {
	return &dto.CategoryTypeResponse{
		ID:        ct.ID,
		Name:      ct.Name,
		Slug:      ct.Slug,
		Sequence:  ct.Sequence,
		IsActive:  ct.IsActive,
		CreatedAt: ct.CreatedAt,
		UpdatedAt: ct.UpdatedAt,
		CreatedBy: ct.CreatedBy,
		UpdatedBy: ct.UpdatedBy,
	}
}
