package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	domcatalog "github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
	"github.com/jhoicas/Catalogo-api/pkg/slug"
)

// CategoryUseCase jerarquía de categorías: regla XOR, slugs únicos, full path y expansión de hijos.
type CategoryUseCase struct {
	repos    Repositories
	txRunner TxRunner
	cache    Cache
	log      *logger.Logger
	maxDepth int
	now      clock
}

// NewCategoryUseCase construye el caso de uso. repos se usa para lecturas fuera de transacción.
func NewCategoryUseCase(repos Repositories, txRunner TxRunner, cache Cache, log *logger.Logger, opts Options) *CategoryUseCase {
	cache, log = defaults(cache, log)
	return &CategoryUseCase{
		repos:    repos,
		txRunner: txRunner,
		cache:    cache,
		log:      log,
		maxDepth: opts.MaxDepth,
		now:      time.Now,
	}
}

// Create crea una raíz (con tipo) o una hija (con padre). El slug sale del nombre y es único global.
func (uc *CategoryUseCase) Create(ctx context.Context, actorID int64, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name, err := requiredName("category", in.Name)
	if err != nil {
		return nil, err
	}
	if err := domcatalog.ValidateHierarchy(in.ParentID, in.CategoryTypeID); err != nil {
		return nil, err
	}
	s := slug.Make(name)
	if s == "" {
		return nil, domain.Invalid("category", "el nombre '%s' no produce un slug válido", name)
	}

	var resp *dto.CategoryResponse
	err = uc.txRunner.Run(ctx, func(repos Repositories) error {
		if in.ParentID != nil {
			if err := ensureActiveCategory(ctx, repos, *in.ParentID); err != nil {
				return err
			}
		}
		if in.CategoryTypeID != nil {
			if err := ensureActiveCategoryType(ctx, repos, *in.CategoryTypeID); err != nil {
				return err
			}
		}
		existing, err := repos.Categories.GetBySlug(ctx, s)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.AlreadyExists("category", "ya existe una categoría con el slug '%s'", s)
		}

		c := &entity.Category{
			Name:           name,
			Slug:           s,
			Description:    strings.TrimSpace(in.Description),
			CategoryTypeID: in.CategoryTypeID,
			ParentID:       in.ParentID,
			IsActive:       boolOr(in.IsActive, true),
			Sequence:       in.Sequence,
		}
		c.Stamp(actorID, uc.now())
		if err := repos.Categories.Create(ctx, c); err != nil {
			return err
		}
		resp, err = newTreeLoader(repos, uc.maxDepth).build(ctx, c)
		return err
	})
	if err != nil {
		return nil, err
	}
	afterCommit(ctx, uc.cache)
	uc.log.Info().Int64("category_id", resp.ID).Int64("actor_id", actorID).Str("slug", resp.Slug).Msg("categoría creada")
	return resp, nil
}

// Update aplica un patch parcial. Si toca parent_id o category_type_id, la regla XOR se valida
// sobre la vista combinada (patch + valores guardados).
func (uc *CategoryUseCase) Update(ctx context.Context, actorID, id int64, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	var resp *dto.CategoryResponse
	err := uc.txRunner.Run(ctx, func(repos Repositories) error {
		current, err := repos.Categories.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.NotFound("category", "la categoría %d no existe", id)
		}
		merged := *current

		if in.Name != nil {
			name, err := requiredName("category", *in.Name)
			if err != nil {
				return err
			}
			if name != current.Name {
				s := slug.Make(name)
				if s == "" {
					return domain.Invalid("category", "el nombre '%s' no produce un slug válido", name)
				}
				other, err := repos.Categories.GetBySlug(ctx, s)
				if err != nil {
					return err
				}
				if other != nil && other.ID != id {
					return domain.AlreadyExists("category", "ya existe una categoría con el slug '%s'", s)
				}
				merged.Name, merged.Slug = name, s
			}
		}
		if in.Description != nil {
			merged.Description = strings.TrimSpace(*in.Description)
		}
		if in.ParentID.Set {
			merged.ParentID = in.ParentID.Ptr()
		}
		if in.CategoryTypeID.Set {
			merged.CategoryTypeID = in.CategoryTypeID.Ptr()
		}
		if in.ParentID.Set || in.CategoryTypeID.Set {
			if err := uc.validateMove(ctx, repos, current, &merged); err != nil {
				return err
			}
		}
		if in.IsActive != nil {
			if current.IsActive && !*in.IsActive {
				n, err := repos.Categories.CountActiveChildren(ctx, id)
				if err != nil {
					return err
				}
				if n > 0 {
					return domain.DependencyConflict("category", "no se puede desactivar la categoría: tiene %d categorías hijas activas", n)
				}
			}
			merged.IsActive = *in.IsActive
		}
		if in.Sequence != nil {
			merged.Sequence = *in.Sequence
		}

		merged.Touch(actorID, uc.now())
		if err := repos.Categories.Update(ctx, &merged); err != nil {
			return err
		}
		resp, err = newTreeLoader(repos, uc.maxDepth).build(ctx, &merged)
		return err
	})
	if err != nil {
		return nil, err
	}
	afterCommit(ctx, uc.cache)
	uc.log.Info().Int64("category_id", id).Int64("actor_id", actorID).Msg("categoría actualizada")
	return resp, nil
}

// validateMove revalida la jerarquía cuando el patch toca el padre o el tipo.
func (uc *CategoryUseCase) validateMove(ctx context.Context, repos Repositories, current, merged *entity.Category) error {
	if err := domcatalog.ValidateHierarchy(merged.ParentID, merged.CategoryTypeID); err != nil {
		return err
	}
	if err := domcatalog.ValidateNotSelfParent(merged.ID, merged.ParentID); err != nil {
		return err
	}
	if merged.ParentID != nil && !sameID(current.ParentID, merged.ParentID) {
		if err := ensureActiveCategory(ctx, repos, *merged.ParentID); err != nil {
			return err
		}
		below, err := newTreeLoader(repos, uc.maxDepth).isAncestor(ctx, merged.ID, *merged.ParentID)
		if err != nil {
			return err
		}
		if below {
			return domain.Invalid("category", "la categoría %d no puede moverse debajo de su propio subárbol", merged.ID)
		}
	}
	if merged.CategoryTypeID != nil && !sameID(current.CategoryTypeID, merged.CategoryTypeID) {
		if err := ensureActiveCategoryType(ctx, repos, *merged.CategoryTypeID); err != nil {
			return err
		}
	}
	return nil
}

// SoftDelete desactiva la categoría; se rechaza si tiene hijas activas (el mensaje lleva la cantidad).
func (uc *CategoryUseCase) SoftDelete(ctx context.Context, actorID, id int64) error {
	err := uc.txRunner.Run(ctx, func(repos Repositories) error {
		c, err := repos.Categories.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.NotFound("category", "la categoría %d no existe", id)
		}
		n, err := repos.Categories.CountActiveChildren(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.DependencyConflict("category", "no se puede eliminar la categoría: tiene %d categorías hijas activas", n)
		}
		return repos.Categories.SetActive(ctx, id, false, actorID)
	})
	if err != nil {
		return err
	}
	afterCommit(ctx, uc.cache)
	uc.log.Info().Int64("category_id", id).Int64("actor_id", actorID).Msg("categoría desactivada")
	return nil
}

// GetByID devuelve la categoría con descendientes activos y full path.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	key := fmt.Sprintf("id:%d", id)
	cached, gen, ok := uc.cache.GetCategory(ctx, key)
	if ok {
		return cached, nil
	}
	c, err := uc.repos.Categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NotFound("category", "la categoría %d no existe", id)
	}
	resp, err := newTreeLoader(uc.repos, uc.maxDepth).build(ctx, c)
	if err != nil {
		return nil, err
	}
	uc.cache.SetCategory(ctx, gen, key, resp)
	return resp, nil
}

// GetBySlug igual que GetByID pero por slug.
func (uc *CategoryUseCase) GetBySlug(ctx context.Context, s string) (*dto.CategoryResponse, error) {
	key := "slug:" + s
	cached, gen, ok := uc.cache.GetCategory(ctx, key)
	if ok {
		return cached, nil
	}
	c, err := uc.repos.Categories.GetBySlug(ctx, s)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NotFound("category", "no existe una categoría con el slug '%s'", s)
	}
	resp, err := newTreeLoader(uc.repos, uc.maxDepth).build(ctx, c)
	if err != nil {
		return nil, err
	}
	uc.cache.SetCategory(ctx, gen, key, resp)
	return resp, nil
}

// List lista categorías con filtros opcionales.
func (uc *CategoryUseCase) List(ctx context.Context, in dto.CategoryFilterRequest, page dto.PageRequest) (*dto.CategoryListResponse, error) {
	filter := repository.CategoryFilter{
		Name:           optString(in.Name),
		Slug:           optString(in.Slug),
		CategoryTypeID: in.CategoryTypeID,
		ParentID:       in.ParentID,
		IsActive:       in.IsActive,
	}
	return uc.list(ctx, filter, page)
}

// ListTopLevel lista las raíces (parent_id nulo).
func (uc *CategoryUseCase) ListTopLevel(ctx context.Context, page dto.PageRequest) (*dto.CategoryListResponse, error) {
	return uc.list(ctx, repository.CategoryFilter{TopLevel: true}, page)
}

// ListByType lista las categorías clasificadas directamente por el tipo (las raíces de ese tipo).
func (uc *CategoryUseCase) ListByType(ctx context.Context, categoryTypeID int64, page dto.PageRequest) (*dto.CategoryListResponse, error) {
	ct, err := uc.repos.CategoryTypes.GetByID(ctx, categoryTypeID)
	if err != nil {
		return nil, err
	}
	if ct == nil {
		return nil, domain.NotFound("category_type", "el tipo de categoría %d no existe", categoryTypeID)
	}
	return uc.list(ctx, repository.CategoryFilter{CategoryTypeID: &categoryTypeID}, page)
}

// ListChildren lista las hijas directas de parentID; 404 si el padre no existe.
func (uc *CategoryUseCase) ListChildren(ctx context.Context, parentID int64, page dto.PageRequest) (*dto.CategoryListResponse, error) {
	parent, err := uc.repos.Categories.GetByID(ctx, parentID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, domain.NotFound("category", "la categoría padre %d no existe", parentID)
	}
	return uc.list(ctx, repository.CategoryFilter{ParentID: &parentID}, page)
}

func (uc *CategoryUseCase) list(ctx context.Context, filter repository.CategoryFilter, page dto.PageRequest) (*dto.CategoryListResponse, error) {
	page = normalizePage(page)
	list, err := uc.repos.Categories.List(ctx, filter, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.repos.Categories.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	loader := newTreeLoader(uc.repos, uc.maxDepth)
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		resp, err := loader.build(ctx, c)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.CategoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

func ensureActiveCategory(ctx context.Context, repos Repositories, id int64) error {
	c, err := repos.Categories.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil || !c.IsActive {
		return domain.NotFound("category", "la categoría padre %d no existe o está inactiva", id)
	}
	return nil
}

func ensureActiveCategoryType(ctx context.Context, repos Repositories, id int64) error {
	ct, err := repos.CategoryTypes.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if ct == nil || !ct.IsActive {
		return domain.NotFound("category_type", "el tipo de categoría %d no existe o está inactivo", id)
	}
	return nil
}
