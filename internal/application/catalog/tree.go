package catalog

import (
	"context"
	"fmt"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	domcatalog "github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// treeLoader llena un Arena bajo demanda desde los repositorios y arma respuestas con
// full path y descendientes activos. Vive lo que dura una petición (o una transacción).
type treeLoader struct {
	repos     Repositories
	arena     *domcatalog.Arena
	entities  map[int64]*entity.Category
	typeNames map[int64]*string
}

func newTreeLoader(repos Repositories, maxDepth int) *treeLoader {
	return &treeLoader{
		repos:     repos,
		arena:     domcatalog.NewArena(maxDepth),
		entities:  make(map[int64]*entity.Category),
		typeNames: make(map[int64]*string),
	}
}

func (l *treeLoader) put(ctx context.Context, c *entity.Category) error {
	var typeName *string
	if c.CategoryTypeID != nil {
		name, err := l.typeName(ctx, *c.CategoryTypeID)
		if err != nil {
			return err
		}
		typeName = name
	}
	l.arena.Put(domcatalog.Node{
		ID:           c.ID,
		ParentID:     c.ParentID,
		Name:         c.Name,
		Slug:         c.Slug,
		CategoryType: typeName,
	})
	l.entities[c.ID] = c
	return nil
}

func (l *treeLoader) typeName(ctx context.Context, id int64) (*string, error) {
	if name, ok := l.typeNames[id]; ok {
		return name, nil
	}
	ct, err := l.repos.CategoryTypes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	var name *string
	if ct != nil {
		n := ct.Name
		name = &n
	}
	l.typeNames[id] = name
	return name, nil
}

// loadAncestors trae uno a uno los padres que faltan en el arena hasta llegar a una raíz.
func (l *treeLoader) loadAncestors(ctx context.Context, id int64) error {
	for {
		missing, ok, err := l.arena.MissingAncestor(id)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		c, err := l.repos.Categories.GetByID(ctx, missing)
		if err != nil {
			return err
		}
		if c == nil {
			return fmt.Errorf("%w: la categoría %d no existe", domain.ErrCorruptHierarchy, missing)
		}
		if err := l.put(ctx, c); err != nil {
			return err
		}
	}
}

func (l *treeLoader) fullPath(ctx context.Context, id int64) ([]entity.PathItem, error) {
	if err := l.loadAncestors(ctx, id); err != nil {
		return nil, err
	}
	return l.arena.FullPath(id)
}

// isAncestor indica si candidate está en la cadena de padres de id (incluido id).
func (l *treeLoader) isAncestor(ctx context.Context, candidate, id int64) (bool, error) {
	if err := l.loadAncestors(ctx, id); err != nil {
		return false, err
	}
	return l.arena.IsAncestor(candidate, id)
}

func (l *treeLoader) children(ctx context.Context, parentID int64) ([]*entity.Category, error) {
	if ids, ok := l.arena.Children(parentID); ok {
		list := make([]*entity.Category, 0, len(ids))
		for _, id := range ids {
			list = append(list, l.entities[id])
		}
		return list, nil
	}
	list, err := l.repos.Categories.ListActiveChildren(ctx, parentID)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(list))
	for _, c := range list {
		if err := l.put(ctx, c); err != nil {
			return nil, err
		}
		ids = append(ids, c.ID)
	}
	l.arena.SetChildren(parentID, ids)
	return list, nil
}

// build arma la respuesta de c con todos sus descendientes activos, cada uno con su full path.
func (l *treeLoader) build(ctx context.Context, c *entity.Category) (*dto.CategoryResponse, error) {
	if err := l.put(ctx, c); err != nil {
		return nil, err
	}
	return l.buildNode(ctx, c, 0, make(map[int64]struct{}))
}

func (l *treeLoader) buildNode(ctx context.Context, c *entity.Category, depth int, visiting map[int64]struct{}) (*dto.CategoryResponse, error) {
	if depth > l.arena.MaxDepth() {
		return nil, fmt.Errorf("%w: la categoría %d supera la profundidad máxima (%d)", domain.ErrCorruptHierarchy, c.ID, l.arena.MaxDepth())
	}
	if _, seen := visiting[c.ID]; seen {
		return nil, fmt.Errorf("%w: ciclo detectado en la categoría %d", domain.ErrCorruptHierarchy, c.ID)
	}
	visiting[c.ID] = struct{}{}
	defer delete(visiting, c.ID)

	path, err := l.fullPath(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	resp := toCategoryResponse(c, path)

	children, err := l.children(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	for _, child := range children {
		cr, err := l.buildNode(ctx, child, depth+1, visiting)
		if err != nil {
			return nil, err
		}
		resp.Children = append(resp.Children, *cr)
	}
	return resp, nil
}

func toCategoryResponse(c *entity.Category, path []entity.PathItem) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:             c.ID,
		Name:           c.Name,
		Slug:           c.Slug,
		Description:    c.Description,
		CategoryTypeID: c.CategoryTypeID,
		ParentID:       c.ParentID,
		IsActive:       c.IsActive,
		Sequence:       c.Sequence,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
		CreatedBy:      c.CreatedBy,
		UpdatedBy:      c.UpdatedBy,
		Children:       []dto.CategoryResponse{},
		FullPath:       toPathResponse(path),
	}
}

func toPathResponse(path []entity.PathItem) []dto.PathItemResponse {
	out := make([]dto.PathItemResponse, 0, len(path))
	for _, p := range path {
		out = append(out, dto.PathItemResponse{
			Name:         p.Name,
			Slug:         p.Slug,
			CategoryType: p.CategoryType,
			SkuNumber:    p.SkuNumber,
			Type:         string(p.Kind),
		})
	}
	return out
}
