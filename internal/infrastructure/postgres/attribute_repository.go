package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var (
	_ repository.AttributeRepository = (*AttributeRepo)(nil)
	_ repository.PricelistRepository = (*PricelistRepo)(nil)
)

// AttributeRepo lectura en lote de atributos. data_type es un ENUM y se lee como texto.
type AttributeRepo struct {
	q Querier
}

func NewAttributeRepository(q Querier) *AttributeRepo {
	return &AttributeRepo{q: q}
}

func (r *AttributeRepo) list(ctx context.Context, onlyActive bool, ids []int64) ([]*entity.Attribute, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `
		SELECT id, name, code, data_type::text, uom, is_active, created_at, updated_at, created_by, updated_by
		FROM attributes WHERE id = ANY($1)`
	if onlyActive {
		query += ` AND is_active`
	}
	rows, err := r.q.Query(ctx, query+` ORDER BY id`, ids)
	if err != nil {
		return nil, fmt.Errorf("list attributes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Attribute
	for rows.Next() {
		var a entity.Attribute
		var dataType string
		if err := rows.Scan(&a.ID, &a.Name, &a.Code, &dataType, &a.UOM, &a.IsActive,
			&a.CreatedAt, &a.UpdatedAt, &a.CreatedBy, &a.UpdatedBy); err != nil {
			return nil, fmt.Errorf("scan attribute: %w", err)
		}
		a.DataType = entity.DataType(dataType)
		list = append(list, &a)
	}
	return list, rows.Err()
}

// ListActiveByIDs atributos activos entre los ids dados; los ausentes simplemente no aparecen.
func (r *AttributeRepo) ListActiveByIDs(ctx context.Context, ids []int64) ([]*entity.Attribute, error) {
	return r.list(ctx, true, ids)
}

func (r *AttributeRepo) ListByIDs(ctx context.Context, ids []int64) ([]*entity.Attribute, error) {
	return r.list(ctx, false, ids)
}

// PricelistRepo lectura en lote de listas de precios.
type PricelistRepo struct {
	q Querier
}

func NewPricelistRepository(q Querier) *PricelistRepo {
	return &PricelistRepo{q: q}
}

func (r *PricelistRepo) list(ctx context.Context, onlyActive bool, ids []int64) ([]*entity.Pricelist, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `
		SELECT id, name, code, description, is_active, created_at, updated_at, created_by, updated_by
		FROM pricelists WHERE id = ANY($1)`
	if onlyActive {
		query += ` AND is_active`
	}
	rows, err := r.q.Query(ctx, query+` ORDER BY id`, ids)
	if err != nil {
		return nil, fmt.Errorf("list pricelists: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pricelist
	for rows.Next() {
		var p entity.Pricelist
		if err := rows.Scan(&p.ID, &p.Name, &p.Code, &p.Description, &p.IsActive,
			&p.CreatedAt, &p.UpdatedAt, &p.CreatedBy, &p.UpdatedBy); err != nil {
			return nil, fmt.Errorf("scan pricelist: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *PricelistRepo) ListActiveByIDs(ctx context.Context, ids []int64) ([]*entity.Pricelist, error) {
	return r.list(ctx, true, ids)
}

func (r *PricelistRepo) ListByIDs(ctx context.Context, ids []int64) ([]*entity.Pricelist, error) {
	return r.list(ctx, false, ids)
}
