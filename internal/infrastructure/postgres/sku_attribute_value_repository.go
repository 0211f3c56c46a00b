package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.SkuAttributeValueRepository = (*SkuAttributeValueRepo)(nil)

// SkuAttributeValueRepo valores de atributo por SKU; uq_sku_attribute evita repetir atributo.
type SkuAttributeValueRepo struct {
	q Querier
}

// NewSkuAttributeValueRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSkuAttributeValueRepository(q Querier) *SkuAttributeValueRepo {
	return &SkuAttributeValueRepo{q: q}
}

func (r *SkuAttributeValueRepo) Create(ctx context.Context, v *entity.SkuAttributeValue) error {
	query := `
		INSERT INTO sku_attribute_values (sku_id, attribute_id, value, created_at, updated_at, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		v.SkuID, v.AttributeID, v.Value, v.CreatedAt, v.UpdatedAt, v.CreatedBy, v.UpdatedBy,
	).Scan(&v.ID)
	if err != nil {
		return mapError("insert sku attribute value", "sku_attribute_value", err)
	}
	return nil
}

// DeleteBySku borra todos los valores del SKU y devuelve cuántos había.
func (r *SkuAttributeValueRepo) DeleteBySku(ctx context.Context, skuID int64) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM sku_attribute_values WHERE sku_id = $1`, skuID)
	if err != nil {
		return 0, fmt.Errorf("delete sku attribute values: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *SkuAttributeValueRepo) ListBySku(ctx context.Context, skuID int64) ([]*entity.SkuAttributeValue, error) {
	query := `
		SELECT id, sku_id, attribute_id, value, created_at, updated_at, created_by, updated_by
		FROM sku_attribute_values WHERE sku_id = $1 ORDER BY attribute_id`
	rows, err := r.q.Query(ctx, query, skuID)
	if err != nil {
		return nil, fmt.Errorf("list sku attribute values: %w", err)
	}
	defer rows.Close()
	var list []*entity.SkuAttributeValue
	for rows.Next() {
		var v entity.SkuAttributeValue
		if err := rows.Scan(&v.ID, &v.SkuID, &v.AttributeID, &v.Value,
			&v.CreatedAt, &v.UpdatedAt, &v.CreatedBy, &v.UpdatedBy); err != nil {
			return nil, fmt.Errorf("scan sku attribute value: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
