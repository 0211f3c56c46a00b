package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.PriceDetailRepository = (*PriceDetailRepo)(nil)

const priceDetailColumns = `id, sku_id, pricelist_id, price, minimum_quantity, created_at, updated_at, created_by, updated_by`

// PriceDetailRepo tramos de precio; uq_price_detail evita tramos repetidos.
type PriceDetailRepo struct {
	q Querier
}

// NewPriceDetailRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPriceDetailRepository(q Querier) *PriceDetailRepo {
	return &PriceDetailRepo{q: q}
}

func scanPriceDetail(row pgx.Row) (*entity.PriceDetail, error) {
	var pd entity.PriceDetail
	err := row.Scan(&pd.ID, &pd.SkuID, &pd.PricelistID, &pd.Price, &pd.MinimumQuantity,
		&pd.CreatedAt, &pd.UpdatedAt, &pd.CreatedBy, &pd.UpdatedBy)
	if err != nil {
		return nil, err
	}
	return &pd, nil
}

func (r *PriceDetailRepo) Create(ctx context.Context, pd *entity.PriceDetail) error {
	query := `
		INSERT INTO price_details (sku_id, pricelist_id, price, minimum_quantity, created_at, updated_at, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		pd.SkuID, pd.PricelistID, pd.Price, pd.MinimumQuantity, pd.CreatedAt, pd.UpdatedAt, pd.CreatedBy, pd.UpdatedBy,
	).Scan(&pd.ID)
	if err != nil {
		return mapError("insert price detail", "price_detail", err)
	}
	return nil
}

func (r *PriceDetailRepo) GetByID(ctx context.Context, id int64) (*entity.PriceDetail, error) {
	pd, err := scanPriceDetail(r.q.QueryRow(ctx, `SELECT `+priceDetailColumns+` FROM price_details WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get price detail: %w", err)
	}
	return pd, nil
}

// Update cambia precio y cantidad mínima; sku y lista de precios son inmutables.
func (r *PriceDetailRepo) Update(ctx context.Context, pd *entity.PriceDetail) error {
	query := `
		UPDATE price_details SET price = $1, minimum_quantity = $2, updated_at = $3, updated_by = $4
		WHERE id = $5`
	tag, err := r.q.Exec(ctx, query, pd.Price, pd.MinimumQuantity, pd.UpdatedAt, pd.UpdatedBy, pd.ID)
	if err != nil {
		return mapError("update price detail", "price_detail", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra físicamente un tramo.
func (r *PriceDetailRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM price_details WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete price detail: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListBySku tramos de un SKU ordenados por lista y cantidad mínima.
func (r *PriceDetailRepo) ListBySku(ctx context.Context, skuID int64) ([]*entity.PriceDetail, error) {
	query := `SELECT ` + priceDetailColumns + ` FROM price_details WHERE sku_id = $1 ORDER BY pricelist_id, minimum_quantity, id`
	rows, err := r.q.Query(ctx, query, skuID)
	if err != nil {
		return nil, fmt.Errorf("list price details: %w", err)
	}
	defer rows.Close()
	var list []*entity.PriceDetail
	for rows.Next() {
		pd, err := scanPriceDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan price detail: %w", err)
		}
		list = append(list, pd)
	}
	return list, rows.Err()
}
