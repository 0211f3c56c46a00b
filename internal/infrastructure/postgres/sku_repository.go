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

var _ repository.SkuRepository = (*SkuRepo)(nil)

const skuColumns = `id, name, slug, sku_number, product_id, description, is_active, sequence,
	created_at, updated_at, created_by, updated_by`

// SkuRepo raíz del agregado SKU sobre PostgreSQL.
type SkuRepo struct {
	q Querier
}

// NewSkuRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSkuRepository(q Querier) *SkuRepo {
	return &SkuRepo{q: q}
}

func scanSku(row pgx.Row) (*entity.Sku, error) {
	var s entity.Sku
	err := row.Scan(&s.ID, &s.Name, &s.Slug, &s.SkuNumber, &s.ProductID, &s.Description, &s.IsActive,
		&s.Sequence, &s.CreatedAt, &s.UpdatedAt, &s.CreatedBy, &s.UpdatedBy)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserta el SKU; el ID queda visible para las filas hijas dentro de la misma tx.
func (r *SkuRepo) Create(ctx context.Context, s *entity.Sku) error {
	query := `
		INSERT INTO skus (name, slug, sku_number, product_id, description, is_active, sequence,
			created_at, updated_at, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		s.Name, s.Slug, s.SkuNumber, s.ProductID, s.Description, s.IsActive, s.Sequence,
		s.CreatedAt, s.UpdatedAt, s.CreatedBy, s.UpdatedBy,
	).Scan(&s.ID)
	if err != nil {
		return mapError("insert sku", "sku", err)
	}
	return nil
}

func (r *SkuRepo) getOne(ctx context.Context, where string, arg any) (*entity.Sku, error) {
	s, err := scanSku(r.q.QueryRow(ctx, `SELECT `+skuColumns+` FROM skus WHERE `+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sku: %w", err)
	}
	return s, nil
}

func (r *SkuRepo) GetByID(ctx context.Context, id int64) (*entity.Sku, error) {
	return r.getOne(ctx, "id = $1", id)
}

func (r *SkuRepo) GetByName(ctx context.Context, name string) (*entity.Sku, error) {
	return r.getOne(ctx, "name = $1", name)
}

func (r *SkuRepo) GetBySlug(ctx context.Context, slug string) (*entity.Sku, error) {
	return r.getOne(ctx, "slug = $1", slug)
}

func (r *SkuRepo) GetBySkuNumber(ctx context.Context, skuNumber string) (*entity.Sku, error) {
	return r.getOne(ctx, "sku_number = $1", skuNumber)
}

// Update reescribe los escalares del SKU.
func (r *SkuRepo) Update(ctx context.Context, s *entity.Sku) error {
	query := `
		UPDATE skus SET name = $1, slug = $2, product_id = $3, description = $4, is_active = $5, sequence = $6,
			updated_at = $7, updated_by = $8
		WHERE id = $9`
	tag, err := r.q.Exec(ctx, query,
		s.Name, s.Slug, s.ProductID, s.Description, s.IsActive, s.Sequence, s.UpdatedAt, s.UpdatedBy, s.ID,
	)
	if err != nil {
		return mapError("update sku", "sku", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func skuWhere(f repository.SkuFilter) *whereBuilder {
	w := &whereBuilder{}
	if f.Name != nil {
		w.add("name ILIKE ?", likePattern(*f.Name))
	}
	if f.Slug != nil {
		w.add("slug = ?", *f.Slug)
	}
	if f.SkuNumber != nil {
		w.add("sku_number = ?", *f.SkuNumber)
	}
	if f.ProductID != nil {
		w.add("product_id = ?", *f.ProductID)
	}
	if f.IsActive != nil {
		w.add("is_active = ?", *f.IsActive)
	}
	return w
}

// List lista SKUs con filtros y paginación.
func (r *SkuRepo) List(ctx context.Context, f repository.SkuFilter, limit, offset int) ([]*entity.Sku, error) {
	w := skuWhere(f)
	query := `SELECT ` + skuColumns + ` FROM skus` + w.sql() +
		` ORDER BY sequence, id LIMIT ` + w.next(limit) + ` OFFSET ` + w.next(offset)
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list skus: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sku
	for rows.Next() {
		s, err := scanSku(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sku: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *SkuRepo) Count(ctx context.Context, f repository.SkuFilter) (int, error) {
	w := skuWhere(f)
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM skus`+w.sql(), w.args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count skus: %w", err)
	}
	return n, nil
}

// SetActive activa o desactiva un SKU (soft delete); las filas hijas se conservan.
func (r *SkuRepo) SetActive(ctx context.Context, id int64, active bool, actorID int64) error {
	return setActive(ctx, r.q, "skus", id, active, actorID)
}
