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

var _ repository.CategoryTypeRepository = (*CategoryTypeRepo)(nil)

const categoryTypeColumns = `id, name, slug, sequence, is_active, created_at, updated_at, created_by, updated_by`

// CategoryTypeRepo implementación del puerto CategoryTypeRepository sobre PostgreSQL.
type CategoryTypeRepo struct {
	q Querier
}

// NewCategoryTypeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryTypeRepository(q Querier) *CategoryTypeRepo {
	return &CategoryTypeRepo{q: q}
}

func scanCategoryType(row pgx.Row) (*entity.CategoryType, error) {
	var ct entity.CategoryType
	err := row.Scan(&ct.ID, &ct.Name, &ct.Slug, &ct.Sequence, &ct.IsActive,
		&ct.CreatedAt, &ct.UpdatedAt, &ct.CreatedBy, &ct.UpdatedBy)
	if err != nil {
		return nil, err
	}
	return &ct, nil
}

// Create persiste un tipo y asigna el ID generado.
func (r *CategoryTypeRepo) Create(ctx context.Context, ct *entity.CategoryType) error {
	query := `
		INSERT INTO category_types (name, slug, sequence, is_active, created_at, updated_at, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		ct.Name, ct.Slug, ct.Sequence, ct.IsActive, ct.CreatedAt, ct.UpdatedAt, ct.CreatedBy, ct.UpdatedBy,
	).Scan(&ct.ID)
	if err != nil {
		return mapError("insert category type", "category_type", err)
	}
	return nil
}

func (r *CategoryTypeRepo) getOne(ctx context.Context, where string, arg any) (*entity.CategoryType, error) {
	ct, err := scanCategoryType(r.q.QueryRow(ctx, `SELECT `+categoryTypeColumns+` FROM category_types WHERE `+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category type: %w", err)
	}
	return ct, nil
}

// GetByID obtiene un tipo por ID.
func (r *CategoryTypeRepo) GetByID(ctx context.Context, id int64) (*entity.CategoryType, error) {
	return r.getOne(ctx, "id = $1", id)
}

// GetBySlug obtiene un tipo por slug.
func (r *CategoryTypeRepo) GetBySlug(ctx context.Context, slug string) (*entity.CategoryType, error) {
	return r.getOne(ctx, "slug = $1", slug)
}

// Update actualiza los campos editables.
func (r *CategoryTypeRepo) Update(ctx context.Context, ct *entity.CategoryType) error {
	query := `
		UPDATE category_types SET name = $1, slug = $2, sequence = $3, is_active = $4, updated_at = $5, updated_by = $6
		WHERE id = $7`
	tag, err := r.q.Exec(ctx, query, ct.Name, ct.Slug, ct.Sequence, ct.IsActive, ct.UpdatedAt, ct.UpdatedBy, ct.ID)
	if err != nil {
		return mapError("update category type", "category_type", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista tipos ordenados por sequence.
func (r *CategoryTypeRepo) List(ctx context.Context, limit, offset int) ([]*entity.CategoryType, error) {
	query := `SELECT ` + categoryTypeColumns + ` FROM category_types ORDER BY sequence, id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list category types: %w", err)
	}
	defer rows.Close()
	var list []*entity.CategoryType
	for rows.Next() {
		ct, err := scanCategoryType(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category type: %w", err)
		}
		list = append(list, ct)
	}
	return list, rows.Err()
}

// Count total de tipos.
func (r *CategoryTypeRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM category_types`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count category types: %w", err)
	}
	return n, nil
}

// SetActive activa o desactiva un tipo (soft delete).
func (r *CategoryTypeRepo) SetActive(ctx context.Context, id int64, active bool, actorID int64) error {
	return setActive(ctx, r.q, "category_types", id, active, actorID)
}

// setActive cambia is_active y marca auditoría; ErrNotFound si la fila no existe.
func setActive(ctx context.Context, q Querier, table string, id int64, active bool, actorID int64) error {
	query := fmt.Sprintf(`UPDATE %s SET is_active = $1, updated_at = now(), updated_by = $2 WHERE id = $3`, table)
	tag, err := q.Exec(ctx, query, active, actorID, id)
	if err != nil {
		return fmt.Errorf("set active %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
