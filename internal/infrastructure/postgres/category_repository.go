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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

const categoryColumns = `id, name, slug, description, category_type_id, parent_id, is_active, sequence,
	created_at, updated_at, created_by, updated_by`

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
// Los CHECK chk_category_hierarchy_rule y chk_category_not_self_parent respaldan las reglas de la aplicación.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CategoryTypeID, &c.ParentID,
		&c.IsActive, &c.Sequence, &c.CreatedAt, &c.UpdatedAt, &c.CreatedBy, &c.UpdatedBy)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepo) queryList(ctx context.Context, op, query string, args ...any) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Create persiste una categoría y asigna el ID generado.
func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	query := `
		INSERT INTO categories (name, slug, description, category_type_id, parent_id, is_active, sequence,
			created_at, updated_at, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		c.Name, c.Slug, c.Description, c.CategoryTypeID, c.ParentID, c.IsActive, c.Sequence,
		c.CreatedAt, c.UpdatedAt, c.CreatedBy, c.UpdatedBy,
	).Scan(&c.ID)
	if err != nil {
		return mapError("insert category", "category", err)
	}
	return nil
}

func (r *CategoryRepo) getOne(ctx context.Context, where string, arg any) (*entity.Category, error) {
	c, err := scanCategory(r.q.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE `+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// GetByID obtiene una categoría por ID (activa o no).
func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	return r.getOne(ctx, "id = $1", id)
}

// GetBySlug obtiene una categoría por slug.
func (r *CategoryRepo) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	return r.getOne(ctx, "slug = $1", slug)
}

// Update reescribe la fila completa (la aplicación ya fusionó el parche).
func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	query := `
		UPDATE categories SET name = $1, slug = $2, description = $3, category_type_id = $4, parent_id = $5,
			is_active = $6, sequence = $7, updated_at = $8, updated_by = $9
		WHERE id = $10`
	tag, err := r.q.Exec(ctx, query,
		c.Name, c.Slug, c.Description, c.CategoryTypeID, c.ParentID, c.IsActive, c.Sequence,
		c.UpdatedAt, c.UpdatedBy, c.ID,
	)
	if err != nil {
		return mapError("update category", "category", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func categoryWhere(f repository.CategoryFilter) *whereBuilder {
	w := &whereBuilder{}
	if f.Name != nil {
		w.add("name ILIKE ?", likePattern(*f.Name))
	}
	if f.Slug != nil {
		w.add("slug = ?", *f.Slug)
	}
	if f.CategoryTypeID != nil {
		w.add("category_type_id = ?", *f.CategoryTypeID)
	}
	if f.ParentID != nil {
		w.add("parent_id = ?", *f.ParentID)
	}
	if f.IsActive != nil {
		w.add("is_active = ?", *f.IsActive)
	}
	if f.TopLevel {
		w.raw("parent_id IS NULL")
	}
	return w
}

// List lista categorías con filtros y paginación, ordenadas por sequence.
func (r *CategoryRepo) List(ctx context.Context, f repository.CategoryFilter, limit, offset int) ([]*entity.Category, error) {
	w := categoryWhere(f)
	query := `SELECT ` + categoryColumns + ` FROM categories` + w.sql() +
		` ORDER BY sequence, id LIMIT ` + w.next(limit) + ` OFFSET ` + w.next(offset)
	return r.queryList(ctx, "list categories", query, w.args...)
}

// Count total de categorías que cumplen el filtro.
func (r *CategoryRepo) Count(ctx context.Context, f repository.CategoryFilter) (int, error) {
	w := categoryWhere(f)
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM categories`+w.sql(), w.args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return n, nil
}

// ListActiveChildren hijas directas activas de una categoría.
func (r *CategoryRepo) ListActiveChildren(ctx context.Context, parentID int64) ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE parent_id = $1 AND is_active ORDER BY sequence, id`
	return r.queryList(ctx, "list children", query, parentID)
}

// CountActiveChildren número de hijas directas activas.
func (r *CategoryRepo) CountActiveChildren(ctx context.Context, parentID int64) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM categories WHERE parent_id = $1 AND is_active`, parentID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count children: %w", err)
	}
	return n, nil
}

// CountActiveByType número de categorías activas asociadas a un tipo.
func (r *CategoryRepo) CountActiveByType(ctx context.Context, categoryTypeID int64) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM categories WHERE category_type_id = $1 AND is_active`, categoryTypeID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count categories by type: %w", err)
	}
	return n, nil
}

// SetActive activa o desactiva una categoría (soft delete).
func (r *CategoryRepo) SetActive(ctx context.Context, id int64, active bool, actorID int64) error {
	return setActive(ctx, r.q, "categories", id, active, actorID)
}
