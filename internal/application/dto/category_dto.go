package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría.
// Raíz: category_type_id informado y parent_id nulo. Hija: al revés.
type CreateCategoryRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=100"`
	Description    string `json:"description,omitempty"`
	CategoryTypeID *int64 `json:"category_type_id,omitempty"`
	ParentID       *int64 `json:"parent_id,omitempty"`
	IsActive       *bool  `json:"is_active,omitempty"`
	Sequence       int    `json:"sequence,omitempty"`
}

// UpdateCategoryRequest patch parcial. parent_id y category_type_id aceptan null explícito para
// poder mover una raíz bajo un padre (o al revés) en una sola petición.
type UpdateCategoryRequest struct {
	Name           *string         `json:"name,omitempty"`
	Description    *string         `json:"description,omitempty"`
	CategoryTypeID Optional[int64] `json:"category_type_id,omitzero" swaggertype:"integer"`
	ParentID       Optional[int64] `json:"parent_id,omitzero" swaggertype:"integer"`
	IsActive       *bool           `json:"is_active,omitempty"`
	Sequence       *int            `json:"sequence,omitempty"`
}

// CategoryFilterRequest filtros de listado (query string).
type CategoryFilterRequest struct {
	Name           string `query:"name"`
	Slug           string `query:"slug"`
	CategoryTypeID *int64 `query:"category_type_id"`
	ParentID       *int64 `query:"parent_id"`
	IsActive       *bool  `query:"is_active"`
}

// PathItemResponse elemento del breadcrumb. type ∈ {Category, Product, SKU}.
type PathItemResponse struct {
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	CategoryType *string `json:"category_type"`
	SkuNumber    string  `json:"sku_number,omitempty"`
	Type         string  `json:"type"`
}

// CategoryResponse salida de una categoría con sus descendientes activos y su full path.
type CategoryResponse struct {
	ID             int64              `json:"id"`
	Name           string             `json:"name"`
	Slug           string             `json:"slug"`
	Description    string             `json:"description"`
	CategoryTypeID *int64             `json:"category_type_id"`
	ParentID       *int64             `json:"parent_id"`
	IsActive       bool               `json:"is_active"`
	Sequence       int                `json:"sequence"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
	CreatedBy      int64              `json:"created_by"`
	UpdatedBy      int64              `json:"updated_by"`
	Children       []CategoryResponse `json:"children"`
	FullPath       []PathItemResponse `json:"full_path"`
}

// CategoryListResponse lista paginada de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
