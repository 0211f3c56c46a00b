package dto

import "time"

// CreateCategoryTypeRequest entrada para crear un tipo de categoría.
type CreateCategoryTypeRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Sequence int    `json:"sequence,omitempty"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// UpdateCategoryTypeRequest patch parcial.
type UpdateCategoryTypeRequest struct {
	Name     *string `json:"name,omitempty"`
	Sequence *int    `json:"sequence,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// CategoryTypeResponse salida de un tipo de categoría.
type CategoryTypeResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Sequence  int       `json:"sequence"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy int64     `json:"created_by"`
	UpdatedBy int64     `json:"updated_by"`
}

// CategoryTypeListResponse lista paginada.
type CategoryTypeListResponse struct {
	Items []CategoryTypeResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
