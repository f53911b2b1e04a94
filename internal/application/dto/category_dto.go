package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description"`
	ColorCode   string `json:"color_code" validate:"omitempty,hexcolor"`
	SortOrder   int    `json:"sort_order"`
	ParentID    string `json:"parent_id"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
}

// UpdateCategoryRequest entrada para actualizar una categoría.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	ColorCode   *string `json:"color_code" validate:"omitempty,hexcolor"`
	SortOrder   *int    `json:"sort_order"`
	ParentID    *string `json:"parent_id"`
	ImageURL    *string `json:"image_url" validate:"omitempty,url"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ColorCode   string    `json:"color_code,omitempty"`
	SortOrder   int       `json:"sort_order"`
	ParentID    string    `json:"parent_id,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryListResponse lista paginada de categorías.
type CategoryListResponse struct {
	Data []CategoryResponse `json:"data"`
	Page PageMeta           `json:"page"`
}
