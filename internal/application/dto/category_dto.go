package dto

import "time"

// CreateCategoryRequest cuerpo de POST /categories.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=50,alphanum_es"`
	Description string `json:"description" validate:"omitempty,max=200"`
}

// UpdateCategoryRequest cuerpo de PUT /categories/:id; campos ausentes no cambian.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=50,alphanum_es"`
	Description *string `json:"description" validate:"omitempty,max=200"`
}

// CategoryResponse proyección pública de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
