package dto

import "time"

// CreateProviderRequest cuerpo de POST /providers.
type CreateProviderRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	CategoryID  *string `json:"categoryId" validate:"omitempty,objectid"`
	Contact     string  `json:"contact" validate:"omitempty,max=100"`
	Description string  `json:"description" validate:"omitempty,max=800"`
	Status      *bool   `json:"status"`
}

// UpdateProviderRequest cuerpo de PUT /providers/:id; campos ausentes no cambian.
type UpdateProviderRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	CategoryID  *string `json:"categoryId" validate:"omitempty,objectid"`
	Contact     *string `json:"contact" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=800"`
	Status      *bool   `json:"status"`
}

// ProviderResponse proyección pública de un proveedor.
type ProviderResponse struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Category    *RefResponse `json:"category"`
	Contact     string       `json:"contact,omitempty"`
	Description string       `json:"description,omitempty"`
	Status      bool         `json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`
}
