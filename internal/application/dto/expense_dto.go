package dto

import "time"

// CreateExpenseRequest cuerpo de POST /expenses.
type CreateExpenseRequest struct {
	Title       string   `json:"title" validate:"required,min=2,max=100,text_es"`
	Amount      *float64 `json:"amount" validate:"required,min=0,money"`
	CategoryID  *string  `json:"categoryId" validate:"omitempty,objectid"`
	ProviderID  *string  `json:"providerId" validate:"omitempty,objectid"`
	Description string   `json:"description" validate:"omitempty,max=1000"`
}

// UpdateExpenseRequest cuerpo de PUT /expenses/:id; campos ausentes no cambian.
type UpdateExpenseRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=2,max=100,text_es"`
	Amount      *float64 `json:"amount" validate:"omitempty,min=0,money"`
	CategoryID  *string  `json:"categoryId" validate:"omitempty,objectid"`
	ProviderID  *string  `json:"providerId" validate:"omitempty,objectid"`
	Description *string  `json:"description" validate:"omitempty,max=1000"`
}

// ExpenseResponse proyección pública de un gasto, con los campos de despliegue
// de categoría y proveedor resueltos por join de aplicación.
type ExpenseResponse struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Amount      float64      `json:"amount"`
	Category    *RefResponse `json:"category"`
	Provider    *RefResponse `json:"provider"`
	Description string       `json:"description,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}
