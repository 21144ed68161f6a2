package dto

import "time"

// CreateProductRequest cuerpo de POST /products. Llega como JSON o como campos
// de un formulario multipart cuando se adjunta imagen.
type CreateProductRequest struct {
	Name       string   `json:"name" form:"name" validate:"required,min=2,max=100"`
	CategoryID *string  `json:"categoryId" form:"categoryId" validate:"omitempty,objectid"`
	ProviderID *string  `json:"providerId" form:"providerId" validate:"omitempty,objectid"`
	Stock      *int     `json:"stock" form:"stock" validate:"required,min=0"`
	Price      *float64 `json:"price" form:"price" validate:"required,min=0,money"`
}

// UpdateProductRequest cuerpo de PUT /products/:id; campos ausentes no cambian.
type UpdateProductRequest struct {
	Name       *string  `json:"name" form:"name" validate:"omitempty,min=2,max=100"`
	CategoryID *string  `json:"categoryId" form:"categoryId" validate:"omitempty,objectid"`
	ProviderID *string  `json:"providerId" form:"providerId" validate:"omitempty,objectid"`
	Stock      *int     `json:"stock" form:"stock" validate:"omitempty,min=0"`
	Price      *float64 `json:"price" form:"price" validate:"omitempty,min=0,money"`
}

// ProductResponse proyección pública de un producto, con los campos de
// despliegue de la categoría y el proveedor resueltos por join de aplicación.
type ProductResponse struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Category  *RefResponse `json:"category"`
	Provider  *RefResponse `json:"provider"`
	Stock     int          `json:"stock"`
	Price     float64      `json:"price"`
	ImageURL  *string      `json:"imageUrl"`
	CreatedAt time.Time    `json:"createdAt"`
}
