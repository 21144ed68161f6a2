package dto

import "time"

// SaleItemRequest línea de venta del cuerpo de POST /sales.
type SaleItemRequest struct {
	ProductID string `json:"productId" validate:"required,objectid"`
	Quantity  *int   `json:"quantity" validate:"required,min=1"`
}

// CreateSaleRequest cuerpo de POST /sales.
type CreateSaleRequest struct {
	Products []SaleItemRequest `json:"products" validate:"required,min=1,dive"`
	Total    *float64          `json:"total" validate:"required,min=0,money"`
}

// SaleItemResponse línea de venta con el nombre del producto resuelto por join
// de aplicación; null si el producto fue borrado.
type SaleItemResponse struct {
	ProductID   string  `json:"productId"`
	ProductName *string `json:"productName"`
	Quantity    int     `json:"quantity"`
}

// SaleResponse proyección pública de una venta.
type SaleResponse struct {
	ID        string             `json:"id"`
	Products  []SaleItemResponse `json:"products"`
	Total     float64            `json:"total"`
	CreatedAt time.Time          `json:"createdAt"`
}
