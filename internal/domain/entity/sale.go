package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SaleItem línea de venta: producto vendido y cantidad (mínimo 1).
type SaleItem struct {
	ProductID primitive.ObjectID `bson:"productId"`
	Quantity  int                `bson:"quantity"`
}

// Sale registra una venta. Las ventas son un libro inmutable: no tienen
// borrado lógico ni ruta de actualización.
type Sale struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId"`
	Products  []SaleItem         `bson:"products"`
	Total     float64            `bson:"total"`
	CreatedAt time.Time          `bson:"createdAt"`
}
