package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category agrupa productos, proveedores, notas y gastos de un usuario.
// (name, userId) es único entre los documentos no borrados.
type Category struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      primitive.ObjectID `bson:"userId"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
	DeletedAt   *time.Time         `bson:"deletedAt"`
}
