package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Provider representa un proveedor del negocio. Status indica si sigue activo.
type Provider struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty"`
	UserID      primitive.ObjectID  `bson:"userId"`
	Name        string              `bson:"name"`
	CategoryID  *primitive.ObjectID `bson:"categoryId"`
	Contact     string              `bson:"contact,omitempty"`
	Description string              `bson:"description,omitempty"`
	Status      bool                `bson:"status"`
	CreatedAt   time.Time           `bson:"createdAt"`
	DeletedAt   *time.Time          `bson:"deletedAt"`
}
