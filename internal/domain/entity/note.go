package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Note apunte libre del usuario, opcionalmente asociado a una categoría.
type Note struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty"`
	UserID      primitive.ObjectID  `bson:"userId"`
	Title       string              `bson:"title"`
	CategoryID  *primitive.ObjectID `bson:"categoryId"`
	Description string              `bson:"description"`
	CreatedAt   time.Time           `bson:"createdAt"`
	DeletedAt   *time.Time          `bson:"deletedAt"`
}
