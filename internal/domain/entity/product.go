package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product representa un producto del inventario. CategoryID y ProviderID son
// referencias opcionales; si están presentes deben apuntar a documentos vivos
// del mismo usuario.
type Product struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty"`
	UserID     primitive.ObjectID  `bson:"userId"`
	Name       string              `bson:"name"`
	CategoryID *primitive.ObjectID `bson:"categoryId"`
	ProviderID *primitive.ObjectID `bson:"providerId"`
	Stock      int                 `bson:"stock"`
	Price      float64             `bson:"price"`
	ImageURL   *string             `bson:"imageUrl"`
	CreatedAt  time.Time           `bson:"createdAt"`
	DeletedAt  *time.Time          `bson:"deletedAt"`
}
