package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Expense registra un gasto del negocio. (title, userId) es único entre los
// documentos no borrados.
type Expense struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty"`
	UserID      primitive.ObjectID  `bson:"userId"`
	Title       string              `bson:"title"`
	Amount      float64             `bson:"amount"`
	CategoryID  *primitive.ObjectID `bson:"categoryId"`
	ProviderID  *primitive.ObjectID `bson:"providerId"`
	Description string              `bson:"description,omitempty"`
	CreatedAt   time.Time           `bson:"createdAt"`
	DeletedAt   *time.Time          `bson:"deletedAt"`
}
