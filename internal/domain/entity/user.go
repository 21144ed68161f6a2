package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User representa al dueño del negocio. Password siempre almacena el hash bcrypt,
// nunca el texto plano.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	Password     string             `bson:"password"`
	BusinessName string             `bson:"businessName,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
}
