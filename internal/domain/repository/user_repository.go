package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/JuanesPachon/Stockia/internal/domain/entity"
)

// UserRepository puerto de persistencia para User (DIP).
// Los métodos Get* devuelven (nil, nil) cuando no hay documento.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
