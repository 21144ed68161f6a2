package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/JuanesPachon/Stockia/internal/domain/entity"
)

// CategoryUpdate campos modificables de una categoría; nil = sin cambio.
type CategoryUpdate struct {
	Name        *string
	Description *string
}

// CategoryRepository puerto de persistencia para Category (DIP).
// Todas las consultas están acotadas por userId y excluyen documentos con
// borrado lógico; Update y SoftDelete devuelven (nil, nil) / (false, nil)
// cuando el filtro {_id, userId, deletedAt: null} no encuentra nada.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id, userID primitive.ObjectID) (*entity.Category, error)
	List(ctx context.Context, userID primitive.ObjectID, order Order) ([]*entity.Category, error)
	ExistsByName(ctx context.Context, userID primitive.ObjectID, name string, exclude *primitive.ObjectID) (bool, error)
	ExistsOwned(ctx context.Context, id, userID primitive.ObjectID) (bool, error)
	Update(ctx context.Context, id, userID primitive.ObjectID, upd CategoryUpdate) (*entity.Category, error)
	SoftDelete(ctx context.Context, id, userID primitive.ObjectID) (bool, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*entity.Category, error)
}
