package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/JuanesPachon/Stockia/internal/domain/entity"
)

// ProviderFilter filtros opcionales del listado de proveedores.
type ProviderFilter struct {
	CategoryID *primitive.ObjectID
	Order      Order
}

// ProviderUpdate campos modificables de un proveedor; nil = sin cambio.
type ProviderUpdate struct {
	Name        *string
	CategoryID  *primitive.ObjectID
	Contact     *string
	Description *string
	Status      *bool
}

// ProviderRepository puerto de persistencia para Provider (DIP).
type ProviderRepository interface {
	Create(ctx context.Context, provider *entity.Provider) error
	GetByID(ctx context.Context, id, userID primitive.ObjectID) (*entity.Provider, error)
	List(ctx context.Context, userID primitive.ObjectID, filter ProviderFilter) ([]*entity.Provider, error)
	ExistsByName(ctx context.Context, userID primitive.ObjectID, name string, exclude *primitive.ObjectID) (bool, error)
	ExistsOwned(ctx context.Context, id, userID primitive.ObjectID) (bool, error)
	Update(ctx context.Context, id, userID primitive.ObjectID, upd ProviderUpdate) (*entity.Provider, error)
	SoftDelete(ctx context.Context, id, userID primitive.ObjectID) (bool, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*entity.Provider, error)
}
