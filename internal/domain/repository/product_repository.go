package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/JuanesPachon/Stockia/internal/domain/entity"
)

// ProductFilter filtros opcionales del listado de productos.
type ProductFilter struct {
	CategoryID *primitive.ObjectID
	Name       string // subcadena, insensible a mayúsculas
	Order      Order
}

// ProductUpdate campos modificables de un producto; nil = sin cambio.
type ProductUpdate struct {
	Name       *string
	CategoryID *primitive.ObjectID
	ProviderID *primitive.ObjectID
	Stock      *int
	Price      *float64
	ImageURL   *string
}

// ProductRepository puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id, userID primitive.ObjectID) (*entity.Product, error)
	List(ctx context.Context, userID primitive.ObjectID, filter ProductFilter) ([]*entity.Product, error)
	ExistsByName(ctx context.Context, userID primitive.ObjectID, name string, exclude *primitive.ObjectID) (bool, error)
	ExistsOwned(ctx context.Context, id, userID primitive.ObjectID) (bool, error)
	Update(ctx context.Context, id, userID primitive.ObjectID, upd ProductUpdate) (*entity.Product, error)
	SoftDelete(ctx context.Context, id, userID primitive.ObjectID) (bool, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*entity.Product, error)
}
