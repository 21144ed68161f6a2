package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/JuanesPachon/Stockia/internal/domain/entity"
)

// SaleFilter filtros opcionales del listado de ventas. From acota createdAt
// por abajo (ventana de tiempo calculada en el caso de uso).
type SaleFilter struct {
	From      *time.Time
	ProductID *primitive.ObjectID
	Order     Order
}

// SaleRepository puerto de persistencia para Sale (DIP). Las ventas no tienen
// actualización ni borrado: libro inmutable.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id, userID primitive.ObjectID) (*entity.Sale, error)
	List(ctx context.Context, userID primitive.ObjectID, filter SaleFilter) ([]*entity.Sale, error)
}
