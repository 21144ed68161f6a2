package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/JuanesPachon/Stockia/internal/domain/entity"
	"github.com/JuanesPachon/Stockia/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre MongoDB. Las ventas
// no llevan deletedAt: nunca se borran.
type SaleRepo struct {
	col *mongo.Collection
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(db *mongo.Database) *SaleRepo {
	return &SaleRepo{col: db.Collection("sales")}
}

// Create persiste una nueva venta.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	res, err := r.col.InsertOne(ctx, sale)
	if err != nil {
		return wrapWriteErr("insert sale", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		sale.ID = id
	}
	return nil
}

// GetByID obtiene una venta del usuario; (nil, nil) si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id, userID primitive.ObjectID) (*entity.Sale, error) {
	var s entity.Sale
	filter := bson.M{"_id": id, "userId": userID}
	if err := r.col.FindOne(ctx, filter).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find sale: %w", err)
	}
	return &s, nil
}

// List devuelve las ventas del usuario, con ventana de tiempo y filtro por
// producto contenido opcionales.
func (r *SaleRepo) List(ctx context.Context, userID primitive.ObjectID, f repository.SaleFilter) ([]*entity.Sale, error) {
	filter := bson.M{"userId": userID}
	if f.From != nil {
		filter["createdAt"] = bson.M{"$gte": *f.From}
	}
	if f.ProductID != nil {
		filter["products.productId"] = *f.ProductID
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: f.Order.Direction()}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	var list []*entity.Sale
	if err := cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode sales: %w", err)
	}
	return list, nil
}
