package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/JuanesPachon/Stockia/internal/domain/entity"
	"github.com/JuanesPachon/Stockia/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre MongoDB.
type ProductRepo struct {
	col *mongo.Collection
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db *mongo.Database) *ProductRepo {
	return &ProductRepo{col: db.Collection("products")}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	res, err := r.col.InsertOne(ctx, product)
	if err != nil {
		return wrapWriteErr("insert product", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		product.ID = id
	}
	return nil
}

// GetByID obtiene un producto vivo del usuario; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id, userID primitive.ObjectID) (*entity.Product, error) {
	var p entity.Product
	filter := bson.M{"_id": id, "userId": userID, "deletedAt": nil}
	if err := r.col.FindOne(ctx, filter).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &p, nil
}

// List devuelve los productos vivos del usuario con filtros opcionales por
// categoría y subcadena del nombre (insensible a mayúsculas).
func (r *ProductRepo) List(ctx context.Context, userID primitive.ObjectID, f repository.ProductFilter) ([]*entity.Product, error) {
	filter := bson.M{"userId": userID, "deletedAt": nil}
	if f.CategoryID != nil {
		filter["categoryId"] = *f.CategoryID
	}
	if f.Name != "" {
		filter["name"] = bson.M{"$regex": regexp.QuoteMeta(f.Name), "$options": "i"}
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: f.Order.Direction()}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	var list []*entity.Product
	if err := cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return list, nil
}

// ExistsByName verifica si hay otro producto vivo del usuario con ese nombre.
func (r *ProductRepo) ExistsByName(ctx context.Context, userID primitive.ObjectID, name string, exclude *primitive.ObjectID) (bool, error) {
	filter := bson.M{"name": name, "userId": userID, "deletedAt": nil}
	if exclude != nil {
		filter["_id"] = bson.M{"$ne": *exclude}
	}
	return exists(ctx, r.col, filter)
}

// ExistsOwned verifica que el producto exista, pertenezca al usuario y no
// tenga borrado lógico (validación de líneas de venta).
func (r *ProductRepo) ExistsOwned(ctx context.Context, id, userID primitive.ObjectID) (bool, error) {
	return exists(ctx, r.col, bson.M{"_id": id, "userId": userID, "deletedAt": nil})
}

// Update aplica un find-and-modify restringido a {_id, userId, deletedAt: null};
// (nil, nil) si el filtro no encontró nada.
func (r *ProductRepo) Update(ctx context.Context, id, userID primitive.ObjectID, upd repository.ProductUpdate) (*entity.Product, error) {
	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.CategoryID != nil {
		set["categoryId"] = *upd.CategoryID
	}
	if upd.ProviderID != nil {
		set["providerId"] = *upd.ProviderID
	}
	if upd.Stock != nil {
		set["stock"] = *upd.Stock
	}
	if upd.Price != nil {
		set["price"] = *upd.Price
	}
	if upd.ImageURL != nil {
		set["imageUrl"] = *upd.ImageURL
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id, userID)
	}

	filter := bson.M{"_id": id, "userId": userID, "deletedAt": nil}
	var p entity.Product
	err := r.col.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, returnAfter()).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, wrapWriteErr("update product", err)
	}
	return &p, nil
}

// SoftDelete marca el producto como borrado; false si no hubo match.
func (r *ProductRepo) SoftDelete(ctx context.Context, id, userID primitive.ObjectID) (bool, error) {
	filter := bson.M{"_id": id, "userId": userID, "deletedAt": nil}
	update := bson.M{"$set": bson.M{"deletedAt": time.Now()}}
	err := r.col.FindOneAndUpdate(ctx, filter, update).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("delete product: %w", err)
	}
	return true, nil
}

// FindByIDs trae los productos vivos con esos ids, indexados por id.
func (r *ProductRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*entity.Product, error) {
	out := make(map[primitive.ObjectID]*entity.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	filter := bson.M{"_id": bson.M{"$in": ids}, "deletedAt": nil}
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find products by ids: %w", err)
	}
	var list []*entity.Product
	if err := cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	for _, p := range list {
		out[p.ID] = p
	}
	return out, nil
}
