package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/JuanesPachon/Stockia/internal/domain/entity"
	"github.com/JuanesPachon/Stockia/internal/domain/repository"
)

var _ repository.ProviderRepository = (*ProviderRepo)(nil)

// ProviderRepo implementación del puerto ProviderRepository sobre MongoDB.
type ProviderRepo struct {
	col *mongo.Collection
}

// NewProviderRepository construye el adaptador de persistencia para proveedores.
func NewProviderRepository(db *mongo.Database) *ProviderRepo {
	return &ProviderRepo{col: db.Collection("providers")}
}

// Create persiste un nuevo proveedor.
func (r *ProviderRepo) Create(ctx context.Context, provider *entity.Provider) error {
	res, err := r.col.InsertOne(ctx, provider)
	if err != nil {
		return wrapWriteErr("insert provider", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		provider.ID = id
	}
	return nil
}

// GetByID obtiene un proveedor vivo del usuario; (nil, nil) si no existe.
func (r *ProviderRepo) GetByID(ctx context.Context, id, userID primitive.ObjectID) (*entity.Provider, error) {
	var p entity.Provider
	filter := bson.M{"_id": id, "userId": userID, "deletedAt": nil}
	if err := r.col.FindOne(ctx, filter).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find provider: %w", err)
	}
	return &p, nil
}

// List devuelve los proveedores vivos del usuario, opcionalmente por categoría.
func (r *ProviderRepo) List(ctx context.Context, userID primitive.ObjectID, f repository.ProviderFilter) ([]*entity.Provider, error) {
	filter := bson.M{"userId": userID, "deletedAt": nil}
	if f.CategoryID != nil {
		filter["categoryId"] = *f.CategoryID
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: f.Order.Direction()}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	var list []*entity.Provider
	if err := cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode providers: %w", err)
	}
	return list, nil
}

// ExistsByName verifica si hay otro proveedor vivo del usuario con ese nombre.
func (r *ProviderRepo) ExistsByName(ctx context.Context, userID primitive.ObjectID, name string, exclude *primitive.ObjectID) (bool, error) {
	filter := bson.M{"name": name, "userId": userID, "deletedAt": nil}
	if exclude != nil {
		filter["_id"] = bson.M{"$ne": *exclude}
	}
	return exists(ctx, r.col, filter)
}

// ExistsOwned verifica que el proveedor exista, pertenezca al usuario y no
// tenga borrado lógico (chequeo de integridad referencial).
func (r *ProviderRepo) ExistsOwned(ctx context.Context, id, userID primitive.ObjectID) (bool, error) {
	return exists(ctx, r.col, bson.M{"_id": id, "userId": userID, "deletedAt": nil})
}

// Update aplica un find-and-modify restringido a {_id, userId, deletedAt: null};
// (nil, nil) si el filtro no encontró nada.
func (r *ProviderRepo) Update(ctx context.Context, id, userID primitive.ObjectID, upd repository.ProviderUpdate) (*entity.Provider, error) {
	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.CategoryID != nil {
		set["categoryId"] = *upd.CategoryID
	}
	if upd.Contact != nil {
		set["contact"] = *upd.Contact
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id, userID)
	}

	filter := bson.M{"_id": id, "userId": userID, "deletedAt": nil}
	var p entity.Provider
	err := r.col.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, returnAfter()).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, wrapWriteErr("update provider", err)
	}
	return &p, nil
}

// SoftDelete marca el proveedor como borrado; false si no hubo match.
func (r *ProviderRepo) SoftDelete(ctx context.Context, id, userID primitive.ObjectID) (bool, error) {
	filter := bson.M{"_id": id, "userId": userID, "deletedAt": nil}
	update := bson.M{"$set": bson.M{"deletedAt": time.Now()}}
	err := r.col.FindOneAndUpdate(ctx, filter, update).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("delete provider: %w", err)
	}
	return true, nil
}

// FindByIDs trae los proveedores vivos con esos ids, indexados por id.
func (r *ProviderRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*entity.Provider, error) {
	out := make(map[primitive.ObjectID]*entity.Provider, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	filter := bson.M{"_id": bson.M{"$in": ids}, "deletedAt": nil}
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find providers by ids: %w", err)
	}
	var list []*entity.Provider
	if err := cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode providers: %w", err)
	}
	for _, p := range list {
		out[p.ID] = p
	}
	return out, nil
}
