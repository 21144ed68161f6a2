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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre MongoDB.
// Todos los filtros incluyen userId y deletedAt: null; ese par es el único
// mecanismo de aislamiento por usuario.
type CategoryRepo struct {
	col *mongo.Collection
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(db *mongo.Database) *CategoryRepo {
	return &CategoryRepo{col: db.Collection("categories")}
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	res, err := r.col.InsertOne(ctx, category)
	if err != nil {
		return wrapWriteErr("insert category", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		category.ID = id
	}
	return nil
}

// GetByID obtiene una categoría viva del usuario; (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id, userID primitive.ObjectID) (*entity.Category, error) {
	var c entity.Category
	filter := bson.M{"_id": id, "userId": userID, "deletedAt": nil}
	if err := r.col.FindOne(ctx, filter).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	return &c, nil
}

// List devuelve las categorías vivas del usuario ordenadas por createdAt.
func (r *CategoryRepo) List(ctx context.Context, userID primitive.ObjectID, order repository.Order) ([]*entity.Category, error) {
	filter := bson.M{"userId": userID, "deletedAt": nil}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: order.Direction()}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	var list []*entity.Category
	if err := cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return list, nil
}

// ExistsByName verifica si hay otra categoría viva del usuario con ese nombre.
func (r *CategoryRepo) ExistsByName(ctx context.Context, userID primitive.ObjectID, name string, exclude *primitive.ObjectID) (bool, error) {
	filter := bson.M{"name": name, "userId": userID, "deletedAt": nil}
	if exclude != nil {
		filter["_id"] = bson.M{"$ne": *exclude}
	}
	return exists(ctx, r.col, filter)
}

// ExistsOwned verifica que la categoría exista, pertenezca al usuario y no
// tenga borrado lógico (chequeo de integridad referencial).
func (r *CategoryRepo) ExistsOwned(ctx context.Context, id, userID primitive.ObjectID) (bool, error) {
	return exists(ctx, r.col, bson.M{"_id": id, "userId": userID, "deletedAt": nil})
}

// Update aplica un find-and-modify restringido a {_id, userId, deletedAt: null};
// (nil, nil) si el filtro no encontró nada.
func (r *CategoryRepo) Update(ctx context.Context, id, userID primitive.ObjectID, upd repository.CategoryUpdate) (*entity.Category, error) {
	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id, userID)
	}

	filter := bson.M{"_id": id, "userId": userID, "deletedAt": nil}
	var c entity.Category
	err := r.col.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, returnAfter()).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, wrapWriteErr("update category", err)
	}
	return &c, nil
}

// SoftDelete marca la categoría como borrada; false si no hubo match.
func (r *CategoryRepo) SoftDelete(ctx context.Context, id, userID primitive.ObjectID) (bool, error) {
	filter := bson.M{"_id": id, "userId": userID, "deletedAt": nil}
	update := bson.M{"$set": bson.M{"deletedAt": time.Now()}}
	err := r.col.FindOneAndUpdate(ctx, filter, update).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("delete category: %w", err)
	}
	return true, nil
}

// FindByIDs trae las categorías vivas con esos ids, indexadas por id (join a
// nivel de aplicación para los campos de despliegue).
func (r *CategoryRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*entity.Category, error) {
	out := make(map[primitive.ObjectID]*entity.Category, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	filter := bson.M{"_id": bson.M{"$in": ids}, "deletedAt": nil}
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find categories by ids: %w", err)
	}
	var list []*entity.Category
	if err := cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	for _, c := range list {
		out[c.ID] = c
	}
	return out, nil
}
