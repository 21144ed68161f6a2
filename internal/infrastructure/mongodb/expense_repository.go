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

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementación del puerto ExpenseRepository sobre MongoDB.
type ExpenseRepo struct {
	col *mongo.Collection
}

// NewExpenseRepository construye el adaptador de persistencia para gastos.
func NewExpenseRepository(db *mongo.Database) *ExpenseRepo {
	return &ExpenseRepo{col: db.Collection("expenses")}
}

// Create persiste un nuevo gasto.
func (r *ExpenseRepo) Create(ctx context.Context, expense *entity.Expense) error {
	res, err := r.col.InsertOne(ctx, expense)
	if err != nil {
		return wrapWriteErr("insert expense", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		expense.ID = id
	}
	return nil
}

// GetByID obtiene un gasto vivo del usuario; (nil, nil) si no existe.
func (r *ExpenseRepo) GetByID(ctx context.Context, id, userID primitive.ObjectID) (*entity.Expense, error) {
	var e entity.Expense
	filter := bson.M{"_id": id, "userId": userID, "deletedAt": nil}
	if err := r.col.FindOne(ctx, filter).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find expense: %w", err)
	}
	return &e, nil
}

// List devuelve los gastos vivos del usuario, opcionalmente por categoría.
func (r *ExpenseRepo) List(ctx context.Context, userID primitive.ObjectID, f repository.ExpenseFilter) ([]*entity.Expense, error) {
	filter := bson.M{"userId": userID, "deletedAt": nil}
	if f.CategoryID != nil {
		filter["categoryId"] = *f.CategoryID
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: f.Order.Direction()}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	var list []*entity.Expense
	if err := cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode expenses: %w", err)
	}
	return list, nil
}

// ExistsByTitle verifica si hay otro gasto vivo del usuario con ese título.
func (r *ExpenseRepo) ExistsByTitle(ctx context.Context, userID primitive.ObjectID, title string, exclude *primitive.ObjectID) (bool, error) {
	filter := bson.M{"title": title, "userId": userID, "deletedAt": nil}
	if exclude != nil {
		filter["_id"] = bson.M{"$ne": *exclude}
	}
	return exists(ctx, r.col, filter)
}

// Update aplica un find-and-modify restringido a {_id, userId, deletedAt: null};
// (nil, nil) si el filtro no encontró nada.
func (r *ExpenseRepo) Update(ctx context.Context, id, userID primitive.ObjectID, upd repository.ExpenseUpdate) (*entity.Expense, error) {
	set := bson.M{}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Amount != nil {
		set["amount"] = *upd.Amount
	}
	if upd.CategoryID != nil {
		set["categoryId"] = *upd.CategoryID
	}
	if upd.ProviderID != nil {
		set["providerId"] = *upd.ProviderID
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id, userID)
	}

	filter := bson.M{"_id": id, "userId": userID, "deletedAt": nil}
	var e entity.Expense
	err := r.col.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, returnAfter()).Decode(&e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, wrapWriteErr("update expense", err)
	}
	return &e, nil
}

// SoftDelete marca el gasto como borrado; false si no hubo match.
func (r *ExpenseRepo) SoftDelete(ctx context.Context, id, userID primitive.ObjectID) (bool, error) {
	filter := bson.M{"_id": id, "userId": userID, "deletedAt": nil}
	update := bson.M{"$set": bson.M{"deletedAt": time.Now()}}
	err := r.col.FindOneAndUpdate(ctx, filter, update).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("delete expense: %w", err)
	}
	return true, nil
}
