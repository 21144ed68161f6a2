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

var _ repository.NoteRepository = (*NoteRepo)(nil)

// NoteRepo implementación del puerto NoteRepository sobre MongoDB.
type NoteRepo struct {
	col *mongo.Collection
}

// NewNoteRepository construye el adaptador de persistencia para notas.
func NewNoteRepository(db *mongo.Database) *NoteRepo {
	return &NoteRepo{col: db.Collection("notes")}
}

// Create persiste una nueva nota.
func (r *NoteRepo) Create(ctx context.Context, note *entity.Note) error {
	res, err := r.col.InsertOne(ctx, note)
	if err != nil {
		return wrapWriteErr("insert note", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		note.ID = id
	}
	return nil
}

// GetByID obtiene una nota viva del usuario; (nil, nil) si no existe.
func (r *NoteRepo) GetByID(ctx context.Context, id, userID primitive.ObjectID) (*entity.Note, error) {
	var n entity.Note
	filter := bson.M{"_id": id, "userId": userID, "deletedAt": nil}
	if err := r.col.FindOne(ctx, filter).Decode(&n); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find note: %w", err)
	}
	return &n, nil
}

// List devuelve las notas vivas del usuario, opcionalmente por categoría.
func (r *NoteRepo) List(ctx context.Context, userID primitive.ObjectID, f repository.NoteFilter) ([]*entity.Note, error) {
	filter := bson.M{"userId": userID, "deletedAt": nil}
	if f.CategoryID != nil {
		filter["categoryId"] = *f.CategoryID
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: f.Order.Direction()}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	var list []*entity.Note
	if err := cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode notes: %w", err)
	}
	return list, nil
}

// ExistsByTitle verifica si hay otra nota viva del usuario con ese título.
func (r *NoteRepo) ExistsByTitle(ctx context.Context, userID primitive.ObjectID, title string, exclude *primitive.ObjectID) (bool, error) {
	filter := bson.M{"title": title, "userId": userID, "deletedAt": nil}
	if exclude != nil {
		filter["_id"] = bson.M{"$ne": *exclude}
	}
	return exists(ctx, r.col, filter)
}

// Update aplica un find-and-modify restringido a {_id, userId, deletedAt: null};
// (nil, nil) si el filtro no encontró nada.
func (r *NoteRepo) Update(ctx context.Context, id, userID primitive.ObjectID, upd repository.NoteUpdate) (*entity.Note, error) {
	set := bson.M{}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.CategoryID != nil {
		set["categoryId"] = *upd.CategoryID
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id, userID)
	}

	filter := bson.M{"_id": id, "userId": userID, "deletedAt": nil}
	var n entity.Note
	err := r.col.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, returnAfter()).Decode(&n)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, wrapWriteErr("update note", err)
	}
	return &n, nil
}

// SoftDelete marca la nota como borrada; false si no hubo match.
func (r *NoteRepo) SoftDelete(ctx context.Context, id, userID primitive.ObjectID) (bool, error) {
	filter := bson.M{"_id": id, "userId": userID, "deletedAt": nil}
	update := bson.M{"$set": bson.M{"deletedAt": time.Now()}}
	err := r.col.FindOneAndUpdate(ctx, filter, update).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("delete note: %w", err)
	}
	return true, nil
}
