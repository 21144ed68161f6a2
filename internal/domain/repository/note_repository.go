package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/JuanesPachon/Stockia/internal/domain/entity"
)

// NoteFilter filtros opcionales del listado de notas.
type NoteFilter struct {
	CategoryID *primitive.ObjectID
	Order      Order
}

// NoteUpdate campos modificables de una nota; nil = sin cambio.
type NoteUpdate struct {
	Title       *string
	CategoryID  *primitive.ObjectID
	Description *string
}

// NoteRepository puerto de persistencia para Note (DIP).
type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	GetByID(ctx context.Context, id, userID primitive.ObjectID) (*entity.Note, error)
	List(ctx context.Context, userID primitive.ObjectID, filter NoteFilter) ([]*entity.Note, error)
	ExistsByTitle(ctx context.Context, userID primitive.ObjectID, title string, exclude *primitive.ObjectID) (bool, error)
	Update(ctx context.Context, id, userID primitive.ObjectID, upd NoteUpdate) (*entity.Note, error)
	SoftDelete(ctx context.Context, id, userID primitive.ObjectID) (bool, error)
}
