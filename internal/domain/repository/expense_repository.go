package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/JuanesPachon/Stockia/internal/domain/entity"
)

// ExpenseFilter filtros opcionales del listado de gastos.
type ExpenseFilter struct {
	CategoryID *primitive.ObjectID
	Order      Order
}

// ExpenseUpdate campos modificables de un gasto; nil = sin cambio.
type ExpenseUpdate struct {
	Title       *string
	Amount      *float64
	CategoryID  *primitive.ObjectID
	ProviderID  *primitive.ObjectID
	Description *string
}

// ExpenseRepository puerto de persistencia para Expense (DIP).
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	GetByID(ctx context.Context, id, userID primitive.ObjectID) (*entity.Expense, error)
	List(ctx context.Context, userID primitive.ObjectID, filter ExpenseFilter) ([]*entity.Expense, error)
	ExistsByTitle(ctx context.Context, userID primitive.ObjectID, title string, exclude *primitive.ObjectID) (bool, error)
	Update(ctx context.Context, id, userID primitive.ObjectID, upd ExpenseUpdate) (*entity.Expense, error)
	SoftDelete(ctx context.Context, id, userID primitive.ObjectID) (bool, error)
}
