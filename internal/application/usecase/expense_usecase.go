package usecase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/JuanesPachon/Stockia/internal/application/dto"
	"github.com/JuanesPachon/Stockia/internal/domain"
	"github.com/JuanesPachon/Stockia/internal/domain/entity"
	"github.com/JuanesPachon/Stockia/internal/domain/repository"
)

// ExpenseUseCase servicio de dominio para gastos.
type ExpenseUseCase struct {
	guard
	expenses   repository.ExpenseRepository
	categories repository.CategoryRepository
	providers  repository.ProviderRepository
}

// NewExpenseUseCase construye el servicio.
func NewExpenseUseCase(
	users repository.UserRepository,
	expenses repository.ExpenseRepository,
	categories repository.CategoryRepository,
	providers repository.ProviderRepository,
) *ExpenseUseCase {
	return &ExpenseUseCase{
		guard:      guard{users: users},
		expenses:   expenses,
		categories: categories,
		providers:  providers,
	}
}

// ExpenseListQuery filtros del listado de gastos.
type ExpenseListQuery struct {
	CategoryID *string
	Order      repository.Order
}

// Create crea un gasto con título único por usuario.
func (uc *ExpenseUseCase) Create(ctx context.Context, userID string, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	uid, err := uc.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	categoryID, err := parseOptionalID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	providerID, err := parseOptionalID(in.ProviderID)
	if err != nil {
		return nil, err
	}
	if err := checkCategoryRef(ctx, uc.categories, categoryID, uid); err != nil {
		return nil, err
	}
	if err := checkProviderRef(ctx, uc.providers, providerID, uid); err != nil {
		return nil, err
	}

	taken, err := uc.expenses.ExistsByTitle(ctx, uid, in.Title, nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrDuplicate
	}

	expense := &entity.Expense{
		UserID:      uid,
		Title:       in.Title,
		Amount:      *in.Amount,
		CategoryID:  categoryID,
		ProviderID:  providerID,
		Description: in.Description,
		CreatedAt:   time.Now(),
	}
	if err := uc.expenses.Create(ctx, expense); err != nil {
		return nil, err
	}
	return uc.respond(ctx, expense)
}

// List devuelve los gastos vivos del usuario con sus referencias resueltas.
func (uc *ExpenseUseCase) List(ctx context.Context, userID string, q ExpenseListQuery) ([]*dto.ExpenseResponse, error) {
	uid, err := uc.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	categoryID, err := parseOptionalID(q.CategoryID)
	if err != nil {
		return nil, err
	}
	list, err := uc.expenses.List(ctx, uid, repository.ExpenseFilter{
		CategoryID: categoryID,
		Order:      q.Order,
	})
	if err != nil {
		return nil, err
	}

	catIDs := make([]primitive.ObjectID, 0, len(list))
	provIDs := make([]primitive.ObjectID, 0, len(list))
	for _, e := range list {
		if e.CategoryID != nil {
			catIDs = append(catIDs, *e.CategoryID)
		}
		if e.ProviderID != nil {
			provIDs = append(provIDs, *e.ProviderID)
		}
	}
	cats, err := uc.categories.FindByIDs(ctx, catIDs)
	if err != nil {
		return nil, err
	}
	provs, err := uc.providers.FindByIDs(ctx, provIDs)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toExpenseResponse(e, categoryRef(cats, e.CategoryID), providerRef(provs, e.ProviderID)))
	}
	return out, nil
}

// GetByID devuelve un gasto del usuario; domain.ErrNotFound si no existe o no
// le pertenece.
func (uc *ExpenseUseCase) GetByID(ctx context.Context, userID, id string) (*dto.ExpenseResponse, error) {
	uid, err := uc.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	eid, err := parseID(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	expense, err := uc.expenses.GetByID(ctx, eid, uid)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, domain.ErrNotFound
	}
	return uc.respond(ctx, expense)
}

// Update modifica un gasto del usuario.
func (uc *ExpenseUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	uid, err := uc.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	eid, err := parseID(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	categoryID, err := parseOptionalID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	providerID, err := parseOptionalID(in.ProviderID)
	if err != nil {
		return nil, err
	}
	if err := checkCategoryRef(ctx, uc.categories, categoryID, uid); err != nil {
		return nil, err
	}
	if err := checkProviderRef(ctx, uc.providers, providerID, uid); err != nil {
		return nil, err
	}

	if in.Title != nil {
		taken, err := uc.expenses.ExistsByTitle(ctx, uid, *in.Title, &eid)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrDuplicate
		}
	}

	expense, err := uc.expenses.Update(ctx, eid, uid, repository.ExpenseUpdate{
		Title:       in.Title,
		Amount:      in.Amount,
		CategoryID:  categoryID,
		ProviderID:  providerID,
		Description: in.Description,
	})
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, domain.ErrNotFound
	}
	return uc.respond(ctx, expense)
}

// Delete marca el gasto como borrado; not_found si no hubo match.
func (uc *ExpenseUseCase) Delete(ctx context.Context, userID, id string) error {
	uid, err := uc.requireUser(ctx, userID)
	if err != nil {
		return err
	}
	eid, err := parseID(id)
	if err != nil {
		return domain.ErrNotFound
	}
	ok, err := uc.expenses.SoftDelete(ctx, eid, uid)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func (uc *ExpenseUseCase) respond(ctx context.Context, e *entity.Expense) (*dto.ExpenseResponse, error) {
	var catIDs, provIDs []primitive.ObjectID
	if e.CategoryID != nil {
		catIDs = append(catIDs, *e.CategoryID)
	}
	if e.ProviderID != nil {
		provIDs = append(provIDs, *e.ProviderID)
	}
	cats, err := uc.categories.FindByIDs(ctx, catIDs)
	if err != nil {
		return nil, err
	}
	provs, err := uc.providers.FindByIDs(ctx, provIDs)
	if err != nil {
		return nil, err
	}
	return toExpenseResponse(e, categoryRef(cats, e.CategoryID), providerRef(provs, e.ProviderID)), nil
}

func toExpenseResponse(e *entity.Expense, category, provider *dto.RefResponse) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:          e.ID.Hex(),
		Title:       e.Title,
		Amount:      e.Amount,
		Category:    category,
		Provider:    provider,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}
