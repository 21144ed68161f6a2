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

// ProviderUseCase servicio de dominio para proveedores.
type ProviderUseCase struct {
	guard
	providers  repository.ProviderRepository
	categories repository.CategoryRepository
}

// NewProviderUseCase construye el servicio.
func NewProviderUseCase(
	users repository.UserRepository,
	providers repository.ProviderRepository,
	categories repository.CategoryRepository,
) *ProviderUseCase {
	return &ProviderUseCase{
		guard:      guard{users: users},
		providers:  providers,
		categories: categories,
	}
}

// ProviderListQuery filtros del listado de proveedores.
type ProviderListQuery struct {
	CategoryID *string
	Order      repository.Order
}

// Create crea un proveedor. Status por defecto es true si no se envía.
func (uc *ProviderUseCase) Create(ctx context.Context, userID string, in dto.CreateProviderRequest) (*dto.ProviderResponse, error) {
	uid, err := uc.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	categoryID, err := parseOptionalID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if err := checkCategoryRef(ctx, uc.categories, categoryID, uid); err != nil {
		return nil, err
	}

	taken, err := uc.providers.ExistsByName(ctx, uid, in.Name, nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrDuplicate
	}

	status := true
	if in.Status != nil {
		status = *in.Status
	}
	provider := &entity.Provider{
		UserID:      uid,
		Name:        in.Name,
		CategoryID:  categoryID,
		Contact:     in.Contact,
		Description: in.Description,
		Status:      status,
		CreatedAt:   time.Now(),
	}
	if err := uc.providers.Create(ctx, provider); err != nil {
		return nil, err
	}
	return uc.respond(ctx, provider)
}

// List devuelve los proveedores vivos del usuario.
func (uc *ProviderUseCase) List(ctx context.Context, userID string, q ProviderListQuery) ([]*dto.ProviderResponse, error) {
	uid, err := uc.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	categoryID, err := parseOptionalID(q.CategoryID)
	if err != nil {
		return nil, err
	}
	list, err := uc.providers.List(ctx, uid, repository.ProviderFilter{
		CategoryID: categoryID,
		Order:      q.Order,
	})
	if err != nil {
		return nil, err
	}

	catIDs := make([]primitive.ObjectID, 0, len(list))
	for _, p := range list {
		if p.CategoryID != nil {
			catIDs = append(catIDs, *p.CategoryID)
		}
	}
	cats, err := uc.categories.FindByIDs(ctx, catIDs)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ProviderResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProviderResponse(p, categoryRef(cats, p.CategoryID)))
	}
	return out, nil
}

// GetByID devuelve un proveedor del usuario; domain.ErrNotFound si no existe o
// no le pertenece.
func (uc *ProviderUseCase) GetByID(ctx context.Context, userID, id string) (*dto.ProviderResponse, error) {
	uid, err := uc.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	pid, err := parseID(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	provider, err := uc.providers.GetByID(ctx, pid, uid)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, domain.ErrNotFound
	}
	return uc.respond(ctx, provider)
}

// Update modifica un proveedor del usuario.
func (uc *ProviderUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateProviderRequest) (*dto.ProviderResponse, error) {
	uid, err := uc.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	pid, err := parseID(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	categoryID, err := parseOptionalID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if err := checkCategoryRef(ctx, uc.categories, categoryID, uid); err != nil {
		return nil, err
	}

	if in.Name != nil {
		taken, err := uc.providers.ExistsByName(ctx, uid, *in.Name, &pid)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrDuplicate
		}
	}

	provider, err := uc.providers.Update(ctx, pid, uid, repository.ProviderUpdate{
		Name:        in.Name,
		CategoryID:  categoryID,
		Contact:     in.Contact,
		Description: in.Description,
		Status:      in.Status,
	})
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, domain.ErrNotFound
	}
	return uc.respond(ctx, provider)
}

// Delete marca el proveedor como borrado; not_found si no hubo match.
func (uc *ProviderUseCase) Delete(ctx context.Context, userID, id string) error {
	uid, err := uc.requireUser(ctx, userID)
	if err != nil {
		return err
	}
	pid, err := parseID(id)
	if err != nil {
		return domain.ErrNotFound
	}
	ok, err := uc.providers.SoftDelete(ctx, pid, uid)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func (uc *ProviderUseCase) respond(ctx context.Context, p *entity.Provider) (*dto.ProviderResponse, error) {
	var catIDs []primitive.ObjectID
	if p.CategoryID != nil {
		catIDs = append(catIDs, *p.CategoryID)
	}
	cats, err := uc.categories.FindByIDs(ctx, catIDs)
	if err != nil {
		return nil, err
	}
	return toProviderResponse(p, categoryRef(cats, p.CategoryID)), nil
}

func toProviderResponse(p *entity.Provider, category *dto.RefResponse) *dto.ProviderResponse {
	return &dto.ProviderResponse{
		ID:          p.ID.Hex(),
		Name:        p.Name,
		Category:    category,
		Contact:     p.Contact,
		Description: p.Description,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
	}
}
