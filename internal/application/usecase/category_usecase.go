package usecase

import (
	"context"
	"time"

	"github.com/JuanesPachon/Stockia/internal/application/dto"
	"github.com/JuanesPachon/Stockia/internal/domain"
	"github.com/JuanesPachon/Stockia/internal/domain/entity"
	"github.com/JuanesPachon/Stockia/internal/domain/repository"
)

// CategoryUseCase servicio de dominio para categorías.
type CategoryUseCase struct {
	guard
	categories repository.CategoryRepository
}

// NewCategoryUseCase construye el servicio.
func NewCategoryUseCase(users repository.UserRepository, categories repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{guard: guard{users: users}, categories: categories}
}

// Create crea una categoría; domain.ErrDuplicate si el usuario ya tiene una
// viva con ese nombre.
func (uc *CategoryUseCase) Create(ctx context.Context, userID string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	uid, err := uc.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	taken, err := uc.categories.ExistsByName(ctx, uid, in.Name, nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrDuplicate
	}

	category := &entity.Category{
		UserID:      uid,
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   time.Now(),
	}
	if err := uc.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List devuelve las categorías vivas del usuario ordenadas por createdAt.
func (uc *CategoryUseCase) List(ctx context.Context, userID string, order repository.Order) ([]*dto.CategoryResponse, error) {
	uid, err := uc.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	list, err := uc.categories.List(ctx, uid, order)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

// GetByID devuelve una categoría del usuario; domain.ErrNotFound si no existe
// o no le pertenece.
func (uc *CategoryUseCase) GetByID(ctx context.Context, userID, id string) (*dto.CategoryResponse, error) {
	uid, err := uc.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	cid, err := parseID(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	category, err := uc.categories.GetByID(ctx, cid, uid)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(category), nil
}

// Update modifica una categoría del usuario vía find-and-modify filtrado;
// cero matches se trata como not_found para no mutar entre usuarios ni
// resucitar borrados.
func (uc *CategoryUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	uid, err := uc.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	cid, err := parseID(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		taken, err := uc.categories.ExistsByName(ctx, uid, *in.Name, &cid)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrDuplicate
		}
	}

	category, err := uc.categories.Update(ctx, cid, uid, repository.CategoryUpdate{
		Name:        in.Name,
		Description: in.Description,
	})
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(category), nil
}

// Delete marca la categoría como borrada; not_found si no hubo match.
func (uc *CategoryUseCase) Delete(ctx context.Context, userID, id string) error {
	uid, err := uc.requireUser(ctx, userID)
	if err != nil {
		return err
	}
	cid, err := parseID(id)
	if err != nil {
		return domain.ErrNotFound
	}
	ok, err := uc.categories.SoftDelete(ctx, cid, uid)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID.Hex(),
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}
