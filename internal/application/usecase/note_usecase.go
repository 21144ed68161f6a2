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

// NoteUseCase servicio de dominio para notas.
type NoteUseCase struct {
	guard
	notes      repository.NoteRepository
	categories repository.CategoryRepository
}

// NewNoteUseCase construye el servicio.
func NewNoteUseCase(
	users repository.UserRepository,
	notes repository.NoteRepository,
	categories repository.CategoryRepository,
) *NoteUseCase {
	return &NoteUseCase{
		guard:      guard{users: users},
		notes:      notes,
		categories: categories,
	}
}

// NoteListQuery filtros del listado de notas.
type NoteListQuery struct {
	CategoryID *string
	Order      repository.Order
}

// Create crea una nota con título único por usuario.
func (uc *NoteUseCase) Create(ctx context.Context, userID string, in dto.CreateNoteRequest) (*dto.NoteResponse, error) {
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

	taken, err := uc.notes.ExistsByTitle(ctx, uid, in.Title, nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrDuplicate
	}

	note := &entity.Note{
		UserID:      uid,
		Title:       in.Title,
		CategoryID:  categoryID,
		Description: in.Description,
		CreatedAt:   time.Now(),
	}
	if err := uc.notes.Create(ctx, note); err != nil {
		return nil, err
	}
	return uc.respond(ctx, note)
}

// List devuelve las notas vivas del usuario.
func (uc *NoteUseCase) List(ctx context.Context, userID string, q NoteListQuery) ([]*dto.NoteResponse, error) {
	uid, err := uc.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	categoryID, err := parseOptionalID(q.CategoryID)
	if err != nil {
		return nil, err
	}
	list, err := uc.notes.List(ctx, uid, repository.NoteFilter{
		CategoryID: categoryID,
		Order:      q.Order,
	})
	if err != nil {
		return nil, err
	}

	catIDs := make([]primitive.ObjectID, 0, len(list))
	for _, n := range list {
		if n.CategoryID != nil {
			catIDs = append(catIDs, *n.CategoryID)
		}
	}
	cats, err := uc.categories.FindByIDs(ctx, catIDs)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.NoteResponse, 0, len(list))
	for _, n := range list {
		out = append(out, toNoteResponse(n, categoryRef(cats, n.CategoryID)))
	}
	return out, nil
}

// GetByID devuelve una nota del usuario; domain.ErrNotFound si no existe o no
// le pertenece.
func (uc *NoteUseCase) GetByID(ctx context.Context, userID, id string) (*dto.NoteResponse, error) {
	uid, err := uc.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	nid, err := parseID(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	note, err := uc.notes.GetByID(ctx, nid, uid)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, domain.ErrNotFound
	}
	return uc.respond(ctx, note)
}

// Update modifica una nota del usuario.
func (uc *NoteUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uid, err := uc.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	nid, err := parseID(id)
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

	if in.Title != nil {
		taken, err := uc.notes.ExistsByTitle(ctx, uid, *in.Title, &nid)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrDuplicate
		}
	}

	note, err := uc.notes.Update(ctx, nid, uid, repository.NoteUpdate{
		Title:       in.Title,
		CategoryID:  categoryID,
		Description: in.Description,
	})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, domain.ErrNotFound
	}
	return uc.respond(ctx, note)
}

// Delete marca la nota como borrada; not_found si no hubo match.
func (uc *NoteUseCase) Delete(ctx context.Context, userID, id string) error {
	uid, err := uc.requireUser(ctx, userID)
	if err != nil {
		return err
	}
	nid, err := parseID(id)
	if err != nil {
		return domain.ErrNotFound
	}
	ok, err := uc.notes.SoftDelete(ctx, nid, uid)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func (uc *NoteUseCase) respond(ctx context.Context, n *entity.Note) (*dto.NoteResponse, error) {
	var catIDs []primitive.ObjectID
	if n.CategoryID != nil {
		catIDs = append(catIDs, *n.CategoryID)
	}
	cats, err := uc.categories.FindByIDs(ctx, catIDs)
	if err != nil {
		return nil, err
	}
	return toNoteResponse(n, categoryRef(cats, n.CategoryID)), nil
}

func toNoteResponse(n *entity.Note, category *dto.RefResponse) *dto.NoteResponse {
	return &dto.NoteResponse{
		ID:          n.ID.Hex(),
		Title:       n.Title,
		Category:    category,
		Description: n.Description,
		CreatedAt:   n.CreatedAt,
	}
}
