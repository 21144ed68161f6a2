package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/JuanesPachon/Stockia/internal/application/dto"
	"github.com/JuanesPachon/Stockia/internal/application/usecase"
	"github.com/JuanesPachon/Stockia/internal/domain"
	"github.com/JuanesPachon/Stockia/internal/domain/repository"
)

func strPtr(s string) *string { return &s }

func TestCategoryCreate_YLuegoGet(t *testing.T) {
	userID := primitive.NewObjectID()
	uc := usecase.NewCategoryUseCase(newFakeUsers(userID), &fakeCategories{})

	out, err := uc.Create(context.Background(), userID.Hex(), dto.CreateCategoryRequest{
		Name:        "Bebidas",
		Description: "Gaseosas y jugos",
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Bebidas", out.Name)
	assert.NotEmpty(t, out.ID)

	got, err := uc.GetByID(context.Background(), userID.Hex(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, out.ID, got.ID)
}

func TestCategoryCreate_UsuarioInexistente(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeUsers(), &fakeCategories{})

	_, err := uc.Create(context.Background(), primitive.NewObjectID().Hex(), dto.CreateCategoryRequest{Name: "Bebidas"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCategoryCreate_NombreDuplicadoMismoUsuario(t *testing.T) {
	userID := primitive.NewObjectID()
	uc := usecase.NewCategoryUseCase(newFakeUsers(userID), &fakeCategories{})

	_, err := uc.Create(context.Background(), userID.Hex(), dto.CreateCategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), userID.Hex(), dto.CreateCategoryRequest{Name: "Bebidas"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCategoryCreate_MismoNombreOtroUsuario(t *testing.T) {
	// La unicidad del nombre es por usuario, no global.
	userA := primitive.NewObjectID()
	userB := primitive.NewObjectID()
	uc := usecase.NewCategoryUseCase(newFakeUsers(userA, userB), &fakeCategories{})

	_, err := uc.Create(context.Background(), userA.Hex(), dto.CreateCategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), userB.Hex(), dto.CreateCategoryRequest{Name: "Bebidas"})
	assert.NoError(t, err)
}

func TestCategoryGet_DeOtroUsuarioEsNotFound(t *testing.T) {
	userA := primitive.NewObjectID()
	userB := primitive.NewObjectID()
	uc := usecase.NewCategoryUseCase(newFakeUsers(userA, userB), &fakeCategories{})

	out, err := uc.Create(context.Background(), userA.Hex(), dto.CreateCategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)

	_, err = uc.GetByID(context.Background(), userB.Hex(), out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryGet_IDMalformadoEsNotFound(t *testing.T) {
	userID := primitive.NewObjectID()
	uc := usecase.NewCategoryUseCase(newFakeUsers(userID), &fakeCategories{})

	_, err := uc.GetByID(context.Background(), userID.Hex(), "no-es-un-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryUpdate_NombreDuplicadoExcluyeElPropio(t *testing.T) {
	userID := primitive.NewObjectID()
	uc := usecase.NewCategoryUseCase(newFakeUsers(userID), &fakeCategories{})

	a, err := uc.Create(context.Background(), userID.Hex(), dto.CreateCategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), userID.Hex(), dto.CreateCategoryRequest{Name: "Snacks"})
	require.NoError(t, err)

	// Renombrar al propio nombre no es conflicto.
	out, err := uc.Update(context.Background(), userID.Hex(), a.ID, dto.UpdateCategoryRequest{Name: strPtr("Bebidas")})
	require.NoError(t, err)
	assert.Equal(t, "Bebidas", out.Name)

	// Renombrar al nombre de otra categoría viva sí lo es.
	_, err = uc.Update(context.Background(), userID.Hex(), a.ID, dto.UpdateCategoryRequest{Name: strPtr("Snacks")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCategoryDelete_ExcluyeDeListadosYLiberaNombre(t *testing.T) {
	userID := primitive.NewObjectID()
	uc := usecase.NewCategoryUseCase(newFakeUsers(userID), &fakeCategories{})

	out, err := uc.Create(context.Background(), userID.Hex(), dto.CreateCategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), userID.Hex(), out.ID))

	// Ya no aparece por id ni en listados.
	_, err = uc.GetByID(context.Background(), userID.Hex(), out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := uc.List(context.Background(), userID.Hex(), repository.OrderDesc)
	require.NoError(t, err)
	assert.Empty(t, list)

	// Borrar dos veces es not_found.
	assert.ErrorIs(t, uc.Delete(context.Background(), userID.Hex(), out.ID), domain.ErrNotFound)

	// El nombre queda libre para un documento nuevo.
	_, err = uc.Create(context.Background(), userID.Hex(), dto.CreateCategoryRequest{Name: "Bebidas"})
	assert.NoError(t, err)
}
