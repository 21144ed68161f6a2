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

func intPtr(v int) *int          { return &v }
func floatPtr(v float64) *float64 { return &v }

type productFixture struct {
	userID     primitive.ObjectID
	users      *fakeUsers
	products   *fakeProducts
	categories *fakeCategories
	providers  *fakeProviders
	images     *fakeImages
	uc         *usecase.ProductUseCase
	categoryUC *usecase.CategoryUseCase
}

func newProductFixture() *productFixture {
	f := &productFixture{
		userID:     primitive.NewObjectID(),
		products:   &fakeProducts{},
		categories: &fakeCategories{},
		providers:  &fakeProviders{},
		images:     &fakeImages{},
	}
	f.users = newFakeUsers(f.userID)
	f.uc = usecase.NewProductUseCase(f.users, f.products, f.categories, f.providers, f.images, testLogger())
	f.categoryUC = usecase.NewCategoryUseCase(f.users, f.categories)
	return f
}

func TestProductCreate_ConCategoriaResuelta(t *testing.T) {
	f := newProductFixture()
	cat, err := f.categoryUC.Create(context.Background(), f.userID.Hex(), dto.CreateCategoryRequest{Name: "Ropa"})
	require.NoError(t, err)

	out, err := f.uc.Create(context.Background(), f.userID.Hex(), dto.CreateProductRequest{
		Name:       "Camiseta",
		CategoryID: strPtr(cat.ID),
		Stock:      intPtr(10),
		Price:      floatPtr(19.99),
	}, nil)
	require.NoError(t, err)

	require.NotNil(t, out.Category, "la categoría referida debe venir resuelta")
	assert.Equal(t, "Ropa", out.Category.Name)
	assert.Nil(t, out.Provider)
	assert.Equal(t, 10, out.Stock)
}

func TestProductCreate_CategoriaInexistente(t *testing.T) {
	f := newProductFixture()

	_, err := f.uc.Create(context.Background(), f.userID.Hex(), dto.CreateProductRequest{
		Name:       "Camiseta",
		CategoryID: strPtr(primitive.NewObjectID().Hex()),
		Stock:      intPtr(1),
		Price:      floatPtr(5),
	}, nil)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestProductCreate_CategoriaBorradaEsNotFound(t *testing.T) {
	f := newProductFixture()
	cat, err := f.categoryUC.Create(context.Background(), f.userID.Hex(), dto.CreateCategoryRequest{Name: "Ropa"})
	require.NoError(t, err)
	require.NoError(t, f.categoryUC.Delete(context.Background(), f.userID.Hex(), cat.ID))

	_, err = f.uc.Create(context.Background(), f.userID.Hex(), dto.CreateProductRequest{
		Name:       "Camiseta",
		CategoryID: strPtr(cat.ID),
		Stock:      intPtr(1),
		Price:      floatPtr(5),
	}, nil)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestProductCreate_ConImagenSubeAlStore(t *testing.T) {
	f := newProductFixture()

	out, err := f.uc.Create(context.Background(), f.userID.Hex(), dto.CreateProductRequest{
		Name:  "Camiseta",
		Stock: intPtr(1),
		Price: floatPtr(5),
	}, &usecase.Image{Filename: "foto.png", Data: []byte("png")})
	require.NoError(t, err)

	require.NotNil(t, out.ImageURL)
	assert.Equal(t, "generated-foto.png", *out.ImageURL)
	assert.Equal(t, []string{"generated-foto.png"}, f.images.uploaded)
}

func TestProductUpdate_ReemplazaImagenYEliminaLaAnterior(t *testing.T) {
	f := newProductFixture()

	out, err := f.uc.Create(context.Background(), f.userID.Hex(), dto.CreateProductRequest{
		Name:  "Camiseta",
		Stock: intPtr(1),
		Price: floatPtr(5),
	}, &usecase.Image{Filename: "vieja.png", Data: []byte("a")})
	require.NoError(t, err)

	upd, err := f.uc.Update(context.Background(), f.userID.Hex(), out.ID, dto.UpdateProductRequest{},
		&usecase.Image{Filename: "nueva.png", Data: []byte("b")})
	require.NoError(t, err)

	require.NotNil(t, upd.ImageURL)
	assert.Equal(t, "generated-nueva.png", *upd.ImageURL)
	assert.Equal(t, []string{"generated-vieja.png"}, f.images.removed,
		"la imagen reemplazada con path generado debe eliminarse del almacenamiento")
}

func TestProductUpdate_NoEliminaImagenExterna(t *testing.T) {
	f := newProductFixture()

	out, err := f.uc.Create(context.Background(), f.userID.Hex(), dto.CreateProductRequest{
		Name:  "Camiseta",
		Stock: intPtr(1),
		Price: floatPtr(5),
	}, nil)
	require.NoError(t, err)

	// Simula un imageUrl externo que no fue generado por la app.
	external := "https://cdn.example.com/foto.png"
	_, err = f.products.Update(context.Background(), mustObjectID(t, out.ID), f.userID, repository.ProductUpdate{ImageURL: &external})
	require.NoError(t, err)

	_, err = f.uc.Update(context.Background(), f.userID.Hex(), out.ID, dto.UpdateProductRequest{},
		&usecase.Image{Filename: "nueva.png", Data: []byte("b")})
	require.NoError(t, err)

	assert.Empty(t, f.images.removed, "un path no generado por la app nunca se elimina")
}

func TestProductList_FiltraPorNombreYCategoria(t *testing.T) {
	f := newProductFixture()
	cat, err := f.categoryUC.Create(context.Background(), f.userID.Hex(), dto.CreateCategoryRequest{Name: "Ropa"})
	require.NoError(t, err)

	_, err = f.uc.Create(context.Background(), f.userID.Hex(), dto.CreateProductRequest{
		Name: "Camiseta Roja", CategoryID: strPtr(cat.ID), Stock: intPtr(1), Price: floatPtr(5),
	}, nil)
	require.NoError(t, err)
	_, err = f.uc.Create(context.Background(), f.userID.Hex(), dto.CreateProductRequest{
		Name: "Gorra", Stock: intPtr(1), Price: floatPtr(5),
	}, nil)
	require.NoError(t, err)

	list, err := f.uc.List(context.Background(), f.userID.Hex(), usecase.ProductListQuery{Name: "camiseta"})
	require.NoError(t, err)
	require.Len(t, list, 1, "el filtro por nombre es por subcadena e insensible a mayúsculas")
	assert.Equal(t, "Camiseta Roja", list[0].Name)

	list, err = f.uc.List(context.Background(), f.userID.Hex(), usecase.ProductListQuery{CategoryID: strPtr(cat.ID)})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Camiseta Roja", list[0].Name)
}

func TestProductDelete_DeOtroUsuarioEsNotFound(t *testing.T) {
	f := newProductFixture()
	otherUser := primitive.NewObjectID()
	f.users.byID[otherUser] = f.users.byID[f.userID]

	out, err := f.uc.Create(context.Background(), f.userID.Hex(), dto.CreateProductRequest{
		Name: "Camiseta", Stock: intPtr(1), Price: floatPtr(5),
	}, nil)
	require.NoError(t, err)

	err = f.uc.Delete(context.Background(), otherUser.Hex(), out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func mustObjectID(t *testing.T, hex string) primitive.ObjectID {
	t.Helper()
	oid, err := primitive.ObjectIDFromHex(hex)
	require.NoError(t, err)
	return oid
}
