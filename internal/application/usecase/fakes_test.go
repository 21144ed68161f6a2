package usecase_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/JuanesPachon/Stockia/internal/domain/entity"
	"github.com/JuanesPachon/Stockia/internal/domain/repository"
	"github.com/JuanesPachon/Stockia/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

// Fakes en memoria de los puertos de persistencia. Reproducen el contrato de
// los adaptadores reales: consultas acotadas por userId, exclusión de
// documentos borrados y (nil, nil) cuando no hay match.

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios
// ──────────────────────────────────────────────────────────────────────────────

type fakeUsers struct {
	byID map[primitive.ObjectID]*entity.User
}

func newFakeUsers(ids ...primitive.ObjectID) *fakeUsers {
	f := &fakeUsers{byID: make(map[primitive.ObjectID]*entity.User)}
	for _, id := range ids {
		f.byID[id] = &entity.User{ID: id, Name: "Test", Email: id.Hex() + "@example.com"}
	}
	return f
}

func (f *fakeUsers) Create(_ context.Context, u *entity.User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUsers) Exists(_ context.Context, id primitive.ObjectID) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

func (f *fakeUsers) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id primitive.ObjectID) (*entity.User, error) {
	return f.byID[id], nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategories struct {
	docs []*entity.Category
}

func (f *fakeCategories) Create(_ context.Context, c *entity.Category) error {
	c.ID = primitive.NewObjectID()
	f.docs = append(f.docs, c)
	return nil
}

func (f *fakeCategories) find(id, userID primitive.ObjectID) *entity.Category {
	for _, c := range f.docs {
		if c.ID == id && c.UserID == userID && c.DeletedAt == nil {
			return c
		}
	}
	return nil
}

func (f *fakeCategories) GetByID(_ context.Context, id, userID primitive.ObjectID) (*entity.Category, error) {
	return f.find(id, userID), nil
}

func (f *fakeCategories) List(_ context.Context, userID primitive.ObjectID, order repository.Order) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range f.docs {
		if c.UserID == userID && c.DeletedAt == nil {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if order == repository.OrderAsc {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeCategories) ExistsByName(_ context.Context, userID primitive.ObjectID, name string, exclude *primitive.ObjectID) (bool, error) {
	for _, c := range f.docs {
		if c.UserID == userID && c.DeletedAt == nil && c.Name == name {
			if exclude != nil && c.ID == *exclude {
				continue
			}
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategories) ExistsOwned(_ context.Context, id, userID primitive.ObjectID) (bool, error) {
	return f.find(id, userID) != nil, nil
}

func (f *fakeCategories) Update(_ context.Context, id, userID primitive.ObjectID, upd repository.CategoryUpdate) (*entity.Category, error) {
	c := f.find(id, userID)
	if c == nil {
		return nil, nil
	}
	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.Description != nil {
		c.Description = *upd.Description
	}
	return c, nil
}

func (f *fakeCategories) SoftDelete(_ context.Context, id, userID primitive.ObjectID) (bool, error) {
	c := f.find(id, userID)
	if c == nil {
		return false, nil
	}
	now := time.Now()
	c.DeletedAt = &now
	return true, nil
}

func (f *fakeCategories) FindByIDs(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*entity.Category, error) {
	out := make(map[primitive.ObjectID]*entity.Category)
	for _, id := range ids {
		for _, c := range f.docs {
			if c.ID == id && c.DeletedAt == nil {
				out[id] = c
			}
		}
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

type fakeProducts struct {
	docs []*entity.Product
}

func (f *fakeProducts) Create(_ context.Context, p *entity.Product) error {
	p.ID = primitive.NewObjectID()
	f.docs = append(f.docs, p)
	return nil
}

func (f *fakeProducts) find(id, userID primitive.ObjectID) *entity.Product {
	for _, p := range f.docs {
		if p.ID == id && p.UserID == userID && p.DeletedAt == nil {
			return p
		}
	}
	return nil
}

func (f *fakeProducts) GetByID(_ context.Context, id, userID primitive.ObjectID) (*entity.Product, error) {
	return f.find(id, userID), nil
}

func (f *fakeProducts) List(_ context.Context, userID primitive.ObjectID, filter repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.docs {
		if p.UserID != userID || p.DeletedAt != nil {
			continue
		}
		if filter.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *filter.CategoryID) {
			continue
		}
		if filter.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Name)) {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if filter.Order == repository.OrderAsc {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeProducts) ExistsByName(_ context.Context, userID primitive.ObjectID, name string, exclude *primitive.ObjectID) (bool, error) {
	for _, p := range f.docs {
		if p.UserID == userID && p.DeletedAt == nil && p.Name == name {
			if exclude != nil && p.ID == *exclude {
				continue
			}
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProducts) ExistsOwned(_ context.Context, id, userID primitive.ObjectID) (bool, error) {
	return f.find(id, userID) != nil, nil
}

func (f *fakeProducts) Update(_ context.Context, id, userID primitive.ObjectID, upd repository.ProductUpdate) (*entity.Product, error) {
	p := f.find(id, userID)
	if p == nil {
		return nil, nil
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.CategoryID != nil {
		p.CategoryID = upd.CategoryID
	}
	if upd.ProviderID != nil {
		p.ProviderID = upd.ProviderID
	}
	if upd.Stock != nil {
		p.Stock = *upd.Stock
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.ImageURL != nil {
		p.ImageURL = upd.ImageURL
	}
	return p, nil
}

func (f *fakeProducts) SoftDelete(_ context.Context, id, userID primitive.ObjectID) (bool, error) {
	p := f.find(id, userID)
	if p == nil {
		return false, nil
	}
	now := time.Now()
	p.DeletedAt = &now
	return true, nil
}

func (f *fakeProducts) FindByIDs(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*entity.Product, error) {
	out := make(map[primitive.ObjectID]*entity.Product)
	for _, id := range ids {
		for _, p := range f.docs {
			if p.ID == id && p.DeletedAt == nil {
				out[id] = p
			}
		}
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Proveedores
// ──────────────────────────────────────────────────────────────────────────────

type fakeProviders struct {
	docs []*entity.Provider
}

func (f *fakeProviders) Create(_ context.Context, p *entity.Provider) error {
	p.ID = primitive.NewObjectID()
	f.docs = append(f.docs, p)
	return nil
}

func (f *fakeProviders) find(id, userID primitive.ObjectID) *entity.Provider {
	for _, p := range f.docs {
		if p.ID == id && p.UserID == userID && p.DeletedAt == nil {
			return p
		}
	}
	return nil
}

func (f *fakeProviders) GetByID(_ context.Context, id, userID primitive.ObjectID) (*entity.Provider, error) {
	return f.find(id, userID), nil
}

func (f *fakeProviders) List(_ context.Context, userID primitive.ObjectID, filter repository.ProviderFilter) ([]*entity.Provider, error) {
	var out []*entity.Provider
	for _, p := range f.docs {
		if p.UserID != userID || p.DeletedAt != nil {
			continue
		}
		if filter.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *filter.CategoryID) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProviders) ExistsByName(_ context.Context, userID primitive.ObjectID, name string, exclude *primitive.ObjectID) (bool, error) {
	for _, p := range f.docs {
		if p.UserID == userID && p.DeletedAt == nil && p.Name == name {
			if exclude != nil && p.ID == *exclude {
				continue
			}
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProviders) ExistsOwned(_ context.Context, id, userID primitive.ObjectID) (bool, error) {
	return f.find(id, userID) != nil, nil
}

func (f *fakeProviders) Update(_ context.Context, id, userID primitive.ObjectID, upd repository.ProviderUpdate) (*entity.Provider, error) {
	p := f.find(id, userID)
	if p == nil {
		return nil, nil
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.CategoryID != nil {
		p.CategoryID = upd.CategoryID
	}
	if upd.Contact != nil {
		p.Contact = *upd.Contact
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Status != nil {
		p.Status = *upd.Status
	}
	return p, nil
}

func (f *fakeProviders) SoftDelete(_ context.Context, id, userID primitive.ObjectID) (bool, error) {
	p := f.find(id, userID)
	if p == nil {
		return false, nil
	}
	now := time.Now()
	p.DeletedAt = &now
	return true, nil
}

func (f *fakeProviders) FindByIDs(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*entity.Provider, error) {
	out := make(map[primitive.ObjectID]*entity.Provider)
	for _, id := range ids {
		for _, p := range f.docs {
			if p.ID == id && p.DeletedAt == nil {
				out[id] = p
			}
		}
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas
// ──────────────────────────────────────────────────────────────────────────────

type fakeSales struct {
	docs []*entity.Sale

	// lastFilter guarda el último filtro recibido para poder asertar sobre la
	// ventana de tiempo calculada por el servicio.
	lastFilter repository.SaleFilter
}

func (f *fakeSales) Create(_ context.Context, s *entity.Sale) error {
	s.ID = primitive.NewObjectID()
	f.docs = append(f.docs, s)
	return nil
}

func (f *fakeSales) GetByID(_ context.Context, id, userID primitive.ObjectID) (*entity.Sale, error) {
	for _, s := range f.docs {
		if s.ID == id && s.UserID == userID {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSales) List(_ context.Context, userID primitive.ObjectID, filter repository.SaleFilter) ([]*entity.Sale, error) {
	f.lastFilter = filter
	var out []*entity.Sale
	for _, s := range f.docs {
		if s.UserID != userID {
			continue
		}
		if filter.From != nil && s.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.ProductID != nil {
			contains := false
			for _, it := range s.Products {
				if it.ProductID == *filter.ProductID {
					contains = true
					break
				}
			}
			if !contains {
				continue
			}
		}
		out = append(out, s)
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Almacenamiento de imágenes
// ──────────────────────────────────────────────────────────────────────────────

type fakeImages struct {
	uploaded []string
	removed  []string
}

func (f *fakeImages) Upload(_ context.Context, filename string, _ []byte) (string, error) {
	path := "generated-" + filename
	f.uploaded = append(f.uploaded, path)
	return path, nil
}

func (f *fakeImages) Remove(_ context.Context, path string) error {
	f.removed = append(f.removed, path)
	return nil
}

func (f *fakeImages) IsGeneratedPath(path string) bool {
	return strings.HasPrefix(path, "generated-")
}
