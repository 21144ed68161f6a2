package usecase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/JuanesPachon/Stockia/internal/application/dto"
	"github.com/JuanesPachon/Stockia/internal/domain"
	"github.com/JuanesPachon/Stockia/internal/domain/entity"
	"github.com/JuanesPachon/Stockia/internal/domain/repository"
	"github.com/JuanesPachon/Stockia/pkg/logger"
)

// ProductUseCase servicio de dominio para productos: CRUD con borrado lógico,
// integridad de referencias a categoría/proveedor e imágenes en el
// almacenamiento de objetos.
type ProductUseCase struct {
	guard
	products   repository.ProductRepository
	categories repository.CategoryRepository
	providers  repository.ProviderRepository
	images     ImageStore
	log        *logger.Logger
}

// NewProductUseCase construye el servicio.
func NewProductUseCase(
	users repository.UserRepository,
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	providers repository.ProviderRepository,
	images ImageStore,
	log *logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		guard:      guard{users: users},
		products:   products,
		categories: categories,
		providers:  providers,
		images:     images,
		log:        log,
	}
}

// ProductListQuery filtros del listado de productos.
type ProductListQuery struct {
	CategoryID *string
	Name       string
	Order      repository.Order
}

// Create crea un producto. Si hay imagen se sube primero; si luego la
// persistencia falla, la imagen recién subida se elimina best-effort.
func (uc *ProductUseCase) Create(ctx context.Context, userID string, in dto.CreateProductRequest, image *Image) (*dto.ProductResponse, error) {
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

	taken, err := uc.products.ExistsByName(ctx, uid, in.Name, nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrDuplicate
	}

	var imageURL *string
	if image != nil {
		path, err := uc.images.Upload(ctx, image.Filename, image.Data)
		if err != nil {
			return nil, err
		}
		imageURL = &path
	}

	product := &entity.Product{
		UserID:     uid,
		Name:       in.Name,
		CategoryID: categoryID,
		ProviderID: providerID,
		Stock:      *in.Stock,
		Price:      *in.Price,
		ImageURL:   imageURL,
		CreatedAt:  time.Now(),
	}
	if err := uc.products.Create(ctx, product); err != nil {
		uc.removeImage(ctx, imageURL)
		return nil, err
	}
	return uc.respond(ctx, product)
}

// List devuelve los productos vivos del usuario con sus referencias resueltas.
func (uc *ProductUseCase) List(ctx context.Context, userID string, q ProductListQuery) ([]*dto.ProductResponse, error) {
	uid, err := uc.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	categoryID, err := parseOptionalID(q.CategoryID)
	if err != nil {
		return nil, err
	}
	list, err := uc.products.List(ctx, uid, repository.ProductFilter{
		CategoryID: categoryID,
		Name:       q.Name,
		Order:      q.Order,
	})
	if err != nil {
		return nil, err
	}

	catIDs := make([]primitive.ObjectID, 0, len(list))
	provIDs := make([]primitive.ObjectID, 0, len(list))
	for _, p := range list {
		if p.CategoryID != nil {
			catIDs = append(catIDs, *p.CategoryID)
		}
		if p.ProviderID != nil {
			provIDs = append(provIDs, *p.ProviderID)
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

	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p, categoryRef(cats, p.CategoryID), providerRef(provs, p.ProviderID)))
	}
	return out, nil
}

// GetByID devuelve un producto del usuario; domain.ErrNotFound si no existe o
// no le pertenece.
func (uc *ProductUseCase) GetByID(ctx context.Context, userID, id string) (*dto.ProductResponse, error) {
	uid, err := uc.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	pid, err := parseID(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	product, err := uc.products.GetByID(ctx, pid, uid)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return uc.respond(ctx, product)
}

// Update modifica un producto del usuario. Al reemplazar la imagen, la
// anterior se elimina del almacenamiento best-effort si tiene la forma
// generada por la app.
func (uc *ProductUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateProductRequest, image *Image) (*dto.ProductResponse, error) {
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

	if in.Name != nil {
		taken, err := uc.products.ExistsByName(ctx, uid, *in.Name, &pid)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrDuplicate
		}
	}

	upd := repository.ProductUpdate{
		Name:       in.Name,
		CategoryID: categoryID,
		ProviderID: providerID,
		Stock:      in.Stock,
		Price:      in.Price,
	}

	var previousImage *string
	if image != nil {
		existing, err := uc.products.GetByID(ctx, pid, uid)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, domain.ErrNotFound
		}
		previousImage = existing.ImageURL

		path, err := uc.images.Upload(ctx, image.Filename, image.Data)
		if err != nil {
			return nil, err
		}
		upd.ImageURL = &path
	}

	product, err := uc.products.Update(ctx, pid, uid, upd)
	if err != nil {
		uc.removeImage(ctx, upd.ImageURL)
		return nil, err
	}
	if product == nil {
		uc.removeImage(ctx, upd.ImageURL)
		return nil, domain.ErrNotFound
	}

	// Limpieza de la imagen reemplazada: nunca bloquea la petición principal.
	if image != nil && previousImage != nil && uc.images.IsGeneratedPath(*previousImage) {
		uc.removeImage(ctx, previousImage)
	}
	return uc.respond(ctx, product)
}

// Delete marca el producto como borrado; not_found si no hubo match.
func (uc *ProductUseCase) Delete(ctx context.Context, userID, id string) error {
	uid, err := uc.requireUser(ctx, userID)
	if err != nil {
		return err
	}
	pid, err := parseID(id)
	if err != nil {
		return domain.ErrNotFound
	}
	ok, err := uc.products.SoftDelete(ctx, pid, uid)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// respond resuelve las referencias de un único producto y arma el DTO.
func (uc *ProductUseCase) respond(ctx context.Context, p *entity.Product) (*dto.ProductResponse, error) {
	var catIDs, provIDs []primitive.ObjectID
	if p.CategoryID != nil {
		catIDs = append(catIDs, *p.CategoryID)
	}
	if p.ProviderID != nil {
		provIDs = append(provIDs, *p.ProviderID)
	}
	cats, err := uc.categories.FindByIDs(ctx, catIDs)
	if err != nil {
		return nil, err
	}
	provs, err := uc.providers.FindByIDs(ctx, provIDs)
	if err != nil {
		return nil, err
	}
	return toProductResponse(p, categoryRef(cats, p.CategoryID), providerRef(provs, p.ProviderID)), nil
}

// removeImage limpieza best-effort: el fallo se loguea y se traga.
func (uc *ProductUseCase) removeImage(ctx context.Context, path *string) {
	if path == nil || uc.images == nil {
		return
	}
	if err := uc.images.Remove(ctx, *path); err != nil {
		uc.log.Warn().Err(err).Str("path", *path).Msg("no se pudo eliminar la imagen del almacenamiento")
	}
}

// categoryRef arma el campo de despliegue de la categoría; nil si la
// referencia está ausente o borrada.
func categoryRef(m map[primitive.ObjectID]*entity.Category, id *primitive.ObjectID) *dto.RefResponse {
	if id == nil {
		return nil
	}
	c, ok := m[*id]
	if !ok {
		return nil
	}
	return &dto.RefResponse{ID: c.ID.Hex(), Name: c.Name}
}

// providerRef arma el campo de despliegue del proveedor; nil si la referencia
// está ausente o borrada.
func providerRef(m map[primitive.ObjectID]*entity.Provider, id *primitive.ObjectID) *dto.RefResponse {
	if id == nil {
		return nil
	}
	p, ok := m[*id]
	if !ok {
		return nil
	}
	return &dto.RefResponse{ID: p.ID.Hex(), Name: p.Name}
}

func toProductResponse(p *entity.Product, category, provider *dto.RefResponse) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID.Hex(),
		Name:      p.Name,
		Category:  category,
		Provider:  provider,
		Stock:     p.Stock,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
		CreatedAt: p.CreatedAt,
	}
}
