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

// SaleUseCase servicio de dominio para ventas. Las ventas son un libro
// inmutable: solo se crean y se consultan.
type SaleUseCase struct {
	guard
	sales    repository.SaleRepository
	products repository.ProductRepository
}

// NewSaleUseCase construye el servicio.
func NewSaleUseCase(
	users repository.UserRepository,
	sales repository.SaleRepository,
	products repository.ProductRepository,
) *SaleUseCase {
	return &SaleUseCase{
		guard:    guard{users: users},
		sales:    sales,
		products: products,
	}
}

// SaleListQuery filtros del listado de ventas. TimeRange acepta today, 1week,
// 1month, 3months, 1year o all.
type SaleListQuery struct {
	TimeRange  string
	CategoryID *string
	ProductID  *string
	Order      repository.Order
}

// Create registra una venta. Cada producto referenciado debe existir, estar
// vivo y pertenecer al usuario.
func (uc *SaleUseCase) Create(ctx context.Context, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	uid, err := uc.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]entity.SaleItem, 0, len(in.Products))
	for _, it := range in.Products {
		pid, err := parseID(it.ProductID)
		if err != nil {
			return nil, domain.ErrProductNotFound
		}
		owned, err := uc.products.ExistsOwned(ctx, pid, uid)
		if err != nil {
			return nil, err
		}
		if !owned {
			return nil, domain.ErrProductNotFound
		}
		items = append(items, entity.SaleItem{ProductID: pid, Quantity: *it.Quantity})
	}

	sale := &entity.Sale{
		UserID:    uid,
		Products:  items,
		Total:     *in.Total,
		CreatedAt: time.Now(),
	}
	if err := uc.sales.Create(ctx, sale); err != nil {
		return nil, err
	}
	return uc.respond(ctx, sale)
}

// List devuelve las ventas del usuario, acotadas por ventana de tiempo y
// filtradas opcionalmente por producto o por categoría de sus productos.
func (uc *SaleUseCase) List(ctx context.Context, userID string, q SaleListQuery) ([]*dto.SaleResponse, error) {
	uid, err := uc.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	productID, err := parseOptionalID(q.ProductID)
	if err != nil {
		return nil, err
	}
	categoryID, err := parseOptionalID(q.CategoryID)
	if err != nil {
		return nil, err
	}

	list, err := uc.sales.List(ctx, uid, repository.SaleFilter{
		From:      timeWindow(q.TimeRange, time.Now()),
		ProductID: productID,
		Order:     q.Order,
	})
	if err != nil {
		return nil, err
	}

	products, err := uc.productsOf(ctx, list)
	if err != nil {
		return nil, err
	}

	// El filtro por categoría se resuelve en memoria sobre los productos
	// vivos de cada venta; los productos borrados no aportan categoría.
	if categoryID != nil {
		filtered := list[:0]
		for _, s := range list {
			if saleMatchesCategory(s, products, *categoryID) {
				filtered = append(filtered, s)
			}
		}
		list = filtered
	}

	out := make([]*dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSaleResponse(s, products))
	}
	return out, nil
}

// GetByID devuelve una venta del usuario; domain.ErrNotFound si no existe o no
// le pertenece.
func (uc *SaleUseCase) GetByID(ctx context.Context, userID, id string) (*dto.SaleResponse, error) {
	uid, err := uc.requireUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sid, err := parseID(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	sale, err := uc.sales.GetByID(ctx, sid, uid)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return uc.respond(ctx, sale)
}

// timeWindow traduce el rango textual a la cota inferior de createdAt.
// "today" es el inicio del día local; valores desconocidos o "all" no acotan.
func timeWindow(timeRange string, now time.Time) *time.Time {
	var from time.Time
	switch timeRange {
	case "today":
		from = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case "1week":
		from = now.AddDate(0, 0, -7)
	case "1month":
		from = now.AddDate(0, -1, 0)
	case "3months":
		from = now.AddDate(0, -3, 0)
	case "1year":
		from = now.AddDate(-1, 0, 0)
	default:
		return nil
	}
	return &from
}

// productsOf junta en un solo lote los productos vivos referenciados por las
// ventas dadas.
func (uc *SaleUseCase) productsOf(ctx context.Context, sales []*entity.Sale) (map[primitive.ObjectID]*entity.Product, error) {
	seen := make(map[primitive.ObjectID]struct{})
	var ids []primitive.ObjectID
	for _, s := range sales {
		for _, it := range s.Products {
			if _, ok := seen[it.ProductID]; ok {
				continue
			}
			seen[it.ProductID] = struct{}{}
			ids = append(ids, it.ProductID)
		}
	}
	return uc.products.FindByIDs(ctx, ids)
}

func saleMatchesCategory(s *entity.Sale, products map[primitive.ObjectID]*entity.Product, categoryID primitive.ObjectID) bool {
	for _, it := range s.Products {
		p, ok := products[it.ProductID]
		if !ok || p.CategoryID == nil {
			continue
		}
		if *p.CategoryID == categoryID {
			return true
		}
	}
	return false
}

func (uc *SaleUseCase) respond(ctx context.Context, s *entity.Sale) (*dto.SaleResponse, error) {
	products, err := uc.productsOf(ctx, []*entity.Sale{s})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(s, products), nil
}

func toSaleResponse(s *entity.Sale, products map[primitive.ObjectID]*entity.Product) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Products))
	for _, it := range s.Products {
		var name *string
		if p, ok := products[it.ProductID]; ok {
			name = &p.Name
		}
		items = append(items, dto.SaleItemResponse{
			ProductID:   it.ProductID.Hex(),
			ProductName: name,
			Quantity:    it.Quantity,
		})
	}
	return &dto.SaleResponse{
		ID:        s.ID.Hex(),
		Products:  items,
		Total:     s.Total,
		CreatedAt: s.CreatedAt,
	}
}
