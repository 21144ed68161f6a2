package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JuanesPachon/Stockia/internal/application/dto"
	"github.com/JuanesPachon/Stockia/internal/application/usecase"
	"github.com/JuanesPachon/Stockia/internal/application/validation"
	"github.com/JuanesPachon/Stockia/internal/domain/repository"
)

// SaleHandler maneja las peticiones HTTP para Sale (protegido). Las ventas no
// tienen actualización ni borrado.
type SaleHandler struct {
	uc       *usecase.SaleUseCase
	validate *validation.Validator
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *usecase.SaleUseCase, validate *validation.Validator) *SaleHandler {
	return &SaleHandler{uc: uc, validate: validate}
}

// Create godoc
// @Summary      Registrar venta
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Líneas de venta y total"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.ValidationResponse
// @Failure      404   {object}  dto.Response
// @Router       /api/v1/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := h.validate.Validate(in); len(errs) > 0 {
		return validationError(c, errs)
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return handleDomainError(c, err, "Sale")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Response{
		Success: true,
		Message: "Sale created successfully",
		Data:    out,
	})
}

// List godoc
// @Summary      Listar ventas
// @Tags         sales
// @Produce      json
// @Param        order       query  string  false  "asc o desc"  default(desc)
// @Param        timeRange   query  string  false  "today, 1week, 1month, 3months, 1year o all"
// @Param        categoryId  query  string  false  "Ventas que contienen productos de la categoría"
// @Param        productId   query  string  false  "Ventas que contienen el producto"
// @Success      200  {object}  dto.Response
// @Router       /api/v1/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetUserID(c), usecase.SaleListQuery{
		TimeRange:  c.Query("timeRange"),
		CategoryID: queryID(c, "categoryId"),
		ProductID:  queryID(c, "productId"),
		Order:      repository.ParseOrder(c.Query("order")),
	})
	if err != nil {
		return handleDomainError(c, err, "Sale")
	}
	return c.JSON(dto.Response{Success: true, Data: out})
}

// GetByID godoc
// @Summary      Obtener venta por ID
// @Tags         sales
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/v1/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return handleDomainError(c, err, "Sale")
	}
	return c.JSON(dto.Response{Success: true, Data: out})
}
