package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JuanesPachon/Stockia/internal/application/dto"
	"github.com/JuanesPachon/Stockia/internal/application/usecase"
	"github.com/JuanesPachon/Stockia/internal/application/validation"
	"github.com/JuanesPachon/Stockia/internal/domain/repository"
)

// ProviderHandler maneja las peticiones HTTP para Provider (protegido).
type ProviderHandler struct {
	uc       *usecase.ProviderUseCase
	validate *validation.Validator
}

// NewProviderHandler construye el handler.
func NewProviderHandler(uc *usecase.ProviderUseCase, validate *validation.Validator) *ProviderHandler {
	return &ProviderHandler{uc: uc, validate: validate}
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         providers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProviderRequest  true  "Datos del proveedor"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.ValidationResponse
// @Failure      409   {object}  dto.Response
// @Router       /api/v1/providers [post]
func (h *ProviderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProviderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := h.validate.Validate(in); len(errs) > 0 {
		return validationError(c, errs)
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return handleDomainError(c, err, "Provider")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Response{
		Success: true,
		Message: "Provider created successfully",
		Data:    out,
	})
}

// List godoc
// @Summary      Listar proveedores
// @Tags         providers
// @Produce      json
// @Param        order       query  string  false  "asc o desc"  default(desc)
// @Param        categoryId  query  string  false  "Filtrar por categoría"
// @Success      200  {object}  dto.Response
// @Router       /api/v1/providers [get]
func (h *ProviderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetUserID(c), usecase.ProviderListQuery{
		CategoryID: queryID(c, "categoryId"),
		Order:      repository.ParseOrder(c.Query("order")),
	})
	if err != nil {
		return handleDomainError(c, err, "Provider")
	}
	return c.JSON(dto.Response{Success: true, Data: out})
}

// GetByID godoc
// @Summary      Obtener proveedor por ID
// @Tags         providers
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/v1/providers/{id} [get]
func (h *ProviderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return handleDomainError(c, err, "Provider")
	}
	return c.JSON(dto.Response{Success: true, Data: out})
}

// Update godoc
// @Summary      Actualizar proveedor
// @Tags         providers
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del proveedor"
// @Param        body  body  dto.UpdateProviderRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/v1/providers/{id} [put]
func (h *ProviderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProviderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := h.validate.Validate(in); len(errs) > 0 {
		return validationError(c, errs)
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return handleDomainError(c, err, "Provider")
	}
	return c.JSON(dto.Response{
		Success: true,
		Message: "Provider updated successfully",
		Data:    out,
	})
}

// Delete godoc
// @Summary      Eliminar proveedor (borrado lógico)
// @Tags         providers
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/v1/providers/{id} [delete]
func (h *ProviderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return handleDomainError(c, err, "Provider")
	}
	return c.JSON(dto.Response{
		Success: true,
		Message: "Provider deleted successfully",
	})
}
