package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JuanesPachon/Stockia/internal/application/dto"
	"github.com/JuanesPachon/Stockia/internal/application/usecase"
	"github.com/JuanesPachon/Stockia/internal/application/validation"
	"github.com/JuanesPachon/Stockia/internal/domain/repository"
)

// CategoryHandler maneja las peticiones HTTP para Category (protegido).
type CategoryHandler struct {
	uc       *usecase.CategoryUseCase
	validate *validation.Validator
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase, validate *validation.Validator) *CategoryHandler {
	return &CategoryHandler{uc: uc, validate: validate}
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.ValidationResponse
// @Failure      409   {object}  dto.Response
// @Router       /api/v1/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := h.validate.Validate(in); len(errs) > 0 {
		return validationError(c, errs)
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return handleDomainError(c, err, "Category")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Response{
		Success: true,
		Message: "Category created successfully",
		Data:    out,
	})
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Param        order  query  string  false  "asc o desc"  default(desc)
// @Success      200    {object}  dto.Response
// @Router       /api/v1/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetUserID(c), repository.ParseOrder(c.Query("order")))
	if err != nil {
		return handleDomainError(c, err, "Category")
	}
	return c.JSON(dto.Response{Success: true, Data: out})
}

// GetByID godoc
// @Summary      Obtener categoría por ID
// @Tags         categories
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/v1/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return handleDomainError(c, err, "Category")
	}
	return c.JSON(dto.Response{Success: true, Data: out})
}

// Update godoc
// @Summary      Actualizar categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría"
// @Param        body  body  dto.UpdateCategoryRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/v1/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := h.validate.Validate(in); len(errs) > 0 {
		return validationError(c, errs)
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return handleDomainError(c, err, "Category")
	}
	return c.JSON(dto.Response{
		Success: true,
		Message: "Category updated successfully",
		Data:    out,
	})
}

// Delete godoc
// @Summary      Eliminar categoría (borrado lógico)
// @Tags         categories
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/v1/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return handleDomainError(c, err, "Category")
	}
	return c.JSON(dto.Response{
		Success: true,
		Message: "Category deleted successfully",
	})
}
