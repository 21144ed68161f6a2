package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JuanesPachon/Stockia/internal/application/dto"
	"github.com/JuanesPachon/Stockia/internal/application/usecase"
	"github.com/JuanesPachon/Stockia/internal/application/validation"
	"github.com/JuanesPachon/Stockia/internal/domain/repository"
)

// ExpenseHandler maneja las peticiones HTTP para Expense (protegido).
type ExpenseHandler struct {
	uc       *usecase.ExpenseUseCase
	validate *validation.Validator
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *usecase.ExpenseUseCase, validate *validation.Validator) *ExpenseHandler {
	return &ExpenseHandler{uc: uc, validate: validate}
}

// Create godoc
// @Summary      Crear gasto
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateExpenseRequest  true  "Datos del gasto"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.ValidationResponse
// @Failure      404   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/v1/expenses [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := h.validate.Validate(in); len(errs) > 0 {
		return validationError(c, errs)
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return handleDomainError(c, err, "Expense")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Response{
		Success: true,
		Message: "Expense created successfully",
		Data:    out,
	})
}

// List godoc
// @Summary      Listar gastos
// @Tags         expenses
// @Produce      json
// @Param        order       query  string  false  "asc o desc"  default(desc)
// @Param        categoryId  query  string  false  "Filtrar por categoría"
// @Success      200  {object}  dto.Response
// @Router       /api/v1/expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetUserID(c), usecase.ExpenseListQuery{
		CategoryID: queryID(c, "categoryId"),
		Order:      repository.ParseOrder(c.Query("order")),
	})
	if err != nil {
		return handleDomainError(c, err, "Expense")
	}
	return c.JSON(dto.Response{Success: true, Data: out})
}

// GetByID godoc
// @Summary      Obtener gasto por ID
// @Tags         expenses
// @Produce      json
// @Param        id   path  string  true  "ID del gasto"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/v1/expenses/{id} [get]
func (h *ExpenseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return handleDomainError(c, err, "Expense")
	}
	return c.JSON(dto.Response{Success: true, Data: out})
}

// Update godoc
// @Summary      Actualizar gasto
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del gasto"
// @Param        body  body  dto.UpdateExpenseRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/v1/expenses/{id} [put]
func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := h.validate.Validate(in); len(errs) > 0 {
		return validationError(c, errs)
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return handleDomainError(c, err, "Expense")
	}
	return c.JSON(dto.Response{
		Success: true,
		Message: "Expense updated successfully",
		Data:    out,
	})
}

// Delete godoc
// @Summary      Eliminar gasto (borrado lógico)
// @Tags         expenses
// @Produce      json
// @Param        id   path  string  true  "ID del gasto"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/v1/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return handleDomainError(c, err, "Expense")
	}
	return c.JSON(dto.Response{
		Success: true,
		Message: "Expense deleted successfully",
	})
}
