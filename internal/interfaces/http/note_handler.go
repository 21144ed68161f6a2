package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JuanesPachon/Stockia/internal/application/dto"
	"github.com/JuanesPachon/Stockia/internal/application/usecase"
	"github.com/JuanesPachon/Stockia/internal/application/validation"
	"github.com/JuanesPachon/Stockia/internal/domain/repository"
)

// NoteHandler maneja las peticiones HTTP para Note (protegido).
type NoteHandler struct {
	uc       *usecase.NoteUseCase
	validate *validation.Validator
}

// NewNoteHandler construye el handler.
func NewNoteHandler(uc *usecase.NoteUseCase, validate *validation.Validator) *NoteHandler {
	return &NoteHandler{uc: uc, validate: validate}
}

// Create godoc
// @Summary      Crear nota
// @Tags         notes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateNoteRequest  true  "Datos de la nota"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.ValidationResponse
// @Failure      409   {object}  dto.Response
// @Router       /api/v1/notes [post]
func (h *NoteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateNoteRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := h.validate.Validate(in); len(errs) > 0 {
		return validationError(c, errs)
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return handleDomainError(c, err, "Note")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Response{
		Success: true,
		Message: "Note created successfully",
		Data:    out,
	})
}

// List godoc
// @Summary      Listar notas
// @Tags         notes
// @Produce      json
// @Param        order       query  string  false  "asc o desc"  default(desc)
// @Param        categoryId  query  string  false  "Filtrar por categoría"
// @Success      200  {object}  dto.Response
// @Router       /api/v1/notes [get]
func (h *NoteHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetUserID(c), usecase.NoteListQuery{
		CategoryID: queryID(c, "categoryId"),
		Order:      repository.ParseOrder(c.Query("order")),
	})
	if err != nil {
		return handleDomainError(c, err, "Note")
	}
	return c.JSON(dto.Response{Success: true, Data: out})
}

// GetByID godoc
// @Summary      Obtener nota por ID
// @Tags         notes
// @Produce      json
// @Param        id   path  string  true  "ID de la nota"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/v1/notes/{id} [get]
func (h *NoteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return handleDomainError(c, err, "Note")
	}
	return c.JSON(dto.Response{Success: true, Data: out})
}

// Update godoc
// @Summary      Actualizar nota
// @Tags         notes
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la nota"
// @Param        body  body  dto.UpdateNoteRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/v1/notes/{id} [put]
func (h *NoteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateNoteRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := h.validate.Validate(in); len(errs) > 0 {
		return validationError(c, errs)
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return handleDomainError(c, err, "Note")
	}
	return c.JSON(dto.Response{
		Success: true,
		Message: "Note updated successfully",
		Data:    out,
	})
}

// Delete godoc
// @Summary      Eliminar nota (borrado lógico)
// @Tags         notes
// @Produce      json
// @Param        id   path  string  true  "ID de la nota"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/v1/notes/{id} [delete]
func (h *NoteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return handleDomainError(c, err, "Note")
	}
	return c.JSON(dto.Response{
		Success: true,
		Message: "Note deleted successfully",
	})
}
