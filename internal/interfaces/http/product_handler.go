package http

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/JuanesPachon/Stockia/internal/application/dto"
	"github.com/JuanesPachon/Stockia/internal/application/usecase"
	"github.com/JuanesPachon/Stockia/internal/application/validation"
	"github.com/JuanesPachon/Stockia/internal/domain/repository"
)

// ProductHandler maneja las peticiones HTTP para Product (protegido). Create y
// Update aceptan JSON o multipart con un archivo de imagen en el campo imageUrl.
type ProductHandler struct {
	uc       *usecase.ProductUseCase
	validate *validation.Validator
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, validate *validation.Validator) *ProductHandler {
	return &ProductHandler{uc: uc, validate: validate}
}

// formImage extrae el archivo de imagen del multipart, si viene. Un archivo
// que no es imagen responde 400 y devuelve done=true.
func formImage(c *fiber.Ctx) (img *usecase.Image, done bool, err error) {
	fh, ferr := c.FormFile("imageUrl")
	if ferr != nil {
		// Sin archivo adjunto: el cuerpo sigue siendo válido.
		return nil, false, nil
	}
	if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
		return nil, true, c.Status(fiber.StatusBadRequest).JSON(dto.Response{
			Success: false,
			Error:   "invalid_file",
			Message: "No es un archivo de imagen",
		})
	}
	f, ferr := fh.Open()
	if ferr != nil {
		return nil, true, serverError(c)
	}
	defer f.Close()
	data, ferr := io.ReadAll(f)
	if ferr != nil {
		return nil, true, serverError(c)
	}
	return &usecase.Image{Filename: fh.Filename, Data: data}, false, nil
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Accept       multipart/form-data
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.ValidationResponse
// @Failure      404   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/v1/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := h.validate.Validate(in); len(errs) > 0 {
		return validationError(c, errs)
	}
	img, done, err := formImage(c)
	if done {
		return err
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in, img)
	if err != nil {
		return handleDomainError(c, err, "Product")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Response{
		Success: true,
		Message: "Product created successfully",
		Data:    out,
	})
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Param        order       query  string  false  "asc o desc"  default(desc)
// @Param        categoryId  query  string  false  "Filtrar por categoría"
// @Param        name        query  string  false  "Subcadena del nombre, insensible a mayúsculas"
// @Success      200  {object}  dto.Response
// @Router       /api/v1/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetUserID(c), usecase.ProductListQuery{
		CategoryID: queryID(c, "categoryId"),
		Name:       c.Query("name"),
		Order:      repository.ParseOrder(c.Query("order")),
	})
	if err != nil {
		return handleDomainError(c, err, "Product")
	}
	return c.JSON(dto.Response{Success: true, Data: out})
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/v1/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return handleDomainError(c, err, "Product")
	}
	return c.JSON(dto.Response{Success: true, Data: out})
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Accept       json
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/v1/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := h.validate.Validate(in); len(errs) > 0 {
		return validationError(c, errs)
	}
	img, done, err := formImage(c)
	if done {
		return err
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), c.Params("id"), in, img)
	if err != nil {
		return handleDomainError(c, err, "Product")
	}
	return c.JSON(dto.Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    out,
	})
}

// Delete godoc
// @Summary      Eliminar producto (borrado lógico)
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/v1/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return handleDomainError(c, err, "Product")
	}
	return c.JSON(dto.Response{
		Success: true,
		Message: "Product deleted successfully",
	})
}

// queryID devuelve el query param como *string, nil si no vino.
func queryID(c *fiber.Ctx, key string) *string {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	return &v
}
