package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/JuanesPachon/Stockia/internal/application/dto"
	"github.com/JuanesPachon/Stockia/internal/domain"
)

// handleDomainError traduce un error de dominio al código y cuerpo documentados.
// resource es el nombre en inglés del recurso ("Category", "Product"...) para
// componer los mensajes "X not found" y "X already exists".
func handleDomainError(c *fiber.Ctx, err error, resource string) error {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return notFoundError(c, "User not found")
	case errors.Is(err, domain.ErrCategoryNotFound):
		return notFoundError(c, "Category not found or does not belong to the user")
	case errors.Is(err, domain.ErrProviderNotFound):
		return notFoundError(c, "Provider not found or does not belong to the user")
	case errors.Is(err, domain.ErrProductNotFound):
		return notFoundError(c, "One or more products not found or do not belong to the user")
	case errors.Is(err, domain.ErrNotFound):
		return notFoundError(c, resource+" not found")
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.Response{
			Success: false,
			Error:   "duplicate",
			Message: resource + " already exists",
		})
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Response{
			Success: false,
			Error:   "Invalid email or password",
		})
	case errors.Is(err, domain.ErrInvalidID):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Response{
			Success: false,
			Error:   "Invalid input data",
		})
	default:
		return serverError(c)
	}
}

func notFoundError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.Response{Success: false, Error: message})
}

func serverError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Response{
		Success: false,
		Error:   "The server encountered an error",
	})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Response{
		Success: false,
		Error:   "Invalid input data",
	})
}

func validationError(c *fiber.Ctx, errs []string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationResponse{
		Success: false,
		Errors:  errs,
	})
}
