package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/JuanesPachon/Stockia/internal/application/auth"
	"github.com/JuanesPachon/Stockia/internal/application/dto"
	"github.com/JuanesPachon/Stockia/internal/application/validation"
	"github.com/JuanesPachon/Stockia/internal/domain"
)

// AuthHandler maneja registro, login, logout y el perfil del usuario.
type AuthHandler struct {
	uc           *auth.UseCase
	validate     *validation.Validator
	secureCookie bool
	cookieMaxAge time.Duration
}

// NewAuthHandler construye el handler de auth. secureCookie debe ser false
// solo en desarrollo local sin TLS.
func NewAuthHandler(uc *auth.UseCase, validate *validation.Validator, secureCookie bool, cookieMaxAge time.Duration) *AuthHandler {
	return &AuthHandler{
		uc:           uc,
		validate:     validate,
		secureCookie: secureCookie,
		cookieMaxAge: cookieMaxAge,
	}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "name, email, password, businessName"
// @Success      201   {object}  dto.Response
// @Failure      400   {object}  dto.ValidationResponse
// @Failure      409   {object}  dto.Response
// @Router       /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := h.validate.Validate(in); len(errs) > 0 {
		return validationError(c, errs)
	}
	if err := h.uc.Register(c.Context(), in); err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.Response{
				Success: false,
				Message: "Email already exists",
			})
		}
		return serverError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Response{
		Success: true,
		Message: "User registered successfully",
	})
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.Response
// @Failure      401   {object}  dto.Response
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := h.validate.Validate(in); len(errs) > 0 {
		return validationError(c, errs)
	}
	token, user, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return handleDomainError(c, err, "User")
	}
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteStrictMode,
		MaxAge:   int(h.cookieMaxAge.Seconds()),
		Expires:  time.Now().Add(h.cookieMaxAge),
		Path:     "/",
	})
	return c.JSON(dto.Response{
		Success: true,
		Message: "Login successful",
		Data:    user,
	})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	// Expirar la cookie en el pasado la invalida en el navegador.
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteStrictMode,
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		Path:     "/",
	})
	return c.JSON(dto.Response{
		Success: true,
		Message: "Logout successful",
	})
}

// Profile godoc
// @Summary      Perfil del usuario autenticado
// @Tags         user
// @Produce      json
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/v1/user [get]
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	user, err := h.uc.Profile(c.Context(), GetUserID(c))
	if err != nil {
		return handleDomainError(c, err, "User")
	}
	return c.JSON(dto.Response{Success: true, Data: user})
}
