package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/JuanesPachon/Stockia/internal/application/dto"
	"github.com/JuanesPachon/Stockia/pkg/jwt"
)

// CookieName nombre de la cookie de sesión.
const CookieName = "access_token"

// LocalUserID key de c.Locals donde queda el id del usuario autenticado.
const LocalUserID = "user_id"

// AuthMiddleware valida el JWT de la cookie de sesión y deja el UserID en
// c.Locals. Sin cookie, token vencido y token inválido responden 401 con el
// mensaje que el cliente ya conoce.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(CookieName)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Response{
				Success: false,
				Message: "Access token required",
			})
		}
		userID, _, err := jwt.Parse(jwtSecret, token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.Response{
					Success: false,
					Message: "Token expired",
				})
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Response{
				Success: false,
				Message: "Invalid token",
			})
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
