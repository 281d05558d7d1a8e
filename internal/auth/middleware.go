package auth

import (
	"strings"

	"fabrica-backend/internal/config"

	"github.com/gofiber/fiber/v2"
)

const (
	CtxUsuarioIDKey = "usuario_id"
	CtxEmailKey     = "usuario_email"
	CtxRoleIDKey    = "usuario_role_id"
)

// Middleware valida o bearer token e injeta a identidade autenticada nos
// locals do contexto. Os handlers do core não dependem dela — operador das
// fichas vem do corpo da requisição, não da credencial.
func Middleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Token não fornecido.")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "Token mal formatado.")
		}

		claims, err := validarToken(cfg.JWTAccessSecret, parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token inválido.")
		}

		c.Locals(CtxUsuarioIDKey, claims.UsuarioID)
		c.Locals(CtxEmailKey, claims.Email)
		c.Locals(CtxRoleIDKey, claims.RoleID)

		return c.Next()
	}
}
