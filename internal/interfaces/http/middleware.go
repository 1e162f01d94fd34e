package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/frankUCLA/modasoft/internal/application/dto"
	"github.com/frankUCLA/modasoft/internal/domain/entity"
	"github.com/frankUCLA/modasoft/pkg/session"
)

// localSession clave de fiber.Ctx.Locals para la sesión verificada.
const localSession = "session"

// Session identidad autenticada del request.
type Session struct {
	UserID  int64
	Usuario string
	Rol     entity.Role
}

// SessionMiddleware lee y verifica la cookie de sesión. Nunca rechaza: si la
// cookie falta, expiró o está manipulada, el request sigue como invitado y
// los gates de rol deciden después.
func SessionMiddleware(sm *session.Manager, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			return c.Next()
		}
		data, err := sm.Parse(token)
		if err != nil {
			return c.Next()
		}
		rol, err := entity.ParseRole(data.Rol)
		if err != nil {
			return c.Next()
		}
		c.Locals(localSession, &Session{UserID: data.UserID, Usuario: data.Usuario, Rol: rol})
		return c.Next()
	}
}

// RequireRole gate RBAC: 401 sin sesión, 403 con sesión de rol insuficiente.
func RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := CurrentSession(c)
		if sess == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: "No autenticado",
			})
		}
		for _, r := range roles {
			if sess.Rol == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: "Acceso no autorizado",
		})
	}
}

// CurrentSession devuelve la sesión del request o nil si es invitado.
func CurrentSession(c *fiber.Ctx) *Session {
	sess, _ := c.Locals(localSession).(*Session)
	return sess
}
