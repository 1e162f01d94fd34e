package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/frankUCLA/modasoft/internal/application/auth"
	"github.com/frankUCLA/modasoft/internal/application/dto"
	"github.com/frankUCLA/modasoft/pkg/logger"
	"github.com/frankUCLA/modasoft/pkg/session"
)

// Pinger verificación de salud de la base de datos (lo satisface el pool).
type Pinger interface {
	Ping(ctx context.Context) error
}

// AuthHandler login, logout y estado de sesión.
type AuthHandler struct {
	uc         *auth.UseCase
	sessions   *session.Manager
	db         Pinger
	cookieName string
	log        *logger.Logger
}

// NewAuthHandler construye el handler de autenticación.
func NewAuthHandler(uc *auth.UseCase, sessions *session.Manager, db Pinger, cookieName string, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, sessions: sessions, db: db, cookieName: cookieName, log: log}
}

// Status GET /api/status. Público: reporta servidor, conectividad a la DB y
// la sesión actual (usuario null y rol "Invitado" si no hay).
func (h *AuthHandler) Status(c *fiber.Ctx) error {
	pingCtx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()
	dbOK := h.db.Ping(pingCtx) == nil

	resp := dto.StatusResponse{Servidor: true, BD: dbOK, Rol: "Invitado"}
	if sess := CurrentSession(c); sess != nil {
		usuario := sess.Usuario
		resp.Usuario = &usuario
		resp.Rol = sess.Rol.Label()
	}
	return c.JSON(resp)
}

// Login POST /api/login. Si las credenciales son válidas, emite la cookie de
// sesión firmada. Credenciales malas responden 401 sin distinguir usuario
// inexistente de password incorrecto.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c)
	}

	user, err := h.uc.Login(c.Context(), req.Usuario, req.Password)
	if err != nil {
		return respondError(c, h.log, err)
	}

	token, err := h.sessions.Issue(user.ID, user.Usuario, string(user.Rol))
	if err != nil {
		return respondError(c, h.log, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Expires:  time.Now().Add(h.sessions.TTL()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	h.log.Info().Str("usuario", user.Usuario).Str("rol", string(user.Rol)).Msg("sesión iniciada")
	return c.JSON(dto.LoginResponse{Ok: true, Usuario: user.Usuario, Rol: user.Rol.Label()})
}

// Logout POST /api/logout. Público e idempotente: expira la cookie exista o
// no una sesión válida.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return c.JSON(dto.OkResponse{Ok: true})
}
