package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankUCLA/modasoft/internal/application/auth"
	"github.com/frankUCLA/modasoft/internal/domain/entity"
	apphttp "github.com/frankUCLA/modasoft/internal/interfaces/http"
	"github.com/frankUCLA/modasoft/pkg/logger"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) FindByUsuario(_ context.Context, usuario string) (*entity.User, error) {
	return r.users[usuario], nil
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.users[u.Usuario] = u
	return nil
}

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func buildAuthApp(t *testing.T) *fiber.App {
	t.Helper()
	hash, err := auth.HashPassword("secreto123")
	require.NoError(t, err)
	repo := &fakeUserRepo{users: map[string]*entity.User{
		"admin": {ID: 1, Usuario: "admin", PasswordHash: hash, Rol: entity.RoleAdministrador},
	}}

	sm := testManager(t)
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	handler := apphttp.NewAuthHandler(auth.NewUseCase(repo), sm, okPinger{}, testCookie, log)

	app := fiber.New()
	api := app.Group("/api", apphttp.SessionMiddleware(sm, testCookie))
	api.Get("/status", handler.Status)
	api.Post("/login", handler.Login)
	api.Post("/logout", handler.Logout)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any, cookie *http.Cookie) *http.Response {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == testCookie {
			return c
		}
	}
	return nil
}

func TestLogin_CredencialesValidasEmiteCookie(t *testing.T) {
	app := buildAuthApp(t)

	resp := postJSON(t, app, "/api/login", map[string]string{
		"usuario": "admin", "password": "secreto123",
	}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "admin", body["usuario"])
	assert.Equal(t, "Administrador", body["rol"])

	cookie := sessionCookie(resp)
	require.NotNil(t, cookie, "el login debe fijar la cookie de sesión")
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestLogin_PasswordIncorrectoSinCookie(t *testing.T) {
	app := buildAuthApp(t)

	resp := postJSON(t, app, "/api/login", map[string]string{
		"usuario": "admin", "password": "otracosa",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "Credenciales inválidas", body["error"])
	assert.Nil(t, sessionCookie(resp), "sin credenciales válidas no debe haber cookie")
}

func TestLogin_UsuarioInexistenteMismaRespuesta(t *testing.T) {
	app := buildAuthApp(t)

	resp := postJSON(t, app, "/api/login", map[string]string{
		"usuario": "fantasma", "password": "secreto123",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Credenciales inválidas", body["error"],
		"usuario inexistente y password malo deben ser indistinguibles")
}

func TestLogin_CamposVaciosDevuelve400(t *testing.T) {
	app := buildAuthApp(t)

	resp := postJSON(t, app, "/api/login", map[string]string{}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStatus_SinSesionEsInvitado(t *testing.T) {
	app := buildAuthApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["servidor"])
	assert.Equal(t, true, body["bd"])
	assert.Nil(t, body["usuario"])
	assert.Equal(t, "Invitado", body["rol"])
}

func TestStatus_ConSesionReportaUsuario(t *testing.T) {
	app := buildAuthApp(t)

	login := postJSON(t, app, "/api/login", map[string]string{
		"usuario": "admin", "password": "secreto123",
	}, nil)
	cookie := sessionCookie(login)
	require.NotNil(t, cookie)

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	body := decodeBody(t, resp)
	assert.Equal(t, "admin", body["usuario"])
	assert.Equal(t, "Administrador", body["rol"])
}

func TestLogout_ExpiraCookieSiempre(t *testing.T) {
	app := buildAuthApp(t)

	// Con sesión activa
	login := postJSON(t, app, "/api/login", map[string]string{
		"usuario": "admin", "password": "secreto123",
	}, nil)
	resp := postJSON(t, app, "/api/logout", map[string]string{}, sessionCookie(login))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	cleared := sessionCookie(resp)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)

	// Sin sesión: misma respuesta, logout es idempotente
	resp = postJSON(t, app, "/api/logout", map[string]string{}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["ok"])
}
