package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankUCLA/modasoft/internal/domain/entity"
	apphttp "github.com/frankUCLA/modasoft/internal/interfaces/http"
	"github.com/frankUCLA/modasoft/pkg/session"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret = "test-secret-key-for-unit-tests"
	testCookie = "modasoft_session"
	testIssuer = "modasoft-test"
	testTTLMin = 60
)

func testManager(t *testing.T) *session.Manager {
	t.Helper()
	sm, err := session.NewManager(testSecret, testIssuer, testTTLMin)
	require.NoError(t, err)
	return sm
}

// buildTestApp aplicación mínima: SessionMiddleware + RequireRole + handler
// que devuelve 200 si los middlewares dejan pasar.
func buildTestApp(t *testing.T, allowed ...entity.Role) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/protegida",
		apphttp.SessionMiddleware(testManager(t), testCookie),
		apphttp.RequireRole(allowed...),
		func(c *fiber.Ctx) error {
			sess := apphttp.CurrentSession(c)
			return c.JSON(fiber.Map{"ok": true, "rol": string(sess.Rol)})
		},
	)
	return app
}

// cookieForRole emite la cookie de sesión para el rol indicado.
func cookieForRole(t *testing.T, rol entity.Role) *http.Cookie {
	t.Helper()
	token, err := testManager(t).Issue(1, "usuario-test", string(rol))
	require.NoError(t, err)
	return &http.Cookie{Name: testCookie, Value: token}
}

func doRequest(t *testing.T, app *fiber.App, cookie *http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp(t, entity.RoleAdministrador)

	resp := doRequest(t, app, cookieForRole(t, entity.RoleAdministrador))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "administrador", body["rol"])
}

func TestRequireRole_SinCookieDevuelve401(t *testing.T) {
	app := buildTestApp(t, entity.RoleAdministrador)

	resp := doRequest(t, app, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "No autenticado", body["error"])
}

func TestRequireRole_RolInsuficienteDevuelve403(t *testing.T) {
	app := buildTestApp(t, entity.RoleAdministrador)

	resp := doRequest(t, app, cookieForRole(t, entity.RoleCaja))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "Acceso no autorizado", body["error"])
}

func TestRequireRole_CookieManipuladaEsInvitado(t *testing.T) {
	app := buildTestApp(t, entity.RoleAdministrador)

	cookie := cookieForRole(t, entity.RoleAdministrador)
	cookie.Value = cookie.Value[:len(cookie.Value)-4] + "XXXX"

	resp := doRequest(t, app, cookie)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"una cookie manipulada debe tratarse igual que la ausencia de sesión")
}

func TestRequireRole_SesionExpiradaEsInvitado(t *testing.T) {
	// Manager con TTL negativo emite tokens ya vencidos.
	expired, err := session.NewManager(testSecret, testIssuer, -1)
	require.NoError(t, err)
	token, err := expired.Issue(1, "usuario-test", string(entity.RoleCaja))
	require.NoError(t, err)

	app := buildTestApp(t, entity.RoleCaja)
	resp := doRequest(t, app, &http.Cookie{Name: testCookie, Value: token})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole_VariosRolesPermitidos(t *testing.T) {
	app := buildTestApp(t, entity.RoleAdministrador, entity.RoleCaja)

	for _, rol := range []entity.Role{entity.RoleAdministrador, entity.RoleCaja} {
		resp := doRequest(t, app, cookieForRole(t, rol))
		assert.Equal(t, http.StatusOK, resp.StatusCode, "rol %s debería pasar", rol)
	}
}
