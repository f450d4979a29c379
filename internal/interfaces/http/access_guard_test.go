package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invorder-api/internal/domain/entity"
	apphttp "github.com/jhoicas/invorder-api/internal/interfaces/http"
	"github.com/jhoicas/invorder-api/pkg/session"
)

// ─────────────────────────────────────────────────────────────────────────────
// Guards de API y de páginas: 401/403 exactos y redirecciones por rol.
// ─────────────────────────────────────────────────────────────────────────────

func buildGuardApp() *fiber.App {
	app := fiber.New()
	app.Use(apphttp.SessionMiddleware(testSecret))

	ok := func(c *fiber.Ctx) error { return c.SendString("ok") }

	app.Get("/api/any", apphttp.RequireAuth(), ok)
	app.Get("/api/admin", apphttp.RequireRole(entity.RoleManager), ok)
	app.Get("/page/manager", apphttp.RequirePageRole(entity.RoleManager), ok)
	return app
}

func sessionCookie(t *testing.T, role string) *http.Cookie {
	t.Helper()
	token, err := session.Issue(testSecret, session.Session{
		ID:    "0b7a4b1e-1111-4ccc-9ddd-000000000001",
		Email: "test@demo.local",
		Name:  "Test",
		Role:  role,
	}, time.Hour)
	require.NoError(t, err)
	return &http.Cookie{Name: apphttp.SessionCookie, Value: token}
}

func TestRequireAuth_AnonimoRecibe401(t *testing.T) {
	app := buildGuardApp()

	req := httptest.NewRequest(http.MethodGet, "/api/any", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuth_CualquierRolAutenticadoPasa(t *testing.T) {
	app := buildGuardApp()

	for _, role := range []string{"MANAGER", "EMPLOYEE", "PURCHASER"} {
		req := httptest.NewRequest(http.MethodGet, "/api/any", nil)
		req.AddCookie(sessionCookie(t, role))
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, "rol %s", role)
	}
}

func TestRequireRole_RolPermitidoPasa(t *testing.T) {
	app := buildGuardApp()

	req := httptest.NewRequest(http.MethodGet, "/api/admin", nil)
	req.AddCookie(sessionCookie(t, "MANAGER"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_EmployeeBloqueadoEnRutaManager(t *testing.T) {
	app := buildGuardApp()

	req := httptest.NewRequest(http.MethodGet, "/api/admin", nil)
	req.AddCookie(sessionCookie(t, "EMPLOYEE"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	// Autenticado pero sin permiso: 403, no 401.
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireRole_TokenExpiradoEsAnonimo(t *testing.T) {
	app := buildGuardApp()

	token, err := session.Issue(testSecret, session.Session{ID: "x", Role: "MANAGER"}, -time.Minute)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/api/admin", nil)
	req.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: token})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole_TokenManipuladoEsAnonimo(t *testing.T) {
	app := buildGuardApp()

	req := httptest.NewRequest(http.MethodGet, "/api/admin", nil)
	req.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: "aaa.bbb.ccc"})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequirePageRole_AnonimoRedirigeALogin(t *testing.T) {
	app := buildGuardApp()

	req := httptest.NewRequest(http.MethodGet, "/page/manager", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestRequirePageRole_RolIncorrectoRedirigeAlHome(t *testing.T) {
	app := buildGuardApp()

	req := httptest.NewRequest(http.MethodGet, "/page/manager", nil)
	req.AddCookie(sessionCookie(t, "PURCHASER"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestRequirePageRole_RolPermitidoPasa(t *testing.T) {
	app := buildGuardApp()

	req := httptest.NewRequest(http.MethodGet, "/page/manager", nil)
	req.AddCookie(sessionCookie(t, "MANAGER"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
