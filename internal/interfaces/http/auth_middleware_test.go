package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/backoffice-api/internal/domain/entity"
	apphttp "github.com/invorya/backoffice-api/internal/interfaces/http"
	"github.com/invorya/backoffice-api/pkg/jwt"
)

const testJWTSecret = "secreto-de-pruebas"

// buildTestApp construye una aplicación Fiber mínima con una ruta protegida
// por AuthMiddleware y otra que además exige un rol.
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	protected := app.Group("/", apphttp.AuthMiddleware(testJWTSecret))
	protected.Get("/me", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"name":    apphttp.GetActorName(c),
			"role":    apphttp.GetRole(c),
		})
	})
	protected.Get("/admin-only", apphttp.RequireRole(allowedRoles...), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func tokenForRole(t *testing.T, name, role string) string {
	t.Helper()
	token, err := jwt.Generate(testJWTSecret, "user-1", name, role, "backoffice-test", 5)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin)

	resp := doRequest(t, app, "/me", "")

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin)

	resp := doRequest(t, app, "/me", "Token abc123")

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenConFirmaIncorrecta(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin)
	otro, err := jwt.Generate("otro-secreto", "user-1", "Ana", entity.RoleAdmin, "backoffice-test", 5)
	require.NoError(t, err)

	resp := doRequest(t, app, "/me", "Bearer "+otro)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenValido(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin)
	token := tokenForRole(t, "Ana Souza", entity.RoleViewer)

	resp := doRequest(t, app, "/me", "Bearer "+token)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRole_RolPermitido(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin, entity.RoleOperator)
	token := tokenForRole(t, "Bruno Lima", entity.RoleOperator)

	resp := doRequest(t, app, "/admin-only", "Bearer "+token)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRole_RolProhibido(t *testing.T) {
	app := buildTestApp(entity.RoleAdmin)
	token := tokenForRole(t, "Carla Dias", entity.RoleViewer)

	resp := doRequest(t, app, "/admin-only", "Bearer "+token)

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
