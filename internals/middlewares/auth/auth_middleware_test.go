package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice_backend/internals/configs"
)

func protectedApp(t *testing.T) (*fiber.App, *map[string]string) {
	t.Helper()
	configs.JWTSecret = "test-access-secret"

	captured := map[string]string{}
	app := fiber.New()
	app.Get("/api/ping", AuthMiddleware(), func(c *fiber.Ctx) error {
		captured["user_id"], _ = c.Locals("user_id").(string)
		captured["user_role"], _ = c.Locals("user_role").(string)
		return c.SendStatus(fiber.StatusOK)
	})
	return app, &captured
}

func signAccess(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	require.NoError(t, err)
	return signed
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	app, _ := protectedApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareCookie(t *testing.T) {
	app, captured := protectedApp(t)

	token := signAccess(t, jwt.MapClaims{
		"sub":  "42",
		"role": "teacher",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	req := httptest.NewRequest("GET", "/api/ping", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "42", (*captured)["user_id"])
	assert.Equal(t, "teacher", (*captured)["user_role"])
}

func TestAuthMiddlewareBearerFallback(t *testing.T) {
	app, captured := protectedApp(t)

	token := signAccess(t, jwt.MapClaims{
		"sub":  "7",
		"role": "owner",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	req := httptest.NewRequest("GET", "/api/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "7", (*captured)["user_id"])
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	app, _ := protectedApp(t)

	token := signAccess(t, jwt.MapClaims{
		"sub":  "42",
		"role": "teacher",
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})
	req := httptest.NewRequest("GET", "/api/ping", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareRejectsTokenWithoutSubject(t *testing.T) {
	app, _ := protectedApp(t)

	token := signAccess(t, jwt.MapClaims{
		"user_id": 42,
		"role":    "teacher",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	req := httptest.NewRequest("GET", "/api/ping", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestOnlyRoles(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals("user_role", "teacher")
		return c.Next()
	}, OnlyRoles("Only owners may access this.", "owner", "superuser"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
