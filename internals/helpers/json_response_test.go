package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bodyOf(t *testing.T, app *fiber.App, target string) (int, map[string]any) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

func TestJsonList(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return JsonList(c, 2, []string{"a", "b"})
	})

	status, body := bodyOf(t, app, "/")
	assert.Equal(t, fiber.StatusOK, status)
	assert.EqualValues(t, 2, body["count"])
	assert.Len(t, body["results"], 2)
}

func TestJsonError(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return JsonError(c, fiber.StatusNotFound, "Not found")
	})

	status, body := bodyOf(t, app, "/")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Not found", body["detail"])
}

func TestJsonFieldError(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return JsonFieldError(c, "email", "user with this email already exists.")
	})

	status, body := bodyOf(t, app, "/")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, []any{"user with this email already exists."}, body["email"])
}

func TestJsonDeleted(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return JsonDeleted(c)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Empty(t, raw)
}

func TestValidationErrorShape(t *testing.T) {
	type payload struct {
		Email string `json:"email" validate:"required,email"`
	}
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return ValidationError(c, validator.New().Struct(&payload{Email: "nope"}))
	})

	status, body := bodyOf(t, app, "/")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "email")
}
