package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func langFor(t *testing.T, acceptLanguage string) string {
	t.Helper()

	var got string
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		got = Lang(c)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	if acceptLanguage != "" {
		req.Header.Set("Accept-Language", acceptLanguage)
	}
	_, err := app.Test(req)
	require.NoError(t, err)
	return got
}

func TestLang(t *testing.T) {
	assert.Equal(t, "en", langFor(t, ""))
	assert.Equal(t, "ru", langFor(t, "ru"))
	assert.Equal(t, "ru", langFor(t, "ru-RU,ru;q=0.9,en;q=0.8"))
	assert.Equal(t, "en", langFor(t, "de-DE,de;q=0.9"))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Active", Label("en", "active"))
	assert.Equal(t, "Активный", Label("ru", "active"))
	assert.Equal(t, "Уволен", Label("ru", "fired"))
	assert.Equal(t, "преподаватель", Label("ru", "teacher"))

	// unknown language falls back to English, unknown code passes through
	assert.Equal(t, "Hidden", Label("fr", "hidden"))
	assert.Equal(t, "something_else", Label("en", "something_else"))
}
