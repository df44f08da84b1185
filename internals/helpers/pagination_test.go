package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveFor(t *testing.T, target string) Paging {
	t.Helper()

	var got Paging
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		got = ResolvePaging(c)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePaging(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p := resolveFor(t, "/")
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, DefaultPageSize, p.PageSize)
		assert.Equal(t, 0, p.Offset)
	})

	t.Run("explicit page and size", func(t *testing.T) {
		p := resolveFor(t, "/?page=3&page_size=10")
		assert.Equal(t, 3, p.Page)
		assert.Equal(t, 10, p.PageSize)
		assert.Equal(t, 20, p.Offset)
		assert.Equal(t, 10, p.Limit)
	})

	t.Run("size capped at maximum", func(t *testing.T) {
		p := resolveFor(t, "/?page_size=9999")
		assert.Equal(t, MaxPageSize, p.PageSize)
	})

	t.Run("garbage falls back to defaults", func(t *testing.T) {
		p := resolveFor(t, "/?page=abc&page_size=-4")
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, DefaultPageSize, p.PageSize)
	})
}
