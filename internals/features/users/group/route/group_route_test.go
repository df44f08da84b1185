package route

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice_backend/internals/constants"
)

func permissionApp(role string) *fiber.App {
	app := fiber.New()
	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Locals("user_role", role)
		return c.Next()
	})
	GroupRoutes(api, nil)
	return app
}

func TestPermissionWritesForbiddenBelowSuperuser(t *testing.T) {
	app := permissionApp(constants.RoleOwner)

	for _, tc := range []struct{ method, path string }{
		{"POST", "/api/permissions/"},
		{"PUT", "/api/permissions/1"},
		{"PATCH", "/api/permissions/1"},
		{"DELETE", "/api/permissions/1"},
	} {
		resp, err := app.Test(httptest.NewRequest(tc.method, tc.path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode, "%s %s", tc.method, tc.path)
	}
}
