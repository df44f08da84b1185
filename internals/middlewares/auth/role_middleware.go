package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "backoffice_backend/internals/helpers"
)

// OnlyRoles rejects authenticated callers whose role is not listed.
func OnlyRoles(message string, allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		for _, r := range allowed {
			if role == r {
				return c.Next()
			}
		}
		return helper.JsonError(c, fiber.StatusForbidden, message)
	}
}
