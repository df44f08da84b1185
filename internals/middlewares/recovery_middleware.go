package middlewares

import (
	"log"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"

	helper "backoffice_backend/internals/helpers"
)

// RecoveryMiddleware turns panics into a 500 detail response instead of
// dropping the connection.
func RecoveryMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[ERROR] panic on %s %s: %v\n%s", c.Method(), c.Path(), r, debug.Stack())
				_ = helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
			}
		}()
		return c.Next()
	}
}
