package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"backoffice_backend/internals/configs"
	helper "backoffice_backend/internals/helpers"
)

// AuthMiddleware authenticates a request from the access_token cookie,
// falling back to an Authorization: Bearer header. On success it stores
// user_id and user_role in ctx locals.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies("access_token")
		if tokenString == "" {
			authz := c.Get("Authorization")
			if strings.HasPrefix(authz, "Bearer ") {
				tokenString = strings.TrimPrefix(authz, "Bearer ")
			}
		}
		if tokenString == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Authentication credentials were not provided")
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(configs.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token is invalid or expired")
		}

		sub, _ := claims["sub"].(string)
		if sub == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token is invalid or expired")
		}
		role, _ := claims["role"].(string)

		c.Locals("user_id", sub)
		c.Locals("user_role", role)
		return c.Next()
	}
}
