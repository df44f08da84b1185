package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"backoffice_backend/internals/features/users/auth/controller"
)

// AuthRoutes is mounted under /auth and stays outside the JWT guard.
func AuthRoutes(authGroup fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	authGroup.Post("/token/", ctrl.Login)
	authGroup.Post("/token/refresh/", ctrl.Refresh)
}

// SessionRoutes is mounted under /api behind the JWT guard.
func SessionRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	api.Get("/user-group-permissions/", ctrl.UserGroupPermissions)
	api.Post("/user-group-permissions/", ctrl.UserGroupPermissions)
}
