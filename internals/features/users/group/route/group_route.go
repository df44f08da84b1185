package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"backoffice_backend/internals/constants"
	authMw "backoffice_backend/internals/middlewares/auth"

	"backoffice_backend/internals/features/users/group/controller"
)

func GroupRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewGroupController(db)
	superuserOnly := authMw.OnlyRoles(constants.RoleErrorSuperuser("group management"), constants.SuperuserOnly...)

	groups := api.Group("/groups")
	groups.Get("/", ctrl.GetGroups)
	groups.Post("/", superuserOnly, ctrl.CreateGroup)
	groups.Get("/:id", ctrl.GetGroup)
	groups.Put("/:id", superuserOnly, ctrl.UpdateGroup)
	groups.Patch("/:id", superuserOnly, ctrl.UpdateGroup)
	groups.Delete("/:id", superuserOnly, ctrl.DeleteGroup)

	perms := api.Group("/permissions")
	perms.Get("/", ctrl.GetPermissions)
	perms.Post("/", superuserOnly, ctrl.CreatePermission)
	perms.Get("/:id", ctrl.GetPermission)
	perms.Put("/:id", superuserOnly, ctrl.UpdatePermission)
	perms.Patch("/:id", superuserOnly, ctrl.UpdatePermission)
	perms.Delete("/:id", superuserOnly, ctrl.DeletePermission)
}
