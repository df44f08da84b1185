package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"backoffice_backend/internals/features/partners/branch/controller"
)

func BranchRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBranchController(db)

	branches := api.Group("/branches")
	branches.Get("/", ctrl.GetBranches)
	branches.Post("/", ctrl.CreateBranch)
	branches.Get("/:id", ctrl.GetBranch)
	branches.Put("/:id", ctrl.UpdateBranch)
	branches.Patch("/:id", ctrl.UpdateBranch)
	branches.Delete("/:id", ctrl.DeleteBranch)
}
