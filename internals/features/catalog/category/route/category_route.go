package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"backoffice_backend/internals/features/catalog/category/controller"
)

func CategoryRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCategoryController(db)

	categories := api.Group("/categories")
	categories.Get("/", ctrl.GetCategories)
	categories.Post("/", ctrl.CreateCategory)
	categories.Get("/:id", ctrl.GetCategory)
	categories.Put("/:id", ctrl.UpdateCategory)
	categories.Patch("/:id", ctrl.UpdateCategory)
	categories.Delete("/:id", ctrl.DeleteCategory)
}
