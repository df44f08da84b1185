package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"backoffice_backend/internals/features/catalog/lesson/controller"
)

func LessonRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLessonController(db)

	lessons := api.Group("/lessons")
	lessons.Get("/", ctrl.GetLessons)
	lessons.Post("/", ctrl.CreateLesson)
	lessons.Get("/:id", ctrl.GetLesson)
	lessons.Put("/:id", ctrl.UpdateLesson)
	lessons.Patch("/:id", ctrl.UpdateLesson)
	lessons.Delete("/:id", ctrl.DeleteLesson)
}
