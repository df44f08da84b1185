package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"backoffice_backend/internals/features/catalog/course/controller"
)

func CourseRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCourseController(db)

	courses := api.Group("/courses")
	courses.Get("/", ctrl.GetCourses)
	courses.Post("/", ctrl.CreateCourse)
	courses.Get("/:id", ctrl.GetCourse)
	courses.Put("/:id", ctrl.UpdateCourse)
	courses.Patch("/:id", ctrl.UpdateCourse)
	courses.Delete("/:id", ctrl.DeleteCourse)
}
