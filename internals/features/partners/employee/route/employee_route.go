package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"backoffice_backend/internals/features/partners/employee/controller"
)

func EmployeeRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEmployeeController(db)

	employees := api.Group("/employees")
	employees.Get("/", ctrl.GetEmployees)
	employees.Post("/", ctrl.CreateEmployee)
	employees.Get("/:id", ctrl.GetEmployee)
	employees.Put("/:id", ctrl.UpdateEmployee)
	employees.Patch("/:id", ctrl.UpdateEmployee)
	employees.Delete("/:id", ctrl.DeleteEmployee)
}
