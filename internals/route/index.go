package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMw "backoffice_backend/internals/middlewares/auth"

	categoryRoute "backoffice_backend/internals/features/catalog/category/route"
	courseRoute "backoffice_backend/internals/features/catalog/course/route"
	lessonRoute "backoffice_backend/internals/features/catalog/lesson/route"
	branchRoute "backoffice_backend/internals/features/partners/branch/route"
	employeeRoute "backoffice_backend/internals/features/partners/employee/route"
	partnerRoute "backoffice_backend/internals/features/partners/partner/route"
	authRoute "backoffice_backend/internals/features/users/auth/route"
	groupRoute "backoffice_backend/internals/features/users/group/route"
	userRoute "backoffice_backend/internals/features/users/user/route"
)

// SetupRoutes mounts the public /auth group and the JWT-guarded /api group.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authGroup := app.Group("/auth")
	authRoute.AuthRoutes(authGroup, db)

	api := app.Group("/api", authMw.AuthMiddleware())
	authRoute.SessionRoutes(api, db)
	userRoute.UserRoutes(api, db)
	groupRoute.GroupRoutes(api, db)
	partnerRoute.PartnerRoutes(api, db)
	employeeRoute.EmployeeRoutes(api, db)
	branchRoute.BranchRoutes(api, db)
	courseRoute.CourseRoutes(api, db)
	categoryRoute.CategoryRoutes(api, db)
	lessonRoute.LessonRoutes(api, db)
}
