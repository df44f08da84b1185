package database

import (
	"gorm.io/gorm"

	categoryModel "backoffice_backend/internals/features/catalog/category/model"
	courseModel "backoffice_backend/internals/features/catalog/course/model"
	lessonModel "backoffice_backend/internals/features/catalog/lesson/model"
	branchModel "backoffice_backend/internals/features/partners/branch/model"
	employeeModel "backoffice_backend/internals/features/partners/employee/model"
	partnerModel "backoffice_backend/internals/features/partners/partner/model"
	groupModel "backoffice_backend/internals/features/users/group/model"
	userModel "backoffice_backend/internals/features/users/user/model"
)

// Migrate creates or updates the schema, including the foreign key
// constraints declared on the models. Parents go before children so the
// referenced tables exist when constraints are added.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&groupModel.GroupModel{},
		&groupModel.PermissionModel{},
		&groupModel.GroupDescriptionModel{},
		&groupModel.GroupPermissionModel{},
		&userModel.UserModel{},
		&userModel.UserGroupModel{},
		&categoryModel.CategoryModel{},
		&courseModel.CourseModel{},
		&courseModel.CourseCategoryModel{},
		&partnerModel.PartnerModel{},
		&partnerModel.PartnerCourseModel{},
		&branchModel.BranchModel{},
		&employeeModel.EmployeeModel{},
		&employeeModel.EmployeeBranchModel{},
		&employeeModel.EmployeeCourseModel{},
		&lessonModel.LessonModel{},
	)
}
