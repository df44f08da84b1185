package controller

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"backoffice_backend/internals/constants"
	helper "backoffice_backend/internals/helpers"
	"backoffice_backend/internals/helpers/i18n"
	helperOSS "backoffice_backend/internals/helpers/oss"
	"backoffice_backend/internals/helpers/scope"

	categoryService "backoffice_backend/internals/features/catalog/category/service"
	"backoffice_backend/internals/features/catalog/course/dto"
	"backoffice_backend/internals/features/catalog/course/model"
	employeeModel "backoffice_backend/internals/features/partners/employee/model"
)

type CourseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db, Validate: validator.New()}
}

func (ctrl *CourseController) GetCourses(c *fiber.Ctx) error {
	lang := i18n.Lang(c)
	paging := helper.ResolvePaging(c)
	caller := scope.FromCtx(c)

	q := ctrl.DB.Model(&model.CourseModel{}).Scopes(scope.Courses(caller))
	if teacher := c.Query("teacher"); teacher != "" {
		q = q.Where("course_id IN (SELECT course_id FROM employee_courses WHERE employee_user_id = ?)", teacher)
	}
	if search := c.Query("search"); search != "" {
		q = q.Where("course_name ILIKE ?", "%"+search+"%")
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("course_status = ?", status)
	}
	if category := c.Query("category"); category != "" {
		q = q.Where("course_id IN (SELECT cc.course_id FROM course_categories cc JOIN categories cat ON cat.category_id = cc.category_id WHERE cat.category_name ILIKE ?)",
			"%"+category+"%")
	}
	if age := c.Query("age"); age != "" {
		if n, err := strconv.Atoi(age); err == nil {
			q = q.Where("course_min_age <= ? AND course_max_age >= ?", n, n)
		}
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}

	var courses []model.CourseModel
	if err := q.Order("course_id ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&courses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}

	results := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		results = append(results, ctrl.render(&courses[i], lang))
	}
	return helper.JsonList(c, count, results)
}

func (ctrl *CourseController) GetCourse(c *fiber.Ctx) error {
	caller := scope.FromCtx(c)

	var course model.CourseModel
	if err := ctrl.DB.Scopes(scope.Courses(caller)).
		First(&course, "course_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Not found")
	}
	return helper.JsonOK(c, ctrl.render(&course, i18n.Lang(c)))
}

func (ctrl *CourseController) CreateCourse(c *fiber.Ctx) error {
	var req dto.CourseCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Teachers != nil {
		if ok, err := ctrl.allTeacherGroup(*req.Teachers); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create course")
		} else if !ok {
			return helper.JsonFieldError(c, "teachers", "Teachers must be employees in the teacher group.")
		}
	}

	course := model.CourseModel{
		CourseName:   req.Name,
		CourseMinAge: req.MinAge,
		CourseMaxAge: req.MaxAge,
		CourseLink:   req.Link,
		CourseStatus: model.CourseStatusActive,
		CourseNote:   req.Note,
	}
	if req.Status != nil {
		course.CourseStatus = *req.Status
	}

	if fh, errFile := c.FormFile("image"); errFile == nil && fh != nil {
		blob, errBlob := helperOSS.Blob()
		if errBlob != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "File storage is not available")
		}
		url, errUp := blob.UploadImage(c.Context(), "course_images", fh)
		if errUp != nil {
			return helper.JsonFieldError(c, "image", "Failed to store image")
		}
		course.CourseImageURL = &url
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&course).Error; err != nil {
			return err
		}
		if req.Categories != nil {
			if err := ctrl.setCategories(tx, course.CourseID, *req.Categories); err != nil {
				return err
			}
		}
		if req.Teachers != nil {
			return setTeachers(tx, course.CourseID, *req.Teachers)
		}
		return nil
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create course")
	}

	return helper.JsonCreated(c, ctrl.render(&course, i18n.Lang(c)))
}

func (ctrl *CourseController) UpdateCourse(c *fiber.Ctx) error {
	caller := scope.FromCtx(c)

	var course model.CourseModel
	if err := ctrl.DB.Scopes(scope.Courses(caller)).
		First(&course, "course_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Not found")
	}

	var req dto.CourseUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// owners can only reassign teachers
	if caller.IsOwner() {
		req = dto.CourseUpdateRequest{Teachers: req.Teachers}
	}

	if req.Teachers != nil {
		if ok, err := ctrl.allTeacherGroup(*req.Teachers); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update course")
		} else if !ok {
			return helper.JsonFieldError(c, "teachers", "Teachers must be employees in the teacher group.")
		}
	}

	if req.Name != nil {
		course.CourseName = *req.Name
	}
	if req.MinAge != nil {
		course.CourseMinAge = req.MinAge
	}
	if req.MaxAge != nil {
		course.CourseMaxAge = req.MaxAge
	}
	if req.Link != nil {
		course.CourseLink = req.Link
	}
	if req.Status != nil {
		course.CourseStatus = *req.Status
	}
	if req.Note != nil {
		course.CourseNote = req.Note
	}

	prevURL := ""
	if course.CourseImageURL != nil {
		prevURL = *course.CourseImageURL
	}
	uploaded := false
	if !caller.IsOwner() {
		if fh, errFile := c.FormFile("image"); errFile == nil && fh != nil {
			blob, errBlob := helperOSS.Blob()
			if errBlob != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "File storage is not available")
			}
			url, errUp := blob.UploadImage(c.Context(), "course_images", fh)
			if errUp != nil {
				return helper.JsonFieldError(c, "image", "Failed to store image")
			}
			course.CourseImageURL = &url
			uploaded = true
		}
	}
	newURL := ""
	if course.CourseImageURL != nil {
		newURL = *course.CourseImageURL
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&course).Error; err != nil {
			return err
		}
		if req.Categories != nil {
			if err := tx.Where("course_id = ?", course.CourseID).
				Delete(&model.CourseCategoryModel{}).Error; err != nil {
				return err
			}
			if err := ctrl.setCategories(tx, course.CourseID, *req.Categories); err != nil {
				return err
			}
		}
		if req.Teachers != nil {
			if err := tx.Where("course_id = ?", course.CourseID).
				Delete(&employeeModel.EmployeeCourseModel{}).Error; err != nil {
				return err
			}
			return setTeachers(tx, course.CourseID, *req.Teachers)
		}
		return nil
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update course")
	}

	if change, old := helperOSS.PlanFileChange(prevURL, newURL, uploaded); change == helperOSS.FileReplaced {
		helperOSS.DeleteBlobQuietly(c.Context(), old)
	}

	return helper.JsonOK(c, ctrl.render(&course, i18n.Lang(c)))
}

func (ctrl *CourseController) DeleteCourse(c *fiber.Ctx) error {
	caller := scope.FromCtx(c)

	var course model.CourseModel
	if err := ctrl.DB.Scopes(scope.Courses(caller)).
		First(&course, "course_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Not found")
	}
	if err := ctrl.DB.Delete(&course).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete course")
	}
	if course.CourseImageURL != nil {
		helperOSS.DeleteBlobQuietly(c.Context(), *course.CourseImageURL)
	}
	return helper.JsonDeleted(c)
}

// setCategories links the submitted categories expanded to their full
// ancestor chains.
func (ctrl *CourseController) setCategories(tx *gorm.DB, courseID int64, ids []int64) error {
	parents, err := categoryService.ParentMap(tx)
	if err != nil {
		return err
	}
	for _, id := range categoryService.ExpandWithAncestors(ids, parents) {
		if err := tx.Create(&model.CourseCategoryModel{CourseID: courseID, CategoryID: id}).Error; err != nil {
			return err
		}
	}
	return nil
}

func setTeachers(tx *gorm.DB, courseID int64, teacherIDs []int64) error {
	for _, id := range teacherIDs {
		if err := tx.Create(&employeeModel.EmployeeCourseModel{
			EmployeeUserID: id,
			CourseID:       courseID,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}

// allTeacherGroup checks that every id is an employee in the teacher group.
func (ctrl *CourseController) allTeacherGroup(ids []int64) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}
	var n int64
	err := ctrl.DB.Table("employees").
		Joins("JOIN user_groups ug ON ug.user_id = employees.employee_user_id").
		Joins("JOIN groups g ON g.group_id = ug.group_id").
		Where("employees.employee_user_id IN ? AND g.group_name = ?", ids, constants.RoleTeacher).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n == int64(len(dedup(ids))), nil
}

func dedup(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func (ctrl *CourseController) render(course *model.CourseModel, lang string) dto.CourseResponse {
	var categoryIDs []int64
	ctrl.DB.Model(&model.CourseCategoryModel{}).
		Where("course_id = ?", course.CourseID).
		Order("category_id ASC").
		Pluck("category_id", &categoryIDs)
	names, _ := categoryService.NameMap(ctrl.DB, categoryIDs)
	categories := make([]string, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		if name, ok := names[id]; ok {
			categories = append(categories, name)
		}
	}

	var teachers []int64
	ctrl.DB.Model(&employeeModel.EmployeeCourseModel{}).
		Where("course_id = ?", course.CourseID).
		Order("employee_user_id ASC").
		Pluck("employee_user_id", &teachers)

	return dto.NewCourseResponse(course, categories, teachers, lang)
}
