package controller

import (
	"mime/multipart"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "backoffice_backend/internals/helpers"
	helperOSS "backoffice_backend/internals/helpers/oss"
	"backoffice_backend/internals/helpers/scope"

	courseModel "backoffice_backend/internals/features/catalog/course/model"
	"backoffice_backend/internals/features/catalog/lesson/dto"
	"backoffice_backend/internals/features/catalog/lesson/model"
)

type LessonController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewLessonController(db *gorm.DB) *LessonController {
	return &LessonController{DB: db, Validate: validator.New()}
}

func (ctrl *LessonController) GetLessons(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)
	caller := scope.FromCtx(c)

	q := ctrl.DB.Model(&model.LessonModel{}).Scopes(scope.Lessons(caller))
	if courseID := c.Query("course_id"); courseID != "" {
		q = q.Where("lesson_course_id = ?", courseID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch lessons")
	}

	var lessons []model.LessonModel
	if err := q.Order("lesson_course_id ASC, lesson_id ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&lessons).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch lessons")
	}

	results := make([]dto.LessonResponse, 0, len(lessons))
	for i := range lessons {
		results = append(results, dto.NewLessonResponse(&lessons[i]))
	}
	return helper.JsonList(c, count, results)
}

func (ctrl *LessonController) GetLesson(c *fiber.Ctx) error {
	caller := scope.FromCtx(c)

	var lesson model.LessonModel
	if err := ctrl.DB.Scopes(scope.Lessons(caller)).
		First(&lesson, "lesson_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Not found")
	}
	return helper.JsonOK(c, dto.NewLessonResponse(&lesson))
}

func (ctrl *LessonController) CreateLesson(c *fiber.Ctx) error {
	var req dto.LessonCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", req.Course).Error; err != nil {
		return helper.JsonFieldError(c, "course", "Course does not exist.")
	}

	lesson := model.LessonModel{
		LessonNumber:          req.Number,
		LessonName:            req.Name,
		LessonPresentationURL: req.PresentationURL,
		LessonDescription:     req.Description,
		LessonCourseID:        course.CourseID,
	}

	if handled, err := ctrl.storeFiles(c, &lesson, course.CourseName); handled {
		return err
	}

	if err := ctrl.DB.Create(&lesson).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create lesson")
	}
	return helper.JsonCreated(c, dto.NewLessonResponse(&lesson))
}

func (ctrl *LessonController) UpdateLesson(c *fiber.Ctx) error {
	caller := scope.FromCtx(c)

	var lesson model.LessonModel
	if err := ctrl.DB.Scopes(scope.Lessons(caller)).
		First(&lesson, "lesson_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Not found")
	}

	var req dto.LessonUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.Number != nil {
		lesson.LessonNumber = req.Number
	}
	if req.Name != nil {
		lesson.LessonName = *req.Name
	}
	if req.PresentationURL != nil {
		lesson.LessonPresentationURL = req.PresentationURL
	}
	if req.Description != nil {
		lesson.LessonDescription = req.Description
	}
	if req.Course != nil {
		lesson.LessonCourseID = *req.Course
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", lesson.LessonCourseID).Error; err != nil {
		return helper.JsonFieldError(c, "course", "Course does not exist.")
	}

	prevPresentation := strOrEmpty(lesson.LessonPresentation)
	prevAdditional := strOrEmpty(lesson.LessonAdditionalFile)

	uploadedPresentation, uploadedAdditional, handled, respErr := ctrl.storeFilesTracked(c, &lesson, course.CourseName)
	if handled {
		return respErr
	}

	if err := ctrl.DB.Save(&lesson).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update lesson")
	}

	if change, old := helperOSS.PlanFileChange(prevPresentation, strOrEmpty(lesson.LessonPresentation), uploadedPresentation); change == helperOSS.FileReplaced {
		helperOSS.DeleteBlobQuietly(c.Context(), old)
	}
	if change, old := helperOSS.PlanFileChange(prevAdditional, strOrEmpty(lesson.LessonAdditionalFile), uploadedAdditional); change == helperOSS.FileReplaced {
		helperOSS.DeleteBlobQuietly(c.Context(), old)
	}

	return helper.JsonOK(c, dto.NewLessonResponse(&lesson))
}

func (ctrl *LessonController) DeleteLesson(c *fiber.Ctx) error {
	caller := scope.FromCtx(c)

	var lesson model.LessonModel
	if err := ctrl.DB.Scopes(scope.Lessons(caller)).
		First(&lesson, "lesson_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Not found")
	}
	if err := ctrl.DB.Delete(&lesson).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete lesson")
	}
	if lesson.LessonPresentation != nil {
		helperOSS.DeleteBlobQuietly(c.Context(), *lesson.LessonPresentation)
	}
	if lesson.LessonAdditionalFile != nil {
		helperOSS.DeleteBlobQuietly(c.Context(), *lesson.LessonAdditionalFile)
	}
	return helper.JsonDeleted(c)
}

func (ctrl *LessonController) storeFiles(c *fiber.Ctx, lesson *model.LessonModel, courseName string) (bool, error) {
	_, _, handled, err := ctrl.storeFilesTracked(c, lesson, courseName)
	return handled, err
}

// storeFilesTracked uploads the presentation and additional_file parts when
// present, enforcing the per-field extension allow-lists. When handled is
// true a response has already been written and the caller must stop.
func (ctrl *LessonController) storeFilesTracked(c *fiber.Ctx, lesson *model.LessonModel, courseName string) (uploadedPresentation, uploadedAdditional, handled bool, respErr error) {
	dir := "lesson_files/" + courseName

	if fh, err := c.FormFile("presentation"); err == nil && fh != nil {
		if !dto.AllowedPresentationExt(fh.Filename) {
			return false, false, true, helper.JsonFieldError(c, "presentation", "Only .pptx and .pdf files are allowed.")
		}
		url, ok, respErr := ctrl.upload(c, dir, fh)
		if !ok {
			return false, false, true, respErr
		}
		lesson.LessonPresentation = &url
		uploadedPresentation = true
	}

	if fh, err := c.FormFile("additional_file"); err == nil && fh != nil {
		if !dto.AllowedAdditionalExt(fh.Filename) {
			return false, false, true, helper.JsonFieldError(c, "additional_file", "Only .pdf and .zip files are allowed.")
		}
		url, ok, respErr := ctrl.upload(c, dir, fh)
		if !ok {
			return false, false, true, respErr
		}
		lesson.LessonAdditionalFile = &url
		uploadedAdditional = true
	}

	return uploadedPresentation, uploadedAdditional, false, nil
}

func (ctrl *LessonController) upload(c *fiber.Ctx, dir string, fh *multipart.FileHeader) (string, bool, error) {
	blob, err := helperOSS.Blob()
	if err != nil {
		return "", false, helper.JsonError(c, fiber.StatusInternalServerError, "File storage is not available")
	}
	url, err := blob.UploadFile(c.Context(), dir, fh)
	if err != nil {
		return "", false, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store file")
	}
	return url, true, nil
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
