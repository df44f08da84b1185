package dto

import (
	"backoffice_backend/internals/features/catalog/course/model"
	"backoffice_backend/internals/helpers/i18n"
)

type CourseCreateRequest struct {
	Name   string  `json:"name" form:"name" validate:"required,max=255"`
	MinAge *int    `json:"min_age" form:"min_age" validate:"omitempty,gte=0"`
	MaxAge *int    `json:"max_age" form:"max_age" validate:"omitempty,gte=0"`
	Link   *string `json:"link" form:"link" validate:"omitempty,url"`
	Status *string `json:"status" form:"status" validate:"omitempty,oneof=active hidden archived"`
	Note   *string `json:"note" form:"note"`

	Categories *[]int64 `json:"categories" form:"categories"`
	Teachers   *[]int64 `json:"teachers" form:"teachers"`
}

type CourseUpdateRequest struct {
	Name   *string `json:"name" form:"name" validate:"omitempty,max=255"`
	MinAge *int    `json:"min_age" form:"min_age" validate:"omitempty,gte=0"`
	MaxAge *int    `json:"max_age" form:"max_age" validate:"omitempty,gte=0"`
	Link   *string `json:"link" form:"link" validate:"omitempty,url"`
	Status *string `json:"status" form:"status" validate:"omitempty,oneof=active hidden archived"`
	Note   *string `json:"note" form:"note"`

	Categories *[]int64 `json:"categories" form:"categories"`
	Teachers   *[]int64 `json:"teachers" form:"teachers"`
}

type CourseResponse struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	MinAge *int    `json:"min_age"`
	MaxAge *int    `json:"max_age"`
	Image  *string `json:"image"`
	Link   *string `json:"link"`
	Status string  `json:"status"`
	Note   *string `json:"note"`

	Categories []string `json:"categories"`
	Teachers   []int64  `json:"teachers"`
}

func NewCourseResponse(course *model.CourseModel, categories []string, teachers []int64, lang string) CourseResponse {
	if categories == nil {
		categories = []string{}
	}
	if teachers == nil {
		teachers = []int64{}
	}
	return CourseResponse{
		ID:         course.CourseID,
		Name:       course.CourseName,
		MinAge:     course.CourseMinAge,
		MaxAge:     course.CourseMaxAge,
		Image:      course.CourseImageURL,
		Link:       course.CourseLink,
		Status:     i18n.Label(lang, course.CourseStatus),
		Note:       course.CourseNote,
		Categories: categories,
		Teachers:   teachers,
	}
}
