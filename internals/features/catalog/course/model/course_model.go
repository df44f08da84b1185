package model

import (
	categoryModel "backoffice_backend/internals/features/catalog/category/model"
)

const (
	CourseStatusActive   = "active"
	CourseStatusHidden   = "hidden"
	CourseStatusArchived = "archived"
)

type CourseModel struct {
	CourseID       int64   `gorm:"column:course_id;primaryKey;autoIncrement" json:"course_id"`
	CourseName     string  `gorm:"column:course_name;size:255;not null" json:"course_name"`
	CourseMinAge   *int    `gorm:"column:course_min_age" json:"course_min_age,omitempty"`
	CourseMaxAge   *int    `gorm:"column:course_max_age" json:"course_max_age,omitempty"`
	CourseImageURL *string `gorm:"column:course_image_url;size:512" json:"course_image_url,omitempty"`
	CourseLink     *string `gorm:"column:course_link;size:512" json:"course_link,omitempty"`
	CourseStatus   string  `gorm:"column:course_status;size:16;default:active" json:"course_status"`
	CourseNote     *string `gorm:"column:course_note;type:text" json:"course_note,omitempty"`
}

func (CourseModel) TableName() string {
	return "courses"
}

type CourseCategoryModel struct {
	CourseID   int64 `gorm:"column:course_id;primaryKey" json:"course_id"`
	CategoryID int64 `gorm:"column:category_id;primaryKey" json:"category_id"`

	Course   *CourseModel                 `gorm:"foreignKey:CourseID;references:CourseID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Category *categoryModel.CategoryModel `gorm:"foreignKey:CategoryID;references:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (CourseCategoryModel) TableName() string {
	return "course_categories"
}
