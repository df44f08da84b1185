package model

import (
	courseModel "backoffice_backend/internals/features/catalog/course/model"
)

type LessonModel struct {
	LessonID     int64   `gorm:"column:lesson_id;primaryKey;autoIncrement" json:"lesson_id"`
	LessonNumber *int    `gorm:"column:lesson_number" json:"lesson_number,omitempty"`
	LessonName   string  `gorm:"column:lesson_name;size:255;not null" json:"lesson_name"`

	LessonPresentation    *string `gorm:"column:lesson_presentation;size:512" json:"lesson_presentation,omitempty"`
	LessonPresentationURL *string `gorm:"column:lesson_presentation_url;size:512" json:"lesson_presentation_url,omitempty"`
	LessonAdditionalFile  *string `gorm:"column:lesson_additional_file;size:512" json:"lesson_additional_file,omitempty"`

	LessonDescription *string `gorm:"column:lesson_description;type:text" json:"lesson_description,omitempty"`
	LessonCourseID    int64   `gorm:"column:lesson_course_id;index;not null" json:"lesson_course_id"`

	Course *courseModel.CourseModel `gorm:"foreignKey:LessonCourseID;references:CourseID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (LessonModel) TableName() string {
	return "lessons"
}
