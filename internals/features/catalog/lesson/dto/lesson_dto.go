package dto

import (
	"path/filepath"
	"strings"

	"backoffice_backend/internals/features/catalog/lesson/model"
)

type LessonCreateRequest struct {
	Number          *int    `json:"number" form:"number" validate:"omitempty,gte=0"`
	Name            string  `json:"name" form:"name" validate:"required,max=255"`
	PresentationURL *string `json:"presentation_url" form:"presentation_url" validate:"omitempty,url"`
	Description     *string `json:"description" form:"description"`
	Course          int64   `json:"course" form:"course" validate:"required,gt=0"`
}

type LessonUpdateRequest struct {
	Number          *int    `json:"number" form:"number" validate:"omitempty,gte=0"`
	Name            *string `json:"name" form:"name" validate:"omitempty,max=255"`
	PresentationURL *string `json:"presentation_url" form:"presentation_url" validate:"omitempty,url"`
	Description     *string `json:"description" form:"description"`
	Course          *int64  `json:"course" form:"course" validate:"omitempty,gt=0"`
}

type LessonResponse struct {
	ID              int64   `json:"id"`
	Number          *int    `json:"number"`
	Name            string  `json:"name"`
	Presentation    *string `json:"presentation"`
	PresentationURL *string `json:"presentation_url"`
	AdditionalFile  *string `json:"additional_file"`
	Description     *string `json:"description"`
	Course          int64   `json:"course"`
}

// AllowedPresentationExt accepts slide decks and documents only.
func AllowedPresentationExt(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pptx", ".pdf":
		return true
	}
	return false
}

// AllowedAdditionalExt accepts documents and archives only.
func AllowedAdditionalExt(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".zip":
		return true
	}
	return false
}

func NewLessonResponse(l *model.LessonModel) LessonResponse {
	return LessonResponse{
		ID:              l.LessonID,
		Number:          l.LessonNumber,
		Name:            l.LessonName,
		Presentation:    l.LessonPresentation,
		PresentationURL: l.LessonPresentationURL,
		AdditionalFile:  l.LessonAdditionalFile,
		Description:     l.LessonDescription,
		Course:          l.LessonCourseID,
	}
}
