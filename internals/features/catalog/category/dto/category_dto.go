package dto

import (
	"backoffice_backend/internals/features/catalog/category/model"
)

type CategoryCreateRequest struct {
	Name   string `json:"name" form:"name" validate:"required,max=255"`
	Parent *int64 `json:"parent" form:"parent" validate:"omitempty,gt=0"`
}

type CategoryUpdateRequest struct {
	Name   *string `json:"name" form:"name" validate:"omitempty,max=255"`
	Parent *int64  `json:"parent" form:"parent"`
}

type CategoryResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Parent *int64 `json:"parent"`
}

func NewCategoryResponse(cat *model.CategoryModel) CategoryResponse {
	return CategoryResponse{
		ID:     cat.CategoryID,
		Name:   cat.CategoryName,
		Parent: cat.CategoryParentID,
	}
}
