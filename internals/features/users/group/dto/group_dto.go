package dto

import (
	"backoffice_backend/internals/features/users/group/model"
	"backoffice_backend/internals/helpers/i18n"
)

type GroupRequest struct {
	Name        string  `json:"name" form:"name" validate:"required,max=150"`
	Description *string `json:"description" form:"description"`
	Permissions []int64 `json:"permissions" form:"permissions"`
}

type GroupUpdateRequest struct {
	Name        *string `json:"name" form:"name" validate:"omitempty,max=150"`
	Description *string `json:"description" form:"description"`
	Permissions []int64 `json:"permissions" form:"permissions"`
}

type GroupResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Permissions []string `json:"permissions"`
}

type PermissionRequest struct {
	Name        string `json:"name" form:"name" validate:"required,max=255"`
	Codename    string `json:"codename" form:"codename" validate:"required,max=100"`
	ContentType string `json:"content_type" form:"content_type" validate:"required,max=100"`
}

type PermissionUpdateRequest struct {
	Name        *string `json:"name" form:"name" validate:"omitempty,max=255"`
	Codename    *string `json:"codename" form:"codename" validate:"omitempty,max=100"`
	ContentType *string `json:"content_type" form:"content_type" validate:"omitempty,max=100"`
}

type PermissionResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Codename    string `json:"codename"`
	ContentType string `json:"content_type"`
}

// PermissionLabel renders a permission the way group detail shows them.
func PermissionLabel(p model.PermissionModel) string {
	return p.PermissionContentType + " | " + p.PermissionName
}

func NewGroupResponse(g *model.GroupModel, lang string) GroupResponse {
	var desc *string
	if g.Description != nil {
		desc = &g.Description.GroupDescription
	}
	perms := make([]string, 0, len(g.Permissions))
	for _, p := range g.Permissions {
		perms = append(perms, PermissionLabel(p))
	}
	return GroupResponse{
		ID:          g.GroupID,
		Name:        i18n.Label(lang, g.GroupName),
		Description: desc,
		Permissions: perms,
	}
}

func NewPermissionResponse(p model.PermissionModel) PermissionResponse {
	return PermissionResponse{
		ID:          p.PermissionID,
		Name:        p.PermissionName,
		Codename:    p.PermissionCodename,
		ContentType: p.PermissionContentType,
	}
}
