package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"backoffice_backend/internals/features/users/group/model"
)

func TestPermissionLabel(t *testing.T) {
	p := model.PermissionModel{
		PermissionName:        "Can add course",
		PermissionCodename:    "add_course",
		PermissionContentType: "course",
	}
	assert.Equal(t, "course | Can add course", PermissionLabel(p))
}

func TestNewGroupResponse(t *testing.T) {
	desc := "Manages the partner they own."
	g := &model.GroupModel{
		GroupID:   2,
		GroupName: "owner",
		Description: &model.GroupDescriptionModel{
			GroupID:          2,
			GroupDescription: desc,
		},
		Permissions: []model.PermissionModel{
			{PermissionName: "Can view partner", PermissionContentType: "partner"},
		},
	}

	resp := NewGroupResponse(g, "ru")
	assert.EqualValues(t, 2, resp.ID)
	assert.Equal(t, "владелец", resp.Name)
	if assert.NotNil(t, resp.Description) {
		assert.Equal(t, desc, *resp.Description)
	}
	assert.Equal(t, []string{"partner | Can view partner"}, resp.Permissions)
}

func TestPermissionRequestValidation(t *testing.T) {
	v := validator.New()

	ok := PermissionRequest{
		Name:        "Can export report",
		Codename:    "export_report",
		ContentType: "report",
	}
	assert.NoError(t, v.Struct(&ok))

	missing := PermissionRequest{Name: "Can export report"}
	assert.Error(t, v.Struct(&missing))

	partial := PermissionUpdateRequest{}
	assert.NoError(t, v.Struct(&partial))
}

func TestNewGroupResponseBare(t *testing.T) {
	g := &model.GroupModel{GroupID: 9, GroupName: "auditors"}

	resp := NewGroupResponse(g, "en")
	assert.Equal(t, "auditors", resp.Name)
	assert.Nil(t, resp.Description)
	assert.Empty(t, resp.Permissions)
}
