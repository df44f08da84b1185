package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"backoffice_backend/internals/features/users/user/model"
)

func TestNewUserResponse(t *testing.T) {
	birthday := datatypes.Date(time.Date(1990, 3, 14, 0, 0, 0, 0, time.UTC))
	u := &model.UserModel{
		UserID:        5,
		UserPublicID:  uuid.MustParse("8d7f41de-31c0-4c1a-9b28-2d0d71b0a111"),
		UserEmail:     "ivan@example.com",
		UserFirstName: "Ivan",
		UserGender:    model.GenderMan,
		UserBirthday:  &birthday,
	}

	resp := NewUserResponse(u, "teacher", "ru")
	assert.EqualValues(t, 5, resp.ID)
	assert.Equal(t, "ivan@example.com", resp.Email)
	assert.Equal(t, "Мужчина", resp.Gender)
	if assert.NotNil(t, resp.Birthday) {
		assert.Equal(t, "1990-03-14", *resp.Birthday)
	}
	if assert.NotNil(t, resp.Group) {
		assert.Equal(t, "преподаватель", *resp.Group)
	}
}

func TestNewUserResponseUngrouped(t *testing.T) {
	u := &model.UserModel{UserID: 6, UserGender: model.GenderUndefined}

	resp := NewUserResponse(u, "", "en")
	assert.Nil(t, resp.Group)
	assert.Nil(t, resp.Birthday)
	assert.Equal(t, "Undefined", resp.Gender)
}

func TestIsSuperuserGroup(t *testing.T) {
	assert.True(t, IsSuperuserGroup("superuser"))
	assert.False(t, IsSuperuserGroup("owner"))
	assert.False(t, IsSuperuserGroup("teacher"))
	assert.False(t, IsSuperuserGroup(""))
}

func TestFormatDate(t *testing.T) {
	assert.Nil(t, FormatDate(nil))

	d := datatypes.Date(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC))
	got := FormatDate(&d)
	if assert.NotNil(t, got) {
		assert.Equal(t, "2024-12-01", *got)
	}
}
