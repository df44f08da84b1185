package dto

import (
	"time"

	"gorm.io/datatypes"

	"backoffice_backend/internals/constants"
	"backoffice_backend/internals/helpers/i18n"

	"backoffice_backend/internals/features/users/user/model"
)

type UserCreateRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=8"`
	Group    string `json:"group" form:"group" validate:"required,oneof=superuser owner teacher"`

	FirstName  *string `json:"first_name" form:"first_name"`
	LastName   *string `json:"last_name" form:"last_name"`
	Patronymic *string `json:"patronymic" form:"patronymic"`

	Gender   *string `json:"gender" form:"gender" validate:"omitempty,oneof=man woman undefined"`
	Birthday *string `json:"birthday" form:"birthday" validate:"omitempty,datetime=2006-01-02"`

	PhoneNumber *string `json:"phone_number" form:"phone_number"`
	Note        *string `json:"note" form:"note"`

	Country     *string `json:"country" form:"country"`
	Region      *string `json:"region" form:"region"`
	City        *string `json:"city" form:"city"`
	Street      *string `json:"street" form:"street"`
	House       *string `json:"house" form:"house"`
	AddressNote *string `json:"address_note" form:"address_note"`

	IsActive *bool `json:"is_active" form:"is_active"`
}

type UserUpdateRequest struct {
	Email    *string `json:"email" form:"email" validate:"omitempty,email"`
	Password *string `json:"password" form:"password" validate:"omitempty,min=8"`
	Group    *string `json:"group" form:"group" validate:"omitempty,oneof=superuser owner teacher"`

	FirstName  *string `json:"first_name" form:"first_name"`
	LastName   *string `json:"last_name" form:"last_name"`
	Patronymic *string `json:"patronymic" form:"patronymic"`

	Gender   *string `json:"gender" form:"gender" validate:"omitempty,oneof=man woman undefined"`
	Birthday *string `json:"birthday" form:"birthday" validate:"omitempty,datetime=2006-01-02"`

	PhoneNumber *string `json:"phone_number" form:"phone_number"`
	Note        *string `json:"note" form:"note"`

	Country     *string `json:"country" form:"country"`
	Region      *string `json:"region" form:"region"`
	City        *string `json:"city" form:"city"`
	Street      *string `json:"street" form:"street"`
	House       *string `json:"house" form:"house"`
	AddressNote *string `json:"address_note" form:"address_note"`

	IsActive *bool `json:"is_active" form:"is_active"`
}

type UserResponse struct {
	ID         int64   `json:"id"`
	PublicID   string  `json:"public_id"`
	Email      string  `json:"email"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Patronymic string  `json:"patronymic"`
	Gender     string  `json:"gender"`
	Birthday   *string `json:"birthday"`
	Image      *string `json:"image"`

	PhoneNumber *string `json:"phone_number"`
	Note        *string `json:"note"`

	Country     *string `json:"country"`
	Region      *string `json:"region"`
	City        *string `json:"city"`
	Street      *string `json:"street"`
	House       *string `json:"house"`
	AddressNote *string `json:"address_note"`

	IsActive    bool       `json:"is_active"`
	IsStaff     bool       `json:"is_staff"`
	IsSuperuser bool       `json:"is_superuser"`
	LastLogin   *time.Time `json:"last_login"`
	DateJoined  time.Time  `json:"date_joined"`

	Group *string `json:"group"`
}

func FormatDate(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := time.Time(*d).Format("2006-01-02")
	return &s
}

// NewUserResponse renders a user row. groupName is the raw stored group
// name ("" when the user has no membership); both it and gender come out
// as localized labels.
func NewUserResponse(u *model.UserModel, groupName, lang string) UserResponse {
	var group *string
	if groupName != "" {
		label := i18n.Label(lang, groupName)
		group = &label
	}
	return UserResponse{
		ID:          u.UserID,
		PublicID:    u.UserPublicID.String(),
		Email:       u.UserEmail,
		FirstName:   u.UserFirstName,
		LastName:    u.UserLastName,
		Patronymic:  u.UserPatronymic,
		Gender:      i18n.Label(lang, u.UserGender),
		Birthday:    FormatDate(u.UserBirthday),
		Image:       u.UserImageURL,
		PhoneNumber: u.UserPhoneNumber,
		Note:        u.UserNote,
		Country:     u.UserCountry,
		Region:      u.UserRegion,
		City:        u.UserCity,
		Street:      u.UserStreet,
		House:       u.UserHouse,
		AddressNote: u.UserAddressNote,
		IsActive:    u.UserIsActive,
		IsStaff:     u.UserIsStaff,
		IsSuperuser: u.UserIsSuperuser,
		LastLogin:   u.UserLastLogin,
		DateJoined:  u.UserDateJoined,
		Group:       group,
	}
}

// IsSuperuserGroup reports whether the requested group grants superuser.
func IsSuperuserGroup(group string) bool {
	return group == constants.RoleSuperuser
}
