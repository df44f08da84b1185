package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	groupModel "backoffice_backend/internals/features/users/group/model"
)

const (
	GenderMan       = "man"
	GenderWoman     = "woman"
	GenderUndefined = "undefined"
)

type UserModel struct {
	UserID       int64     `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	UserPublicID uuid.UUID `gorm:"column:user_public_id;type:uuid;uniqueIndex;default:gen_random_uuid()" json:"user_public_id"`

	UserEmail    string `gorm:"column:user_email;size:254;uniqueIndex;not null" json:"user_email"`
	UserPassword string `gorm:"column:user_password;size:128;not null" json:"-"`

	UserFirstName  string `gorm:"column:user_first_name;size:150" json:"user_first_name"`
	UserLastName   string `gorm:"column:user_last_name;size:150" json:"user_last_name"`
	UserPatronymic string `gorm:"column:user_patronymic;size:150" json:"user_patronymic"`

	UserGender   string          `gorm:"column:user_gender;size:16;default:undefined" json:"user_gender"`
	UserBirthday *datatypes.Date `gorm:"column:user_birthday" json:"user_birthday,omitempty"`

	UserImageURL *string `gorm:"column:user_image_url;size:512" json:"user_image_url,omitempty"`

	UserPhoneNumber *string `gorm:"column:user_phone_number;size:32;uniqueIndex" json:"user_phone_number,omitempty"`
	UserNote        *string `gorm:"column:user_note;type:text" json:"user_note,omitempty"`

	UserCountry     *string `gorm:"column:user_country;size:128" json:"user_country,omitempty"`
	UserRegion      *string `gorm:"column:user_region;size:128" json:"user_region,omitempty"`
	UserCity        *string `gorm:"column:user_city;size:128" json:"user_city,omitempty"`
	UserStreet      *string `gorm:"column:user_street;size:256" json:"user_street,omitempty"`
	UserHouse       *string `gorm:"column:user_house;size:32" json:"user_house,omitempty"`
	UserAddressNote *string `gorm:"column:user_address_note;type:text" json:"user_address_note,omitempty"`

	UserIsActive    bool `gorm:"column:user_is_active;default:true" json:"user_is_active"`
	UserIsStaff     bool `gorm:"column:user_is_staff;default:false" json:"user_is_staff"`
	UserIsSuperuser bool `gorm:"column:user_is_superuser;default:false" json:"user_is_superuser"`

	UserLastLogin  *time.Time `gorm:"column:user_last_login" json:"user_last_login,omitempty"`
	UserDateJoined time.Time  `gorm:"column:user_date_joined;autoCreateTime" json:"user_date_joined"`
}

func (UserModel) TableName() string {
	return "users"
}

// UserGroupModel is the membership join table. The boundary keeps it to at
// most one row per user.
type UserGroupModel struct {
	UserID  int64 `gorm:"column:user_id;primaryKey" json:"user_id"`
	GroupID int64 `gorm:"column:group_id;primaryKey" json:"group_id"`

	User  *UserModel             `gorm:"foreignKey:UserID;references:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Group *groupModel.GroupModel `gorm:"foreignKey:GroupID;references:GroupID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (UserGroupModel) TableName() string {
	return "user_groups"
}
