package model

import (
	"gorm.io/datatypes"

	courseModel "backoffice_backend/internals/features/catalog/course/model"
	userModel "backoffice_backend/internals/features/users/user/model"
)

const (
	PartnerStatusActive   = "active"
	PartnerStatusInactive = "inactive"
)

type PartnerModel struct {
	PartnerID           int64          `gorm:"column:partner_id;primaryKey;autoIncrement" json:"partner_id"`
	PartnerName         string         `gorm:"column:partner_name;size:255;not null" json:"partner_name"`
	PartnerLegalEntity  *string        `gorm:"column:partner_legal_entity;size:255" json:"partner_legal_entity,omitempty"`
	PartnerCreatingDate datatypes.Date `gorm:"column:partner_creating_date;not null" json:"partner_creating_date"`
	PartnerInformation  *string        `gorm:"column:partner_information;type:text" json:"partner_information,omitempty"`
	PartnerStatus       string         `gorm:"column:partner_status;size:16;default:active" json:"partner_status"`

	PartnerCountry     *string `gorm:"column:partner_country;size:128" json:"partner_country,omitempty"`
	PartnerRegion      *string `gorm:"column:partner_region;size:128" json:"partner_region,omitempty"`
	PartnerCity        *string `gorm:"column:partner_city;size:128" json:"partner_city,omitempty"`
	PartnerStreet      *string `gorm:"column:partner_street;size:256" json:"partner_street,omitempty"`
	PartnerHouse       *string `gorm:"column:partner_house;size:32" json:"partner_house,omitempty"`
	PartnerAddressNote *string `gorm:"column:partner_address_note;type:text" json:"partner_address_note,omitempty"`

	PartnerOwnerID *int64 `gorm:"column:partner_owner_id;index" json:"partner_owner_id,omitempty"`

	Owner *userModel.UserModel `gorm:"foreignKey:PartnerOwnerID;references:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
}

func (PartnerModel) TableName() string {
	return "partners"
}

// PartnerCourseModel links a partner to the courses it runs.
type PartnerCourseModel struct {
	PartnerID int64 `gorm:"column:partner_id;primaryKey" json:"partner_id"`
	CourseID  int64 `gorm:"column:course_id;primaryKey" json:"course_id"`

	Partner *PartnerModel            `gorm:"foreignKey:PartnerID;references:PartnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Course  *courseModel.CourseModel `gorm:"foreignKey:CourseID;references:CourseID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (PartnerCourseModel) TableName() string {
	return "partner_courses"
}
