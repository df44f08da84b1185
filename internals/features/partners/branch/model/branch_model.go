package model

import (
	"gorm.io/datatypes"

	partnerModel "backoffice_backend/internals/features/partners/partner/model"
)

const (
	BranchStatusActive   = "active"
	BranchStatusInactive = "inactive"
)

type BranchModel struct {
	BranchID          int64           `gorm:"column:branch_id;primaryKey;autoIncrement" json:"branch_id"`
	BranchName        string          `gorm:"column:branch_name;size:255;not null" json:"branch_name"`
	BranchOpeningDate *datatypes.Date `gorm:"column:branch_opening_date" json:"branch_opening_date,omitempty"`
	BranchStatus      string          `gorm:"column:branch_status;size:16;default:active" json:"branch_status"`

	BranchArea  *float64 `gorm:"column:branch_area" json:"branch_area,omitempty"`
	BranchFloor *int     `gorm:"column:branch_floor" json:"branch_floor,omitempty"`
	BranchNote  *string  `gorm:"column:branch_note;type:text" json:"branch_note,omitempty"`

	BranchCountry     *string `gorm:"column:branch_country;size:128" json:"branch_country,omitempty"`
	BranchRegion      *string `gorm:"column:branch_region;size:128" json:"branch_region,omitempty"`
	BranchCity        *string `gorm:"column:branch_city;size:128" json:"branch_city,omitempty"`
	BranchStreet      *string `gorm:"column:branch_street;size:256" json:"branch_street,omitempty"`
	BranchHouse       *string `gorm:"column:branch_house;size:32" json:"branch_house,omitempty"`
	BranchAddressNote *string `gorm:"column:branch_address_note;type:text" json:"branch_address_note,omitempty"`

	BranchPartnerID int64 `gorm:"column:branch_partner_id;index;not null" json:"branch_partner_id"`

	Partner *partnerModel.PartnerModel `gorm:"foreignKey:BranchPartnerID;references:PartnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (BranchModel) TableName() string {
	return "branches"
}
