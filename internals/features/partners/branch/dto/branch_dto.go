package dto

import (
	"time"

	"gorm.io/datatypes"

	"backoffice_backend/internals/features/partners/branch/model"
	"backoffice_backend/internals/helpers/i18n"
)

func FormatDate(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := time.Time(*d).Format("2006-01-02")
	return &s
}

type BranchCreateRequest struct {
	Name        string  `json:"name" form:"name" validate:"required,max=255"`
	OpeningDate *string `json:"opening_date" form:"opening_date" validate:"omitempty,datetime=2006-01-02"`
	Status      *string `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`

	Area  *float64 `json:"area" form:"area"`
	Floor *int     `json:"floor" form:"floor"`
	Note  *string  `json:"note" form:"note"`

	Country     *string `json:"country" form:"country"`
	Region      *string `json:"region" form:"region"`
	City        *string `json:"city" form:"city"`
	Street      *string `json:"street" form:"street"`
	House       *string `json:"house" form:"house"`
	AddressNote *string `json:"address_note" form:"address_note"`

	Partner   int64    `json:"partner" form:"partner" validate:"required,gt=0"`
	Employees *[]int64 `json:"employees" form:"employees"`
}

type BranchUpdateRequest struct {
	Name        *string `json:"name" form:"name" validate:"omitempty,max=255"`
	OpeningDate *string `json:"opening_date" form:"opening_date" validate:"omitempty,datetime=2006-01-02"`
	Status      *string `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`

	Area  *float64 `json:"area" form:"area"`
	Floor *int     `json:"floor" form:"floor"`
	Note  *string  `json:"note" form:"note"`

	Country     *string `json:"country" form:"country"`
	Region      *string `json:"region" form:"region"`
	City        *string `json:"city" form:"city"`
	Street      *string `json:"street" form:"street"`
	House       *string `json:"house" form:"house"`
	AddressNote *string `json:"address_note" form:"address_note"`

	Partner   *int64   `json:"partner" form:"partner" validate:"omitempty,gt=0"`
	Employees *[]int64 `json:"employees" form:"employees"`
}

type BranchResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	OpeningDate *string `json:"opening_date"`
	Status      string  `json:"status"`

	Area  *float64 `json:"area"`
	Floor *int     `json:"floor"`
	Note  *string  `json:"note"`

	Country     *string `json:"country"`
	Region      *string `json:"region"`
	City        *string `json:"city"`
	Street      *string `json:"street"`
	House       *string `json:"house"`
	AddressNote *string `json:"address_note"`

	Partner   int64   `json:"partner"`
	Employees []int64 `json:"employees"`
}

// KeepPartnerEmployees drops submitted employee ids whose partner differs
// from the branch's partner. Unknown ids are dropped too. Order of the
// surviving ids follows the submission.
func KeepPartnerEmployees(partnerID int64, submitted []int64, partnerOf map[int64]int64) []int64 {
	kept := make([]int64, 0, len(submitted))
	seen := make(map[int64]bool, len(submitted))
	for _, id := range submitted {
		if seen[id] {
			continue
		}
		seen[id] = true
		if partnerOf[id] == partnerID {
			kept = append(kept, id)
		}
	}
	return kept
}

func NewBranchResponse(b *model.BranchModel, employees []int64, lang string) BranchResponse {
	var opening *string
	if b.BranchOpeningDate != nil {
		s := FormatDate(b.BranchOpeningDate)
		opening = s
	}
	if employees == nil {
		employees = []int64{}
	}
	return BranchResponse{
		ID:          b.BranchID,
		Name:        b.BranchName,
		OpeningDate: opening,
		Status:      i18n.Label(lang, b.BranchStatus),
		Area:        b.BranchArea,
		Floor:       b.BranchFloor,
		Note:        b.BranchNote,
		Country:     b.BranchCountry,
		Region:      b.BranchRegion,
		City:        b.BranchCity,
		Street:      b.BranchStreet,
		House:       b.BranchHouse,
		AddressNote: b.BranchAddressNote,
		Partner:     b.BranchPartnerID,
		Employees:   employees,
	}
}
