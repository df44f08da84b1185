package dto

import (
	"time"

	"backoffice_backend/internals/features/partners/partner/model"
	"backoffice_backend/internals/helpers/i18n"
)

type PartnerCreateRequest struct {
	Name        string  `json:"name" form:"name" validate:"required,max=255"`
	LegalEntity *string `json:"legal_entity" form:"legal_entity"`
	Information *string `json:"information" form:"information"`
	Status      *string `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`

	Country     *string `json:"country" form:"country"`
	Region      *string `json:"region" form:"region"`
	City        *string `json:"city" form:"city"`
	Street      *string `json:"street" form:"street"`
	House       *string `json:"house" form:"house"`
	AddressNote *string `json:"address_note" form:"address_note"`

	Owner *int64 `json:"owner" form:"owner"`
}

type PartnerUpdateRequest struct {
	Name        *string `json:"name" form:"name" validate:"omitempty,max=255"`
	LegalEntity *string `json:"legal_entity" form:"legal_entity"`
	Information *string `json:"information" form:"information"`
	Status      *string `json:"status" form:"status" validate:"omitempty,oneof=active inactive"`

	Country     *string `json:"country" form:"country"`
	Region      *string `json:"region" form:"region"`
	City        *string `json:"city" form:"city"`
	Street      *string `json:"street" form:"street"`
	House       *string `json:"house" form:"house"`
	AddressNote *string `json:"address_note" form:"address_note"`

	Owner *int64 `json:"owner" form:"owner"`
}

type PartnerResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	LegalEntity  *string `json:"legal_entity"`
	CreatingDate string  `json:"creating_date"`
	Information  *string `json:"information"`
	Status       string  `json:"status"`

	Country     *string `json:"country"`
	Region      *string `json:"region"`
	City        *string `json:"city"`
	Street      *string `json:"street"`
	House       *string `json:"house"`
	AddressNote *string `json:"address_note"`

	Owner *int64 `json:"owner"`

	QuantityOfBranches  int64 `json:"quantity_of_branches"`
	QuantityOfEmployees int64 `json:"quantity_of_employees"`
}

func NewPartnerResponse(p *model.PartnerModel, branches, employees int64, lang string) PartnerResponse {
	return PartnerResponse{
		ID:                  p.PartnerID,
		Name:                p.PartnerName,
		LegalEntity:         p.PartnerLegalEntity,
		CreatingDate:        time.Time(p.PartnerCreatingDate).Format("2006-01-02"),
		Information:         p.PartnerInformation,
		Status:              i18n.Label(lang, p.PartnerStatus),
		Country:             p.PartnerCountry,
		Region:              p.PartnerRegion,
		City:                p.PartnerCity,
		Street:              p.PartnerStreet,
		House:               p.PartnerHouse,
		AddressNote:         p.PartnerAddressNote,
		Owner:               p.PartnerOwnerID,
		QuantityOfBranches:  branches,
		QuantityOfEmployees: employees,
	}
}
