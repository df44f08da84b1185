package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"backoffice_backend/internals/constants"
	helper "backoffice_backend/internals/helpers"
	"backoffice_backend/internals/helpers/i18n"
	"backoffice_backend/internals/helpers/scope"

	"backoffice_backend/internals/features/partners/partner/dto"
	"backoffice_backend/internals/features/partners/partner/model"
)

type PartnerController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPartnerController(db *gorm.DB) *PartnerController {
	return &PartnerController{DB: db, Validate: validator.New()}
}

func (ctrl *PartnerController) GetPartners(c *fiber.Ctx) error {
	lang := i18n.Lang(c)
	paging := helper.ResolvePaging(c)
	caller := scope.FromCtx(c)

	q := ctrl.DB.Model(&model.PartnerModel{}).Scopes(scope.Partners(caller))
	if search := c.Query("search"); search != "" {
		q = q.Where("partner_name ILIKE ? OR partner_legal_entity ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("partner_status = ?", status)
	}
	if date := c.Query("date"); date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return helper.JsonFieldError(c, "date", "Enter a valid date.")
		}
		q = q.Where("partner_creating_date = ?", date)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch partners")
	}

	var partners []model.PartnerModel
	if err := q.Order("partner_creating_date DESC, partner_id DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&partners).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch partners")
	}

	ids := make([]int64, 0, len(partners))
	for i := range partners {
		ids = append(ids, partners[i].PartnerID)
	}
	branchCounts := ctrl.countsBy("branches", "branch_partner_id", ids)
	employeeCounts := ctrl.countsBy("employees", "employee_partner_id", ids)

	results := make([]dto.PartnerResponse, 0, len(partners))
	for i := range partners {
		p := &partners[i]
		results = append(results, dto.NewPartnerResponse(p,
			branchCounts[p.PartnerID], employeeCounts[p.PartnerID], lang))
	}
	return helper.JsonList(c, count, results)
}

func (ctrl *PartnerController) GetPartner(c *fiber.Ctx) error {
	caller := scope.FromCtx(c)

	var partner model.PartnerModel
	if err := ctrl.DB.Scopes(scope.Partners(caller)).
		First(&partner, "partner_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Not found")
	}
	return helper.JsonOK(c, ctrl.render(c, &partner))
}

func (ctrl *PartnerController) CreatePartner(c *fiber.Ctx) error {
	var req dto.PartnerCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Owner != nil {
		if ok, err := ctrl.isOwnerGroupMember(*req.Owner); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create partner")
		} else if !ok {
			return helper.JsonFieldError(c, "owner", "Owner must be a member of the owner group.")
		}
	}

	partner := model.PartnerModel{
		PartnerName:         req.Name,
		PartnerLegalEntity:  req.LegalEntity,
		PartnerCreatingDate: datatypes.Date(time.Now()),
		PartnerInformation:  req.Information,
		PartnerStatus:       model.PartnerStatusActive,
		PartnerCountry:      req.Country,
		PartnerRegion:       req.Region,
		PartnerCity:         req.City,
		PartnerStreet:       req.Street,
		PartnerHouse:        req.House,
		PartnerAddressNote:  req.AddressNote,
		PartnerOwnerID:      req.Owner,
	}
	if req.Status != nil {
		partner.PartnerStatus = *req.Status
	}

	if err := ctrl.DB.Create(&partner).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create partner")
	}
	return helper.JsonCreated(c, ctrl.render(c, &partner))
}

func (ctrl *PartnerController) UpdatePartner(c *fiber.Ctx) error {
	caller := scope.FromCtx(c)

	var partner model.PartnerModel
	if err := ctrl.DB.Scopes(scope.Partners(caller)).
		First(&partner, "partner_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Not found")
	}

	var req dto.PartnerUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Owner != nil {
		if ok, err := ctrl.isOwnerGroupMember(*req.Owner); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update partner")
		} else if !ok {
			return helper.JsonFieldError(c, "owner", "Owner must be a member of the owner group.")
		}
		partner.PartnerOwnerID = req.Owner
	}

	if req.Name != nil {
		partner.PartnerName = *req.Name
	}
	if req.LegalEntity != nil {
		partner.PartnerLegalEntity = req.LegalEntity
	}
	if req.Information != nil {
		partner.PartnerInformation = req.Information
	}
	if req.Status != nil {
		partner.PartnerStatus = *req.Status
	}
	if req.Country != nil {
		partner.PartnerCountry = req.Country
	}
	if req.Region != nil {
		partner.PartnerRegion = req.Region
	}
	if req.City != nil {
		partner.PartnerCity = req.City
	}
	if req.Street != nil {
		partner.PartnerStreet = req.Street
	}
	if req.House != nil {
		partner.PartnerHouse = req.House
	}
	if req.AddressNote != nil {
		partner.PartnerAddressNote = req.AddressNote
	}

	// creating_date never changes after create
	if err := ctrl.DB.Save(&partner).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update partner")
	}
	return helper.JsonOK(c, ctrl.render(c, &partner))
}

func (ctrl *PartnerController) DeletePartner(c *fiber.Ctx) error {
	caller := scope.FromCtx(c)

	var partner model.PartnerModel
	if err := ctrl.DB.Scopes(scope.Partners(caller)).
		First(&partner, "partner_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Not found")
	}
	if err := ctrl.DB.Delete(&partner).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete partner")
	}
	return helper.JsonDeleted(c)
}

func (ctrl *PartnerController) render(c *fiber.Ctx, p *model.PartnerModel) dto.PartnerResponse {
	var branches, employees int64
	ctrl.DB.Table("branches").Where("branch_partner_id = ?", p.PartnerID).Count(&branches)
	ctrl.DB.Table("employees").Where("employee_partner_id = ?", p.PartnerID).Count(&employees)
	return dto.NewPartnerResponse(p, branches, employees, i18n.Lang(c))
}

func (ctrl *PartnerController) isOwnerGroupMember(userID int64) (bool, error) {
	var n int64
	err := ctrl.DB.Table("user_groups").
		Joins("JOIN groups ON groups.group_id = user_groups.group_id").
		Where("user_groups.user_id = ? AND groups.group_name = ?", userID, constants.RoleOwner).
		Count(&n).Error
	return n > 0, err
}

func (ctrl *PartnerController) countsBy(table, fk string, ids []int64) map[int64]int64 {
	out := make(map[int64]int64, len(ids))
	if len(ids) == 0 {
		return out
	}
	var rows []struct {
		ID int64
		N  int64
	}
	ctrl.DB.Table(table).
		Select(fk+" AS id, COUNT(*) AS n").
		Where(fk+" IN ?", ids).
		Group(fk).
		Scan(&rows)
	for _, r := range rows {
		out[r.ID] = r.N
	}
	return out
}
