package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	helper "backoffice_backend/internals/helpers"
	"backoffice_backend/internals/helpers/i18n"
	"backoffice_backend/internals/helpers/scope"

	"backoffice_backend/internals/features/partners/branch/dto"
	"backoffice_backend/internals/features/partners/branch/model"
	employeeModel "backoffice_backend/internals/features/partners/employee/model"
)

type BranchController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewBranchController(db *gorm.DB) *BranchController {
	return &BranchController{DB: db, Validate: validator.New()}
}

func (ctrl *BranchController) GetBranches(c *fiber.Ctx) error {
	lang := i18n.Lang(c)
	paging := helper.ResolvePaging(c)
	caller := scope.FromCtx(c)

	q := ctrl.DB.Model(&model.BranchModel{}).Scopes(scope.Branches(caller))
	if partnerID := c.Query("partner_id"); partnerID != "" {
		q = q.Where("branch_partner_id = ?", partnerID)
	}
	if search := c.Query("search"); search != "" {
		q = q.Where("branch_name ILIKE ?", "%"+search+"%")
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("branch_status = ?", status)
	}
	if date := c.Query("date"); date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return helper.JsonFieldError(c, "date", "Enter a valid date.")
		}
		q = q.Where("branch_opening_date = ?", date)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch branches")
	}

	var branches []model.BranchModel
	if err := q.Order("branch_opening_date DESC, branch_id DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&branches).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch branches")
	}

	results := make([]dto.BranchResponse, 0, len(branches))
	for i := range branches {
		b := &branches[i]
		results = append(results, dto.NewBranchResponse(b, ctrl.employeeIDs(b.BranchID), lang))
	}
	return helper.JsonList(c, count, results)
}

func (ctrl *BranchController) GetBranch(c *fiber.Ctx) error {
	caller := scope.FromCtx(c)

	var branch model.BranchModel
	if err := ctrl.DB.Scopes(scope.Branches(caller)).
		First(&branch, "branch_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Not found")
	}
	return helper.JsonOK(c, dto.NewBranchResponse(&branch, ctrl.employeeIDs(branch.BranchID), i18n.Lang(c)))
}

func (ctrl *BranchController) CreateBranch(c *fiber.Ctx) error {
	var req dto.BranchCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	branch := model.BranchModel{
		BranchName:        req.Name,
		BranchStatus:      model.BranchStatusActive,
		BranchArea:        req.Area,
		BranchFloor:       req.Floor,
		BranchNote:        req.Note,
		BranchCountry:     req.Country,
		BranchRegion:      req.Region,
		BranchCity:        req.City,
		BranchStreet:      req.Street,
		BranchHouse:       req.House,
		BranchAddressNote: req.AddressNote,
		BranchPartnerID:   req.Partner,
	}
	if req.Status != nil {
		branch.BranchStatus = *req.Status
	}
	if req.OpeningDate != nil && *req.OpeningDate != "" {
		t, _ := time.Parse("2006-01-02", *req.OpeningDate)
		d := datatypes.Date(t)
		branch.BranchOpeningDate = &d
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&branch).Error; err != nil {
			return err
		}
		if req.Employees != nil {
			return ctrl.replaceEmployees(tx, &branch, *req.Employees)
		}
		return nil
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create branch")
	}

	return helper.JsonCreated(c, dto.NewBranchResponse(&branch, ctrl.employeeIDs(branch.BranchID), i18n.Lang(c)))
}

func (ctrl *BranchController) UpdateBranch(c *fiber.Ctx) error {
	caller := scope.FromCtx(c)

	var branch model.BranchModel
	if err := ctrl.DB.Scopes(scope.Branches(caller)).
		First(&branch, "branch_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Not found")
	}

	var req dto.BranchUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.Name != nil {
		branch.BranchName = *req.Name
	}
	if req.OpeningDate != nil {
		if *req.OpeningDate == "" {
			branch.BranchOpeningDate = nil
		} else {
			t, _ := time.Parse("2006-01-02", *req.OpeningDate)
			d := datatypes.Date(t)
			branch.BranchOpeningDate = &d
		}
	}
	if req.Status != nil {
		branch.BranchStatus = *req.Status
	}
	if req.Area != nil {
		branch.BranchArea = req.Area
	}
	if req.Floor != nil {
		branch.BranchFloor = req.Floor
	}
	if req.Note != nil {
		branch.BranchNote = req.Note
	}
	if req.Country != nil {
		branch.BranchCountry = req.Country
	}
	if req.Region != nil {
		branch.BranchRegion = req.Region
	}
	if req.City != nil {
		branch.BranchCity = req.City
	}
	if req.Street != nil {
		branch.BranchStreet = req.Street
	}
	if req.House != nil {
		branch.BranchHouse = req.House
	}
	if req.AddressNote != nil {
		branch.BranchAddressNote = req.AddressNote
	}
	if req.Partner != nil {
		branch.BranchPartnerID = *req.Partner
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&branch).Error; err != nil {
			return err
		}
		if req.Employees != nil {
			if err := tx.Where("branch_id = ?", branch.BranchID).
				Delete(&employeeModel.EmployeeBranchModel{}).Error; err != nil {
				return err
			}
			return ctrl.replaceEmployees(tx, &branch, *req.Employees)
		}
		return nil
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update branch")
	}

	return helper.JsonOK(c, dto.NewBranchResponse(&branch, ctrl.employeeIDs(branch.BranchID), i18n.Lang(c)))
}

func (ctrl *BranchController) DeleteBranch(c *fiber.Ctx) error {
	caller := scope.FromCtx(c)

	var branch model.BranchModel
	if err := ctrl.DB.Scopes(scope.Branches(caller)).
		First(&branch, "branch_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Not found")
	}
	if err := ctrl.DB.Delete(&branch).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete branch")
	}
	return helper.JsonDeleted(c)
}

// replaceEmployees links the submitted employees, keeping only those whose
// partner matches the branch. Mismatched ids are dropped without error.
func (ctrl *BranchController) replaceEmployees(tx *gorm.DB, branch *model.BranchModel, submitted []int64) error {
	if len(submitted) == 0 {
		return nil
	}
	var rows []employeeModel.EmployeeModel
	if err := tx.Where("employee_user_id IN ?", submitted).Find(&rows).Error; err != nil {
		return err
	}
	partnerOf := make(map[int64]int64, len(rows))
	for _, e := range rows {
		partnerOf[e.EmployeeUserID] = e.EmployeePartnerID
	}
	for _, id := range dto.KeepPartnerEmployees(branch.BranchPartnerID, submitted, partnerOf) {
		if err := tx.Create(&employeeModel.EmployeeBranchModel{
			EmployeeUserID: id,
			BranchID:       branch.BranchID,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}

func (ctrl *BranchController) employeeIDs(branchID int64) []int64 {
	var ids []int64
	ctrl.DB.Model(&employeeModel.EmployeeBranchModel{}).
		Where("branch_id = ?", branchID).
		Order("employee_user_id ASC").
		Pluck("employee_user_id", &ids)
	return ids
}
