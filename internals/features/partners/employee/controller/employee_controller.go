package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"backoffice_backend/internals/constants"
	helper "backoffice_backend/internals/helpers"
	"backoffice_backend/internals/helpers/i18n"
	"backoffice_backend/internals/helpers/scope"
	helperOSS "backoffice_backend/internals/helpers/oss"

	"backoffice_backend/internals/features/partners/employee/dto"
	"backoffice_backend/internals/features/partners/employee/model"
	groupModel "backoffice_backend/internals/features/users/group/model"
	userCtrl "backoffice_backend/internals/features/users/user/controller"
	userDto "backoffice_backend/internals/features/users/user/dto"
	userModel "backoffice_backend/internals/features/users/user/model"
)

type EmployeeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{DB: db, Validate: validator.New()}
}

func (ctrl *EmployeeController) GetEmployees(c *fiber.Ctx) error {
	lang := i18n.Lang(c)
	paging := helper.ResolvePaging(c)
	caller := scope.FromCtx(c)

	q := ctrl.DB.Model(&model.EmployeeModel{}).Scopes(scope.Employees(caller))
	if partnerID := c.Query("partner_id"); partnerID != "" {
		q = q.Where("employee_partner_id = ?", partnerID)
	}
	if courseID := c.Query("course_id"); courseID != "" {
		q = q.Where("employee_user_id IN (SELECT employee_user_id FROM employee_courses WHERE course_id = ?)", courseID)
	}
	if search := c.Query("search"); search != "" {
		q = q.Joins("JOIN users ON users.user_id = employees.employee_user_id")
		for _, term := range strings.Fields(search) {
			like := "%" + term + "%"
			q = q.Where(
				"users.user_first_name ILIKE ? OR users.user_last_name ILIKE ? OR users.user_patronymic ILIKE ? OR users.user_email ILIKE ?",
				like, like, like, like)
		}
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("employee_status = ?", status)
	}
	if group := c.Query("group"); group != "" {
		q = q.Where("employee_user_id IN (SELECT ug.user_id FROM user_groups ug JOIN groups g ON g.group_id = ug.group_id WHERE g.group_name = ?)", group)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch employees")
	}

	var employees []model.EmployeeModel
	if err := q.Order("employee_user_id ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&employees).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch employees")
	}

	results := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		resp, err := ctrl.render(&employees[i], lang)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch employees")
		}
		results = append(results, resp)
	}
	return helper.JsonList(c, count, results)
}

func (ctrl *EmployeeController) GetEmployee(c *fiber.Ctx) error {
	caller := scope.FromCtx(c)

	var employee model.EmployeeModel
	if err := ctrl.DB.Scopes(scope.Employees(caller)).
		First(&employee, "employee_user_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Not found")
	}
	resp, err := ctrl.render(&employee, i18n.Lang(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch employee")
	}
	return helper.JsonOK(c, resp)
}

func (ctrl *EmployeeController) CreateEmployee(c *fiber.Ctx) error {
	caller := scope.FromCtx(c)

	var req dto.EmployeeCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// owners hire for their own partner only and cannot mint superusers
	if caller.IsOwner() {
		ownedID, err := ctrl.ownedPartnerID(caller.UserID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusForbidden, "You do not own a partner")
		}
		req.Partner = ownedID
		if req.User.Group == constants.RoleSuperuser {
			return helper.JsonFieldError(c, "group", "Cannot assign the superuser group.")
		}
	}

	email := strings.ToLower(strings.TrimSpace(req.User.Email))
	var n int64
	ctrl.DB.Model(&userModel.UserModel{}).Where("user_email = ?", email).Count(&n)
	if n > 0 {
		return helper.JsonFieldError(c, "email", "user with this email already exists.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.User.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create employee")
	}

	user := userModel.UserModel{
		UserEmail:    email,
		UserPassword: string(hashed),
		UserGender:   userModel.GenderUndefined,
		UserIsActive: true,
	}
	applyNestedUser(&user, &req.User)
	user.UserIsSuperuser = userDto.IsSuperuserGroup(req.User.Group)
	user.UserIsStaff = user.UserIsSuperuser

	var employee model.EmployeeModel
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if err := setMembership(tx, user.UserID, req.User.Group); err != nil {
			return err
		}
		employee = model.EmployeeModel{
			EmployeeUserID:            user.UserID,
			EmployeeBankAccountNumber: req.BankAccountNumber,
			EmployeeStatus:            model.EmployeeStatusActive,
			EmployeePartnerID:         req.Partner,
		}
		if req.Status != nil {
			employee.EmployeeStatus = *req.Status
		}
		if err := tx.Create(&employee).Error; err != nil {
			return err
		}
		if err := replaceBranches(tx, user.UserID, req.Branches); err != nil {
			return err
		}
		return replaceCourses(tx, user.UserID, req.Courses)
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create employee")
	}

	resp, err := ctrl.render(&employee, i18n.Lang(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create employee")
	}
	return helper.JsonCreated(c, resp)
}

func (ctrl *EmployeeController) UpdateEmployee(c *fiber.Ctx) error {
	caller := scope.FromCtx(c)

	var employee model.EmployeeModel
	if err := ctrl.DB.Scopes(scope.Employees(caller)).
		First(&employee, "employee_user_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Not found")
	}

	var req dto.EmployeeUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if caller.IsOwner() {
		req.Partner = nil // employees stay with the owner's partner
		if req.User != nil && req.User.Group != nil && *req.User.Group == constants.RoleSuperuser {
			return helper.JsonFieldError(c, "group", "Cannot assign the superuser group.")
		}
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", employee.EmployeeUserID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update employee")
	}

	if req.User != nil {
		if req.User.Email != nil {
			email := strings.ToLower(strings.TrimSpace(*req.User.Email))
			if email != user.UserEmail {
				var n int64
				ctrl.DB.Model(&userModel.UserModel{}).
					Where("user_email = ? AND user_id <> ?", email, user.UserID).
					Count(&n)
				if n > 0 {
					return helper.JsonFieldError(c, "email", "user with this email already exists.")
				}
			}
			user.UserEmail = email
		}
		if req.User.Password != nil && *req.User.Password != "" {
			hashed, err := bcrypt.GenerateFromPassword([]byte(*req.User.Password), bcrypt.DefaultCost)
			if err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update employee")
			}
			user.UserPassword = string(hashed)
		}
		applyNestedUserUpdate(&user, req.User)
		if req.User.Group != nil {
			user.UserIsSuperuser = userDto.IsSuperuserGroup(*req.User.Group)
			user.UserIsStaff = user.UserIsSuperuser
		}
	}

	if req.BankAccountNumber != nil {
		employee.EmployeeBankAccountNumber = req.BankAccountNumber
	}
	if req.Status != nil {
		employee.EmployeeStatus = *req.Status
	}
	if req.Partner != nil {
		employee.EmployeePartnerID = *req.Partner
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&user).Error; err != nil {
			return err
		}
		if req.User != nil && req.User.Group != nil {
			if err := setMembership(tx, user.UserID, *req.User.Group); err != nil {
				return err
			}
		}
		if err := tx.Save(&employee).Error; err != nil {
			return err
		}
		if req.Branches != nil {
			if err := tx.Where("employee_user_id = ?", user.UserID).
				Delete(&model.EmployeeBranchModel{}).Error; err != nil {
				return err
			}
			if err := replaceBranches(tx, user.UserID, *req.Branches); err != nil {
				return err
			}
		}
		if req.Courses != nil {
			if err := tx.Where("employee_user_id = ?", user.UserID).
				Delete(&model.EmployeeCourseModel{}).Error; err != nil {
				return err
			}
			return replaceCourses(tx, user.UserID, *req.Courses)
		}
		return nil
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update employee")
	}

	resp, err := ctrl.render(&employee, i18n.Lang(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update employee")
	}
	return helper.JsonOK(c, resp)
}

// DeleteEmployee removes the underlying user; the employee row and its
// links go with it by cascade.
func (ctrl *EmployeeController) DeleteEmployee(c *fiber.Ctx) error {
	caller := scope.FromCtx(c)

	var employee model.EmployeeModel
	if err := ctrl.DB.Scopes(scope.Employees(caller)).
		First(&employee, "employee_user_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Not found")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", employee.EmployeeUserID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete employee")
	}
	if err := ctrl.DB.Delete(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete employee")
	}
	if user.UserImageURL != nil {
		helperOSS.DeleteBlobQuietly(c.Context(), *user.UserImageURL)
	}
	return helper.JsonDeleted(c)
}

func (ctrl *EmployeeController) render(e *model.EmployeeModel, lang string) (dto.EmployeeResponse, error) {
	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", e.EmployeeUserID).Error; err != nil {
		return dto.EmployeeResponse{}, err
	}
	groupName := userCtrl.GroupNameFor(ctrl.DB, user.UserID)

	var branches, courses []int64
	ctrl.DB.Model(&model.EmployeeBranchModel{}).
		Where("employee_user_id = ?", e.EmployeeUserID).
		Order("branch_id ASC").
		Pluck("branch_id", &branches)
	ctrl.DB.Model(&model.EmployeeCourseModel{}).
		Where("employee_user_id = ?", e.EmployeeUserID).
		Order("course_id ASC").
		Pluck("course_id", &courses)

	return dto.NewEmployeeResponse(e, userDto.NewUserResponse(&user, groupName, lang), branches, courses, lang), nil
}

func (ctrl *EmployeeController) ownedPartnerID(userID int64) (int64, error) {
	var ids []int64
	err := ctrl.DB.Table("partners").
		Where("partner_owner_id = ?", userID).
		Limit(1).
		Pluck("partner_id", &ids).Error
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return ids[0], nil
}

func setMembership(tx *gorm.DB, userID int64, groupName string) error {
	var g groupModel.GroupModel
	if err := tx.Where("group_name = ?", groupName).First(&g).Error; err != nil {
		return err
	}
	if err := tx.Where("user_id = ?", userID).Delete(&userModel.UserGroupModel{}).Error; err != nil {
		return err
	}
	return tx.Create(&userModel.UserGroupModel{UserID: userID, GroupID: g.GroupID}).Error
}

func replaceBranches(tx *gorm.DB, userID int64, branchIDs []int64) error {
	for _, id := range branchIDs {
		if err := tx.Create(&model.EmployeeBranchModel{EmployeeUserID: userID, BranchID: id}).Error; err != nil {
			return err
		}
	}
	return nil
}

func replaceCourses(tx *gorm.DB, userID int64, courseIDs []int64) error {
	for _, id := range courseIDs {
		if err := tx.Create(&model.EmployeeCourseModel{EmployeeUserID: userID, CourseID: id}).Error; err != nil {
			return err
		}
	}
	return nil
}

func parseBirthday(s *string) *datatypes.Date {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	d := datatypes.Date(t)
	return &d
}

func applyNestedUser(u *userModel.UserModel, req *userDto.UserCreateRequest) {
	u.UserBirthday = parseBirthday(req.Birthday)
	if req.FirstName != nil {
		u.UserFirstName = *req.FirstName
	}
	if req.LastName != nil {
		u.UserLastName = *req.LastName
	}
	if req.Patronymic != nil {
		u.UserPatronymic = *req.Patronymic
	}
	if req.Gender != nil && *req.Gender != "" {
		u.UserGender = *req.Gender
	}
	if req.PhoneNumber != nil && *req.PhoneNumber != "" {
		u.UserPhoneNumber = req.PhoneNumber
	}
	if req.Note != nil {
		u.UserNote = req.Note
	}
	if req.Country != nil {
		u.UserCountry = req.Country
	}
	if req.Region != nil {
		u.UserRegion = req.Region
	}
	if req.City != nil {
		u.UserCity = req.City
	}
	if req.Street != nil {
		u.UserStreet = req.Street
	}
	if req.House != nil {
		u.UserHouse = req.House
	}
	if req.AddressNote != nil {
		u.UserAddressNote = req.AddressNote
	}
	if req.IsActive != nil {
		u.UserIsActive = *req.IsActive
	}
}

func applyNestedUserUpdate(u *userModel.UserModel, req *userDto.UserUpdateRequest) {
	if req.Birthday != nil {
		u.UserBirthday = parseBirthday(req.Birthday)
	}
	if req.FirstName != nil {
		u.UserFirstName = *req.FirstName
	}
	if req.LastName != nil {
		u.UserLastName = *req.LastName
	}
	if req.Patronymic != nil {
		u.UserPatronymic = *req.Patronymic
	}
	if req.Gender != nil && *req.Gender != "" {
		u.UserGender = *req.Gender
	}
	if req.PhoneNumber != nil {
		if *req.PhoneNumber == "" {
			u.UserPhoneNumber = nil
		} else {
			u.UserPhoneNumber = req.PhoneNumber
		}
	}
	if req.Note != nil {
		u.UserNote = req.Note
	}
	if req.Country != nil {
		u.UserCountry = req.Country
	}
	if req.Region != nil {
		u.UserRegion = req.Region
	}
	if req.City != nil {
		u.UserCity = req.City
	}
	if req.Street != nil {
		u.UserStreet = req.Street
	}
	if req.House != nil {
		u.UserHouse = req.House
	}
	if req.AddressNote != nil {
		u.UserAddressNote = req.AddressNote
	}
	if req.IsActive != nil {
		u.UserIsActive = *req.IsActive
	}
}
