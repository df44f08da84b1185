package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	helper "backoffice_backend/internals/helpers"
	"backoffice_backend/internals/helpers/i18n"
	helperOSS "backoffice_backend/internals/helpers/oss"

	groupModel "backoffice_backend/internals/features/users/group/model"
	"backoffice_backend/internals/features/users/user/dto"
	"backoffice_backend/internals/features/users/user/model"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

// GroupNameFor returns the raw group name of the user's single membership,
// or "" when the user is ungrouped.
func GroupNameFor(db *gorm.DB, userID int64) string {
	var names []string
	db.Table("groups").
		Joins("JOIN user_groups ON user_groups.group_id = groups.group_id").
		Where("user_groups.user_id = ?", userID).
		Limit(1).
		Pluck("groups.group_name", &names)
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

func groupNamesFor(db *gorm.DB, userIDs []int64) map[int64]string {
	out := make(map[int64]string, len(userIDs))
	if len(userIDs) == 0 {
		return out
	}
	var rows []struct {
		UserID    int64
		GroupName string
	}
	db.Table("user_groups").
		Select("user_groups.user_id, groups.group_name").
		Joins("JOIN groups ON groups.group_id = user_groups.group_id").
		Where("user_groups.user_id IN ?", userIDs).
		Scan(&rows)
	for _, r := range rows {
		out[r.UserID] = r.GroupName
	}
	return out
}

func setMembership(tx *gorm.DB, userID int64, groupName string) error {
	var g groupModel.GroupModel
	if err := tx.Where("group_name = ?", groupName).First(&g).Error; err != nil {
		return err
	}
	if err := tx.Where("user_id = ?", userID).Delete(&model.UserGroupModel{}).Error; err != nil {
		return err
	}
	return tx.Create(&model.UserGroupModel{UserID: userID, GroupID: g.GroupID}).Error
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

func (ctrl *UserController) GetUsers(c *fiber.Ctx) error {
	lang := i18n.Lang(c)
	paging := helper.ResolvePaging(c)

	q := ctrl.DB.Model(&model.UserModel{})

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}

	var users []model.UserModel
	if err := q.Order("user_date_joined DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}

	ids := make([]int64, 0, len(users))
	for i := range users {
		ids = append(ids, users[i].UserID)
	}
	groups := groupNamesFor(ctrl.DB, ids)

	results := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		results = append(results, dto.NewUserResponse(&users[i], groups[users[i].UserID], lang))
	}
	return helper.JsonList(c, count, results)
}

func (ctrl *UserController) GetUser(c *fiber.Ctx) error {
	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Not found")
	}
	return helper.JsonOK(c, dto.NewUserResponse(&user, GroupNameFor(ctrl.DB, user.UserID), i18n.Lang(c)))
}

func (ctrl *UserController) CreateUser(c *fiber.Ctx) error {
	var req dto.UserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if taken, err := ctrl.emailTaken(req.Email, 0); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	} else if taken {
		return helper.JsonFieldError(c, "email", "user with this email already exists.")
	}
	if req.PhoneNumber != nil && *req.PhoneNumber != "" {
		if taken, err := ctrl.phoneTaken(*req.PhoneNumber, 0); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
		} else if taken {
			return helper.JsonFieldError(c, "phone_number", "user with this phone number already exists.")
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	user := model.UserModel{
		UserEmail:    req.Email,
		UserPassword: string(hashed),
		UserGender:   model.GenderUndefined,
	}
	applyOptional(&user, req.FirstName, req.LastName, req.Patronymic, req.Gender,
		req.PhoneNumber, req.Note, req.Country, req.Region, req.City, req.Street,
		req.House, req.AddressNote)
	user.UserBirthday = parseBirthday(req.Birthday)
	if req.IsActive != nil {
		user.UserIsActive = *req.IsActive
	} else {
		user.UserIsActive = true
	}
	user.UserIsSuperuser = dto.IsSuperuserGroup(req.Group)
	user.UserIsStaff = user.UserIsSuperuser

	if fh, errFile := c.FormFile("image"); errFile == nil && fh != nil {
		blob, errBlob := helperOSS.Blob()
		if errBlob != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "File storage is not available")
		}
		url, errUp := blob.UploadImage(c.Context(), "user_images", fh)
		if errUp != nil {
			return helper.JsonFieldError(c, "image", "Failed to store image")
		}
		user.UserImageURL = &url
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return setMembership(tx, user.UserID, req.Group)
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, dto.NewUserResponse(&user, req.Group, i18n.Lang(c)))
}

func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Not found")
	}

	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != user.UserEmail {
			if taken, err := ctrl.emailTaken(email, user.UserID); err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
			} else if taken {
				return helper.JsonFieldError(c, "email", "user with this email already exists.")
			}
		}
		user.UserEmail = email
	}
	if req.PhoneNumber != nil && *req.PhoneNumber != "" {
		if user.UserPhoneNumber == nil || *user.UserPhoneNumber != *req.PhoneNumber {
			if taken, err := ctrl.phoneTaken(*req.PhoneNumber, user.UserID); err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
			} else if taken {
				return helper.JsonFieldError(c, "phone_number", "user with this phone number already exists.")
			}
		}
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
		}
		user.UserPassword = string(hashed)
	}

	applyOptional(&user, req.FirstName, req.LastName, req.Patronymic, req.Gender,
		req.PhoneNumber, req.Note, req.Country, req.Region, req.City, req.Street,
		req.House, req.AddressNote)
	if req.Birthday != nil {
		user.UserBirthday = parseBirthday(req.Birthday)
	}
	if req.IsActive != nil {
		user.UserIsActive = *req.IsActive
	}
	if req.Group != nil {
		user.UserIsSuperuser = dto.IsSuperuserGroup(*req.Group)
		user.UserIsStaff = user.UserIsSuperuser
	}

	prevURL := ""
	if user.UserImageURL != nil {
		prevURL = *user.UserImageURL
	}
	uploaded := false
	if fh, errFile := c.FormFile("image"); errFile == nil && fh != nil {
		blob, errBlob := helperOSS.Blob()
		if errBlob != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "File storage is not available")
		}
		url, errUp := blob.UploadImage(c.Context(), "user_images", fh)
		if errUp != nil {
			return helper.JsonFieldError(c, "image", "Failed to store image")
		}
		user.UserImageURL = &url
		uploaded = true
	}
	newURL := ""
	if user.UserImageURL != nil {
		newURL = *user.UserImageURL
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&user).Error; err != nil {
			return err
		}
		if req.Group != nil {
			return setMembership(tx, user.UserID, *req.Group)
		}
		return nil
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}

	if change, old := helperOSS.PlanFileChange(prevURL, newURL, uploaded); change == helperOSS.FileReplaced {
		helperOSS.DeleteBlobQuietly(c.Context(), old)
	}

	return helper.JsonOK(c, dto.NewUserResponse(&user, GroupNameFor(ctrl.DB, user.UserID), i18n.Lang(c)))
}

func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Not found")
	}
	if err := ctrl.DB.Delete(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	if user.UserImageURL != nil {
		helperOSS.DeleteBlobQuietly(c.Context(), *user.UserImageURL)
	}
	return helper.JsonDeleted(c)
}

func (ctrl *UserController) emailTaken(email string, excludeID int64) (bool, error) {
	var n int64
	err := ctrl.DB.Model(&model.UserModel{}).
		Where("user_email = ? AND user_id <> ?", email, excludeID).
		Count(&n).Error
	return n > 0, err
}

func (ctrl *UserController) phoneTaken(phone string, excludeID int64) (bool, error) {
	var n int64
	err := ctrl.DB.Model(&model.UserModel{}).
		Where("user_phone_number = ? AND user_id <> ?", phone, excludeID).
		Count(&n).Error
	return n > 0, err
}

func applyOptional(u *model.UserModel, firstName, lastName, patronymic, gender,
	phone, note, country, region, city, street, house, addressNote *string) {
	if firstName != nil {
		u.UserFirstName = *firstName
	}
	if lastName != nil {
		u.UserLastName = *lastName
	}
	if patronymic != nil {
		u.UserPatronymic = *patronymic
	}
	if gender != nil && *gender != "" {
		u.UserGender = *gender
	}
	if phone != nil {
		if *phone == "" {
			u.UserPhoneNumber = nil
		} else {
			u.UserPhoneNumber = phone
		}
	}
	if note != nil {
		u.UserNote = note
	}
	if country != nil {
		u.UserCountry = country
	}
	if region != nil {
		u.UserRegion = region
	}
	if city != nil {
		u.UserCity = city
	}
	if street != nil {
		u.UserStreet = street
	}
	if house != nil {
		u.UserHouse = house
	}
	if addressNote != nil {
		u.UserAddressNote = addressNote
	}
}
