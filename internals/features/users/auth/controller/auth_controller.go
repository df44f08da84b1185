package controller

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"backoffice_backend/internals/configs"
	"backoffice_backend/internals/constants"
	helper "backoffice_backend/internals/helpers"

	"backoffice_backend/internals/features/users/auth/service"
	groupModel "backoffice_backend/internals/features/users/group/model"
	userCtrl "backoffice_backend/internals/features/users/user/controller"
	userModel "backoffice_backend/internals/features/users/user/model"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

// cookieSetDetail is the body both token endpoints answer with; the
// tokens themselves travel only in cookies.
const cookieSetDetail = "Tokens set in cookies"

type loginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// Login checks credentials and sets the access/refresh cookie pair.
// The tokens never appear in the response body.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_email = ?", email).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "No active account found with the given credentials")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusUnauthorized, "No active account found with the given credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "No active account found with the given credentials")
	}

	role := ctrl.resolveRole(&user)
	now := time.Now()

	access, accessExp, err := service.IssueAccessToken(user.UserID, role, now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}
	refresh, refreshExp, err := service.IssueRefreshToken(user.UserID, now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}

	setAccessCookie(c, access, accessExp)
	setRefreshCookie(c, refresh, refreshExp)

	recordLastLogin(ctrl.DB, &user, now)

	return helper.JsonOK(c, fiber.Map{"detail": cookieSetDetail})
}

// Refresh rotates the access cookie. The refresh token is read from its
// cookie only, never from the body.
func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	tokenString := c.Cookies("refresh_token")
	if tokenString == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token cookie is missing")
	}

	userID, err := service.ParseRefreshToken(tokenString)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token is invalid or expired")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil || !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token is invalid or expired")
	}

	access, accessExp, err := service.IssueAccessToken(user.UserID, ctrl.resolveRole(&user), time.Now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}
	setAccessCookie(c, access, accessExp)

	return helper.JsonOK(c, fiber.Map{"detail": cookieSetDetail})
}

// UserGroupPermissions reports the caller's group, its permission
// codenames and the partner the caller is attached to.
func (ctrl *AuthController) UserGroupPermissions(c *fiber.Ctx) error {
	sub, _ := c.Locals("user_id").(string)
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || userID <= 0 {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Authentication credentials were not provided")
	}

	groupName := userCtrl.GroupNameFor(ctrl.DB, userID)
	if groupName == "" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User is not part of any group",
		})
	}

	var group groupModel.GroupModel
	if err := ctrl.DB.Preload("Permissions").
		First(&group, "group_name = ?", groupName).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch group")
	}
	return helper.JsonOK(c, fiber.Map{
		"group_name":  groupName,
		"permissions": permissionCodenames(group.Permissions),
		"partner_id":  ctrl.partnerIDFor(userID, groupName),
	})
}

// permissionCodenames renders permissions as raw codenames. The group
// read path shows display labels; this endpoint does not.
func permissionCodenames(perms []groupModel.PermissionModel) []string {
	out := make([]string, 0, len(perms))
	for _, p := range perms {
		out = append(out, p.PermissionCodename)
	}
	return out
}

// recordLastLogin stamps the login time. A failure here must not block
// the login itself, so it only warns.
func recordLastLogin(db *gorm.DB, user *userModel.UserModel, now time.Time) {
	if err := db.Model(user).Update("user_last_login", now).Error; err != nil {
		log.Printf("[WARN] failed to record last login for user %d: %v", user.UserID, err)
	}
}

func (ctrl *AuthController) resolveRole(user *userModel.UserModel) string {
	if user.UserIsSuperuser {
		return constants.RoleSuperuser
	}
	if name := userCtrl.GroupNameFor(ctrl.DB, user.UserID); name != "" {
		return name
	}
	return ""
}

func (ctrl *AuthController) partnerIDFor(userID int64, groupName string) *int64 {
	var ids []int64
	var err error
	switch groupName {
	case constants.RoleOwner:
		err = ctrl.DB.Table("partners").
			Where("partner_owner_id = ?", userID).
			Limit(1).
			Pluck("partner_id", &ids).Error
	case constants.RoleTeacher:
		err = ctrl.DB.Table("employees").
			Where("employee_user_id = ?", userID).
			Limit(1).
			Pluck("employee_partner_id", &ids).Error
	default:
		return nil
	}
	if err != nil || len(ids) == 0 || ids[0] == 0 {
		return nil
	}
	return &ids[0]
}

func setAccessCookie(c *fiber.Ctx, token string, exp time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/api",
		Expires:  exp,
		HTTPOnly: true,
		Secure:   !configs.Debug,
		SameSite: fiber.CookieSameSiteNoneMode,
	})
}

func setRefreshCookie(c *fiber.Ctx, token string, exp time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Path:     "/auth",
		Expires:  exp,
		HTTPOnly: true,
		Secure:   !configs.Debug,
		SameSite: fiber.CookieSameSiteNoneMode,
	})
}
