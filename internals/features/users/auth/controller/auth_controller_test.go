package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	gormtests "gorm.io/gorm/utils/tests"

	"backoffice_backend/internals/configs"
	groupModel "backoffice_backend/internals/features/users/group/model"
	userModel "backoffice_backend/internals/features/users/user/model"
)

func TestRefreshWithoutCookie(t *testing.T) {
	app := fiber.New()
	ctrl := NewAuthController(nil)
	app.Post("/auth/token/refresh/", ctrl.Refresh)

	resp, err := app.Test(httptest.NewRequest("POST", "/auth/token/refresh/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "Refresh token cookie is missing", body["detail"])
}

func TestRefreshWithGarbageCookie(t *testing.T) {
	configs.JWTRefreshSecret = "test-refresh-secret"

	app := fiber.New()
	ctrl := NewAuthController(nil)
	app.Post("/auth/token/refresh/", ctrl.Refresh)

	req := httptest.NewRequest("POST", "/auth/token/refresh/", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "garbage"})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestPermissionCodenames(t *testing.T) {
	perms := []groupModel.PermissionModel{
		{PermissionName: "Can add user", PermissionCodename: "add_user", PermissionContentType: "user"},
		{PermissionName: "Can change partner", PermissionCodename: "change_partner", PermissionContentType: "partner"},
	}

	got := permissionCodenames(perms)
	assert.Equal(t, []string{"add_user", "change_partner"}, got)
	for _, v := range got {
		assert.NotContains(t, v, " | ")
	}
}

func TestTokenEndpointsShareDetailMessage(t *testing.T) {
	assert.Equal(t, "Tokens set in cookies", cookieSetDetail)
}

func TestRecordLastLoginWarnsOnFailure(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	db, err := gorm.Open(gormtests.DummyDialector{}, &gorm.Config{
		DryRun: true,
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)
	_ = db.AddError(errors.New("connection refused"))

	recordLastLogin(db, &userModel.UserModel{UserID: 42}, time.Now())

	assert.Contains(t, buf.String(), "[WARN]")
	assert.Contains(t, buf.String(), "user 42")
}

func cookieNamed(cookies []*http.Cookie, name string) *http.Cookie {
	for _, ck := range cookies {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

func TestCookieAttributes(t *testing.T) {
	configs.Debug = false

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		exp := time.Now().Add(time.Hour)
		setAccessCookie(c, "access-value", exp)
		setRefreshCookie(c, "refresh-value", exp)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	cookies := resp.Cookies()

	access := cookieNamed(cookies, "access_token")
	require.NotNil(t, access)
	assert.Equal(t, "/api", access.Path)
	assert.True(t, access.HttpOnly)
	assert.True(t, access.Secure)
	assert.Equal(t, http.SameSiteNoneMode, access.SameSite)

	refresh := cookieNamed(cookies, "refresh_token")
	require.NotNil(t, refresh)
	assert.Equal(t, "/auth", refresh.Path)
	assert.True(t, refresh.HttpOnly)
}

func TestCookieInsecureInDebug(t *testing.T) {
	configs.Debug = true
	defer func() { configs.Debug = false }()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		setAccessCookie(c, "access-value", time.Now().Add(time.Hour))
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	access := cookieNamed(resp.Cookies(), "access_token")
	require.NotNil(t, access)
	assert.False(t, access.Secure)
}
