package scope

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callerFor(t *testing.T, userID, role string) Caller {
	t.Helper()

	var got Caller
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		if userID != "" {
			c.Locals("user_id", userID)
		}
		if role != "" {
			c.Locals("user_role", role)
		}
		got = FromCtx(c)
		return c.SendStatus(fiber.StatusOK)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	return got
}

func TestFromCtx(t *testing.T) {
	caller := callerFor(t, "42", "teacher")
	assert.EqualValues(t, 42, caller.UserID)
	assert.True(t, caller.IsTeacher())
	assert.False(t, caller.IsOwner())
	assert.False(t, caller.IsSuperuser())

	caller = callerFor(t, "7", "owner")
	assert.EqualValues(t, 7, caller.UserID)
	assert.True(t, caller.IsOwner())

	caller = callerFor(t, "", "")
	assert.Zero(t, caller.UserID)
	assert.Empty(t, caller.Role)
}

func TestFromCtxBadUserID(t *testing.T) {
	caller := callerFor(t, "not-a-number", "superuser")
	assert.Zero(t, caller.UserID)
	assert.True(t, caller.IsSuperuser())
}
