// Role-based visibility scoping. Every collection handler narrows its
// queryset through one of the policy functions below before applying
// query-parameter filters, so the two compose conjunctively.
package scope

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"backoffice_backend/internals/constants"
)

// Caller is the authenticated identity resolved by the auth middleware.
type Caller struct {
	UserID int64
	Role   string
}

// FromCtx reads the caller out of the request locals set by AuthMiddleware.
func FromCtx(c *fiber.Ctx) Caller {
	var caller Caller
	if s, ok := c.Locals("user_id").(string); ok {
		caller.UserID, _ = strconv.ParseInt(s, 10, 64)
	}
	if r, ok := c.Locals("user_role").(string); ok {
		caller.Role = r
	}
	return caller
}

func (cl Caller) IsTeacher() bool   { return cl.Role == constants.RoleTeacher }
func (cl Caller) IsOwner() bool     { return cl.Role == constants.RoleOwner }
func (cl Caller) IsSuperuser() bool { return cl.Role == constants.RoleSuperuser }

// Partners: teachers see the partner employing them, owners their own
// partner, everyone else the full collection.
func Partners(cl Caller) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		switch cl.Role {
		case constants.RoleTeacher:
			return q.Where("partner_id IN (SELECT employee_partner_id FROM employees WHERE employee_user_id = ?)", cl.UserID)
		case constants.RoleOwner:
			return q.Where("partner_owner_id = ?", cl.UserID)
		}
		return q
	}
}

// Employees: narrowed to the caller's partner for teachers and owners.
func Employees(cl Caller) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		switch cl.Role {
		case constants.RoleTeacher:
			return q.Where("employee_partner_id IN (SELECT employee_partner_id FROM employees WHERE employee_user_id = ?)", cl.UserID)
		case constants.RoleOwner:
			return q.Where("employee_partner_id IN (SELECT partner_id FROM partners WHERE partner_owner_id = ?)", cl.UserID)
		}
		return q
	}
}

// Branches: same partner reachability as employees.
func Branches(cl Caller) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		switch cl.Role {
		case constants.RoleTeacher:
			return q.Where("branch_partner_id IN (SELECT employee_partner_id FROM employees WHERE employee_user_id = ?)", cl.UserID)
		case constants.RoleOwner:
			return q.Where("branch_partner_id IN (SELECT partner_id FROM partners WHERE partner_owner_id = ?)", cl.UserID)
		}
		return q
	}
}

// Courses: teachers only see courses they are assigned to. Owners are not
// narrowed here; the catalog is shared across partners.
func Courses(cl Caller) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if cl.Role == constants.RoleTeacher {
			return q.Where("course_id IN (SELECT course_id FROM employee_courses WHERE employee_user_id = ?)", cl.UserID)
		}
		return q
	}
}

// Lessons: follow course visibility for teachers.
func Lessons(cl Caller) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if cl.Role == constants.RoleTeacher {
			return q.Where("lesson_course_id IN (SELECT course_id FROM employee_courses WHERE employee_user_id = ?)", cl.UserID)
		}
		return q
	}
}
