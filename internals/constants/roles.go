package constants

import "fmt"

// Fixed group names. The boundary enforces a single group per user, so
// these double as the caller roles carried in JWT claims.
const (
	RoleSuperuser = "superuser"
	RoleOwner     = "owner"
	RoleTeacher   = "teacher"
)

var (
	AllRoles = []string{
		RoleSuperuser,
		RoleOwner,
		RoleTeacher,
	}

	OwnerAndAbove = []string{
		RoleOwner,
		RoleSuperuser,
	}

	SuperuserOnly = []string{
		RoleSuperuser,
	}
)

const (
	ErrOnlyOwnersCanAccess    = "Only owners or superusers may access %s."
	ErrOnlySuperuserCanAccess = "Only superusers may access %s."
)

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}

func RoleErrorSuperuser(feature string) string {
	return fmt.Sprintf(ErrOnlySuperuserCanAccess, feature)
}
