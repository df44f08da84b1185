package seeds

import (
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"backoffice_backend/internals/constants"

	groupModel "backoffice_backend/internals/features/users/group/model"
	userModel "backoffice_backend/internals/features/users/user/model"
)

var groupDescriptions = map[string]string{
	constants.RoleSuperuser: "Full access to every partner and resource.",
	constants.RoleOwner:     "Manages the partner they own, its branches and employees.",
	constants.RoleTeacher:   "Sees their partner and works with the courses they teach.",
}

var seededResources = []string{
	"user", "group", "permission", "partner", "employee",
	"branch", "course", "category", "lesson",
}

var seededActions = []string{"add", "change", "delete", "view"}

// Run creates the fixed groups with their permissions and, when
// SEED_SUPERUSER_EMAIL is set, a bootstrap superuser. It is idempotent.
func Run(db *gorm.DB) error {
	if err := seedPermissions(db); err != nil {
		return err
	}
	if err := seedGroups(db); err != nil {
		return err
	}
	if err := seedSuperuser(db); err != nil {
		return err
	}
	log.Println("[INFO] seeds applied")
	return nil
}

func seedPermissions(db *gorm.DB) error {
	for _, resource := range seededResources {
		for _, action := range seededActions {
			perm := groupModel.PermissionModel{
				PermissionName:        fmt.Sprintf("Can %s %s", action, resource),
				PermissionCodename:    fmt.Sprintf("%s_%s", action, resource),
				PermissionContentType: resource,
			}
			var existing groupModel.PermissionModel
			err := db.Where("permission_codename = ?", perm.PermissionCodename).First(&existing).Error
			if err == gorm.ErrRecordNotFound {
				if err := db.Create(&perm).Error; err != nil {
					return err
				}
			} else if err != nil {
				return err
			}
		}
	}
	return nil
}

func seedGroups(db *gorm.DB) error {
	for _, name := range constants.AllRoles {
		var group groupModel.GroupModel
		err := db.Where("group_name = ?", name).First(&group).Error
		if err == gorm.ErrRecordNotFound {
			group = groupModel.GroupModel{GroupName: name}
			if err := db.Create(&group).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		var desc groupModel.GroupDescriptionModel
		err = db.Where("group_id = ?", group.GroupID).First(&desc).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&groupModel.GroupDescriptionModel{
				GroupID:          group.GroupID,
				GroupDescription: groupDescriptions[name],
			}).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		if err := linkGroupPermissions(db, &group); err != nil {
			return err
		}
	}
	return nil
}

// linkGroupPermissions grants everything to superuser and owner, and the
// view/change subset to teacher.
func linkGroupPermissions(db *gorm.DB, group *groupModel.GroupModel) error {
	var perms []groupModel.PermissionModel
	q := db.Model(&groupModel.PermissionModel{})
	if group.GroupName == constants.RoleTeacher {
		q = q.Where("permission_codename LIKE 'view_%' OR permission_codename LIKE 'change_%'")
	}
	if err := q.Find(&perms).Error; err != nil {
		return err
	}
	for _, p := range perms {
		var n int64
		db.Model(&groupModel.GroupPermissionModel{}).
			Where("group_id = ? AND permission_id = ?", group.GroupID, p.PermissionID).
			Count(&n)
		if n == 0 {
			if err := db.Create(&groupModel.GroupPermissionModel{
				GroupID:      group.GroupID,
				PermissionID: p.PermissionID,
			}).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func seedSuperuser(db *gorm.DB) error {
	email := strings.ToLower(strings.TrimSpace(os.Getenv("SEED_SUPERUSER_EMAIL")))
	password := os.Getenv("SEED_SUPERUSER_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	var n int64
	db.Model(&userModel.UserModel{}).Where("user_email = ?", email).Count(&n)
	if n > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := userModel.UserModel{
		UserEmail:       email,
		UserPassword:    string(hashed),
		UserGender:      userModel.GenderUndefined,
		UserIsActive:    true,
		UserIsStaff:     true,
		UserIsSuperuser: true,
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		var group groupModel.GroupModel
		if err := tx.Where("group_name = ?", constants.RoleSuperuser).First(&group).Error; err != nil {
			return err
		}
		return tx.Create(&userModel.UserGroupModel{UserID: user.UserID, GroupID: group.GroupID}).Error
	})
}
