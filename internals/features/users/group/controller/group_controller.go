package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "backoffice_backend/internals/helpers"
	"backoffice_backend/internals/helpers/i18n"

	"backoffice_backend/internals/features/users/group/dto"
	"backoffice_backend/internals/features/users/group/model"
)

type GroupController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewGroupController(db *gorm.DB) *GroupController {
	return &GroupController{DB: db, Validate: validator.New()}
}

func (ctrl *GroupController) GetGroups(c *fiber.Ctx) error {
	lang := i18n.Lang(c)
	paging := helper.ResolvePaging(c)

	var count int64
	if err := ctrl.DB.Model(&model.GroupModel{}).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch groups")
	}

	var groups []model.GroupModel
	if err := ctrl.DB.Preload("Description").Preload("Permissions").
		Order("group_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&groups).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch groups")
	}

	results := make([]dto.GroupResponse, 0, len(groups))
	for i := range groups {
		results = append(results, dto.NewGroupResponse(&groups[i], lang))
	}
	return helper.JsonList(c, count, results)
}

func (ctrl *GroupController) GetGroup(c *fiber.Ctx) error {
	var group model.GroupModel
	if err := ctrl.DB.Preload("Description").Preload("Permissions").
		First(&group, "group_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Not found")
	}
	return helper.JsonOK(c, dto.NewGroupResponse(&group, i18n.Lang(c)))
}

func (ctrl *GroupController) CreateGroup(c *fiber.Ctx) error {
	var req dto.GroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var n int64
	ctrl.DB.Model(&model.GroupModel{}).Where("group_name = ?", req.Name).Count(&n)
	if n > 0 {
		return helper.JsonFieldError(c, "name", "group with this name already exists.")
	}

	group := model.GroupModel{GroupName: req.Name}
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&group).Error; err != nil {
			return err
		}
		if req.Description != nil {
			if err := tx.Create(&model.GroupDescriptionModel{
				GroupID:          group.GroupID,
				GroupDescription: *req.Description,
			}).Error; err != nil {
				return err
			}
		}
		return replacePermissions(tx, group.GroupID, req.Permissions)
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create group")
	}

	ctrl.DB.Preload("Description").Preload("Permissions").First(&group, group.GroupID)
	return helper.JsonCreated(c, dto.NewGroupResponse(&group, i18n.Lang(c)))
}

func (ctrl *GroupController) UpdateGroup(c *fiber.Ctx) error {
	var group model.GroupModel
	if err := ctrl.DB.First(&group, "group_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Not found")
	}

	var req dto.GroupUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.Name != nil && *req.Name != group.GroupName {
		var n int64
		ctrl.DB.Model(&model.GroupModel{}).
			Where("group_name = ? AND group_id <> ?", *req.Name, group.GroupID).
			Count(&n)
		if n > 0 {
			return helper.JsonFieldError(c, "name", "group with this name already exists.")
		}
		group.GroupName = *req.Name
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&group).Error; err != nil {
			return err
		}
		if req.Description != nil {
			desc := model.GroupDescriptionModel{}
			err := tx.Where("group_id = ?", group.GroupID).First(&desc).Error
			switch {
			case err == nil:
				desc.GroupDescription = *req.Description
				if err := tx.Save(&desc).Error; err != nil {
					return err
				}
			case err == gorm.ErrRecordNotFound:
				if err := tx.Create(&model.GroupDescriptionModel{
					GroupID:          group.GroupID,
					GroupDescription: *req.Description,
				}).Error; err != nil {
					return err
				}
			default:
				return err
			}
		}
		if req.Permissions != nil {
			if err := tx.Where("group_id = ?", group.GroupID).
				Delete(&model.GroupPermissionModel{}).Error; err != nil {
				return err
			}
			return replacePermissions(tx, group.GroupID, req.Permissions)
		}
		return nil
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update group")
	}

	ctrl.DB.Preload("Description").Preload("Permissions").First(&group, group.GroupID)
	return helper.JsonOK(c, dto.NewGroupResponse(&group, i18n.Lang(c)))
}

func (ctrl *GroupController) DeleteGroup(c *fiber.Ctx) error {
	var group model.GroupModel
	if err := ctrl.DB.First(&group, "group_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Not found")
	}
	if err := ctrl.DB.Delete(&group).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete group")
	}
	return helper.JsonDeleted(c)
}

func replacePermissions(tx *gorm.DB, groupID int64, permissionIDs []int64) error {
	for _, pid := range permissionIDs {
		if err := tx.Create(&model.GroupPermissionModel{GroupID: groupID, PermissionID: pid}).Error; err != nil {
			return err
		}
	}
	return nil
}

/* ========================= permissions ========================= */

func (ctrl *GroupController) GetPermissions(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)

	q := ctrl.DB.Model(&model.PermissionModel{})
	if search := c.Query("search"); search != "" {
		q = q.Where("permission_name ILIKE ?", "%"+search+"%")
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch permissions")
	}

	var perms []model.PermissionModel
	if err := q.Order("permission_content_type ASC, permission_id ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&perms).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch permissions")
	}

	results := make([]dto.PermissionResponse, 0, len(perms))
	for _, p := range perms {
		results = append(results, dto.NewPermissionResponse(p))
	}
	return helper.JsonList(c, count, results)
}

func (ctrl *GroupController) GetPermission(c *fiber.Ctx) error {
	var p model.PermissionModel
	if err := ctrl.DB.First(&p, "permission_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Not found")
	}
	return helper.JsonOK(c, dto.NewPermissionResponse(p))
}

func (ctrl *GroupController) CreatePermission(c *fiber.Ctx) error {
	var req dto.PermissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var n int64
	ctrl.DB.Model(&model.PermissionModel{}).
		Where("permission_codename = ? AND permission_content_type = ?", req.Codename, req.ContentType).
		Count(&n)
	if n > 0 {
		return helper.JsonFieldError(c, "codename", "permission with this codename already exists.")
	}

	p := model.PermissionModel{
		PermissionName:        req.Name,
		PermissionCodename:    req.Codename,
		PermissionContentType: req.ContentType,
	}
	if err := ctrl.DB.Create(&p).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create permission")
	}
	return helper.JsonCreated(c, dto.NewPermissionResponse(p))
}

func (ctrl *GroupController) UpdatePermission(c *fiber.Ctx) error {
	var p model.PermissionModel
	if err := ctrl.DB.First(&p, "permission_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Not found")
	}

	var req dto.PermissionUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.Name != nil {
		p.PermissionName = *req.Name
	}
	if req.Codename != nil {
		p.PermissionCodename = *req.Codename
	}
	if req.ContentType != nil {
		p.PermissionContentType = *req.ContentType
	}

	var n int64
	ctrl.DB.Model(&model.PermissionModel{}).
		Where("permission_codename = ? AND permission_content_type = ? AND permission_id <> ?",
			p.PermissionCodename, p.PermissionContentType, p.PermissionID).
		Count(&n)
	if n > 0 {
		return helper.JsonFieldError(c, "codename", "permission with this codename already exists.")
	}

	if err := ctrl.DB.Save(&p).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update permission")
	}
	return helper.JsonOK(c, dto.NewPermissionResponse(p))
}

func (ctrl *GroupController) DeletePermission(c *fiber.Ctx) error {
	var p model.PermissionModel
	if err := ctrl.DB.First(&p, "permission_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Not found")
	}
	if err := ctrl.DB.Delete(&p).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete permission")
	}
	return helper.JsonDeleted(c)
}
