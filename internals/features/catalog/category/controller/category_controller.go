package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "backoffice_backend/internals/helpers"

	"backoffice_backend/internals/features/catalog/category/dto"
	"backoffice_backend/internals/features/catalog/category/model"
	"backoffice_backend/internals/features/catalog/category/service"
)

type CategoryController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db, Validate: validator.New()}
}

func (ctrl *CategoryController) GetCategories(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)

	q := ctrl.DB.Model(&model.CategoryModel{})
	if search := c.Query("search"); search != "" {
		q = q.Where("category_name ILIKE ?", "%"+search+"%")
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch categories")
	}

	var categories []model.CategoryModel
	if err := q.Order("category_id ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&categories).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch categories")
	}

	results := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		results = append(results, dto.NewCategoryResponse(&categories[i]))
	}
	return helper.JsonList(c, count, results)
}

func (ctrl *CategoryController) GetCategory(c *fiber.Ctx) error {
	var cat model.CategoryModel
	if err := ctrl.DB.First(&cat, "category_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Not found")
	}
	return helper.JsonOK(c, dto.NewCategoryResponse(&cat))
}

func (ctrl *CategoryController) CreateCategory(c *fiber.Ctx) error {
	var req dto.CategoryCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var n int64
	ctrl.DB.Model(&model.CategoryModel{}).Where("category_name = ?", req.Name).Count(&n)
	if n > 0 {
		return helper.JsonFieldError(c, "name", "category with this name already exists.")
	}
	if req.Parent != nil {
		if err := ctrl.DB.First(&model.CategoryModel{}, "category_id = ?", *req.Parent).Error; err != nil {
			return helper.JsonFieldError(c, "parent", "Parent category does not exist.")
		}
	}

	cat := model.CategoryModel{CategoryName: req.Name, CategoryParentID: req.Parent}
	if err := ctrl.DB.Create(&cat).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create category")
	}
	return helper.JsonCreated(c, dto.NewCategoryResponse(&cat))
}

func (ctrl *CategoryController) UpdateCategory(c *fiber.Ctx) error {
	var cat model.CategoryModel
	if err := ctrl.DB.First(&cat, "category_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Not found")
	}

	var req dto.CategoryUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.Name != nil && *req.Name != cat.CategoryName {
		var n int64
		ctrl.DB.Model(&model.CategoryModel{}).
			Where("category_name = ? AND category_id <> ?", *req.Name, cat.CategoryID).
			Count(&n)
		if n > 0 {
			return helper.JsonFieldError(c, "name", "category with this name already exists.")
		}
		cat.CategoryName = *req.Name
	}
	if req.Parent != nil {
		if *req.Parent == cat.CategoryID {
			return helper.JsonFieldError(c, "parent", "A category cannot be its own parent.")
		}
		if err := ctrl.DB.First(&model.CategoryModel{}, "category_id = ?", *req.Parent).Error; err != nil {
			return helper.JsonFieldError(c, "parent", "Parent category does not exist.")
		}
		if ancestors, err := service.ParentMap(ctrl.DB); err == nil {
			for _, id := range service.ExpandWithAncestors([]int64{*req.Parent}, ancestors) {
				if id == cat.CategoryID {
					return helper.JsonFieldError(c, "parent", "Parent assignment would create a cycle.")
				}
			}
		}
		cat.CategoryParentID = req.Parent
	}

	if err := ctrl.DB.Save(&cat).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update category")
	}
	return helper.JsonOK(c, dto.NewCategoryResponse(&cat))
}

func (ctrl *CategoryController) DeleteCategory(c *fiber.Ctx) error {
	var cat model.CategoryModel
	if err := ctrl.DB.First(&cat, "category_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Not found")
	}
	if err := ctrl.DB.Delete(&cat).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete category")
	}
	return helper.JsonDeleted(c)
}
