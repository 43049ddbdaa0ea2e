package handler

import (
	"errors"
	"strings"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetMenuItems lists available items for the customer menu. Staff can pass
// ?all=true to include unavailable ones. Supports ?category= and ?q= name
// search.
func GetMenuItems(c *fiber.Ctx) error {
	query := database.DB.Model(&model.MenuItem{})

	if c.Query("all") != "true" {
		query = query.Where("is_available = ?", true)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if q := c.Query("q"); q != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	var items []model.MenuItem
	if err := query.Order("category, name").Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.STORE_UNAVAILABLE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, items)
}

func GetMenuItemBySlug(c *fiber.Ctx) error {
	itemSlug := c.Params("slug")

	var item model.MenuItem
	if err := database.DB.First(&item, "slug = ?", itemSlug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MENU_ITEM_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.STORE_UNAVAILABLE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

func CreateMenuItem(c *fiber.Ctx) error {
	input, ok := c.Locals("menuItemInput").(model.CreateMenuItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_VALID, nil)
	}

	item := model.MenuItem{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		ImageUrl:    input.ImageUrl,
		IsAvailable: true,
	}
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}

	if err := database.DB.Create(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, item)
}

// UpdateMenuItem edits a menu row. Orders already placed keep their snapshots;
// price changes here never reach them.
func UpdateMenuItem(c *fiber.Ctx) error {
	itemId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_VALID, nil)
	}
	input, ok := c.Locals("menuItemUpdate").(model.UpdateMenuItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_VALID, nil)
	}

	var item model.MenuItem
	if err := database.DB.First(&item, itemId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MENU_ITEM_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.STORE_UNAVAILABLE, err)
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.Category != nil {
		updates["category"] = *input.Category
	}
	if input.ImageUrl != nil {
		updates["image_url"] = *input.ImageUrl
	}
	if input.IsAvailable != nil {
		updates["is_available"] = *input.IsAvailable
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&item).Updates(updates).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}
