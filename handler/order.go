package handler

import (
	"errors"
	"strconv"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PlaceOrder is the checkout endpoint: verification gate, snapshot, token
// assignment and insert all happen in helper.PlaceOrder.
func PlaceOrder(c *fiber.Ctx) error {
	input, ok := c.Locals("placeOrderInput").(model.PlaceOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_VALID, nil)
	}

	order, err := helper.PlaceOrder(input)
	if err != nil {
		switch {
		case errors.Is(err, constants.ErrVerificationFailed):
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.VERIFICATION_FAILED, err)
		case errors.Is(err, constants.ErrNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MENU_ITEM_NOT_FOUND, err)
		default:
			return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.STORE_UNAVAILABLE, err)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, order)
}

// GetOrders lists orders for the staff dashboard, newest first. Without an
// explicit ?status= it returns active orders only (not served, not
// cancelled), which is what the kitchen view shows.
func GetOrders(c *fiber.Ctx) error {
	status := c.Query("status")

	query := database.DB.Model(&model.Order{})
	if status != "" {
		if !model.IsValidStatus(status) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_VALID, errors.New("unknown status"))
		}
		query = query.Where("status = ?", status)
	} else {
		query = query.Where("status NOT IN ?", []string{constants.STATUS_SERVED, constants.STATUS_CANCELLED})
	}

	var limit, page *int
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		limit = &v
	}
	if v, err := strconv.Atoi(c.Query("page")); err == nil {
		page = &v
	}
	query = utils.ApplyPagination(query.Order("created_at desc"), limit, page)

	var orders []model.Order
	if err := query.Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.STORE_UNAVAILABLE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, orders)
}

// GetOrderById serves the customer tracking page its initial state. Public:
// the uuid itself is the capability.
func GetOrderById(c *fiber.Ctx) error {
	orderId := c.Params("orderId")

	var order model.Order
	if err := database.DB.First(&order, "id = ?", orderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.STORE_UNAVAILABLE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// UpdateOrderStatus maps the dashboard action buttons onto the state machine.
func UpdateOrderStatus(c *fiber.Ctx) error {
	orderId := c.Params("orderId")
	input, ok := c.Locals("statusInput").(model.UpdateOrderStatusInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_VALID, nil)
	}

	order, err := helper.TransitionOrder(orderId, input.Status)
	if err != nil {
		switch {
		case errors.Is(err, constants.ErrNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		case errors.Is(err, constants.ErrInvalidTransition):
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.INVALID_TRANSITION, err)
		case errors.Is(err, constants.ErrStatusConflict):
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.STATUS_CONFLICT, err)
		default:
			return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.STORE_UNAVAILABLE, err)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// DeleteOrder is an administrative escape hatch; orders are never deleted in
// the normal flow.
func DeleteOrder(c *fiber.Ctx) error {
	orderId := c.Params("orderId")

	if err := helper.DeleteOrder(orderId); err != nil {
		if errors.Is(err, constants.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.STORE_UNAVAILABLE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": orderId})
}
