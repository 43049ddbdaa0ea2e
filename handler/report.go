package handler

import (
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/helper"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GetSalesReport aggregates served orders over day/week/month windows.
func GetSalesReport(c *fiber.Ctx) error {
	rng := c.Query("range", "day")

	now := time.Now()
	if _, _, err := helper.ReportWindow(rng, now); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_VALID, err)
	}

	report, err := helper.BuildSalesReport(rng, now)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.STORE_UNAVAILABLE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, report)
}
