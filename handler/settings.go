package handler

import (
	"errors"

	"restaurant_manager/constants"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GetVerificationPin shows the current PIN on the staff dashboard so it can
// be read out at the counter.
func GetVerificationPin(c *fiber.Ctx) error {
	pin, err := helper.GetSetting(constants.SETTING_VERIFICATION_PIN)
	if err != nil {
		if errors.Is(err, constants.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SETTING_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.STORE_UNAVAILABLE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"pin": pin})
}

// UpdateVerificationPin sets an explicit PIN. Orders already accepted keep
// their stored verification_code; a checkout in flight with the old PIN will
// simply be rejected.
func UpdateVerificationPin(c *fiber.Ctx) error {
	input, ok := c.Locals("pinInput").(model.UpdatePinInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_VALID, nil)
	}

	if err := helper.SetSetting(constants.SETTING_VERIFICATION_PIN, input.Pin); err != nil {
		if errors.Is(err, constants.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SETTING_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.STORE_UNAVAILABLE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"pin": input.Pin})
}

// RefreshVerificationPin rotates to a random 4-digit PIN.
func RefreshVerificationPin(c *fiber.Ctx) error {
	pin := helper.GenerateVerificationPin()

	if err := helper.SetSetting(constants.SETTING_VERIFICATION_PIN, pin); err != nil {
		if errors.Is(err, constants.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SETTING_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.STORE_UNAVAILABLE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"pin": pin})
}
