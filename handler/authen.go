package handler

import (
	"errors"

	"restaurant_manager/constants"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// Login exchanges the staff admin PIN for a session token. There are no user
// accounts; the PIN is a single shared secret for the whole shop.
func Login(c *fiber.Ctx) error {
	loginInput := new(model.LoginInput)

	if err := c.BodyParser(loginInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
	}

	if loginInput.Pin == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, errors.New("pin is required"))
	}

	adminHash, err := helper.GetSetting(constants.SETTING_ADMIN_PIN)
	if err != nil {
		if errors.Is(err, constants.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.SETTING_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.STORE_UNAVAILABLE, err)
	}

	if !helper.CheckPasswordHash(loginInput.Pin, adminHash) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PIN, errors.New("pin does not match"))
	}

	token, err := helper.GenerateAccessToken(model.TokenClaim{Role: "staff"})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   true,
	})

	return utils.SuccessResponse(c, fiber.StatusOK, model.TokenData{AccessToken: token})
}
