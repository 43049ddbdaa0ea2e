package handler

import (
	"strconv"

	"restaurant_manager/config"
	"restaurant_manager/constants"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GetMenuQR renders the shareable menu link as a PNG QR code, for printing
// on tables or at the gate.
func GetMenuQR(c *fiber.Ctx) error {
	menuUrl := config.Config("MENU_URL")
	if menuUrl == "" {
		menuUrl = "http://localhost:3000/menu"
	}

	size := 400
	if s := c.Query("size"); s != "" {
		if parsed, err := strconv.Atoi(s); err == nil && parsed >= 100 && parsed <= 1000 {
			size = parsed
		}
	}

	qrBytes, err := utils.GenerateQRCode(menuUrl, size)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(qrBytes)
}
