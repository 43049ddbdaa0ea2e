package middleware

import (
	"errors"
	"strings"

	"restaurant_manager/helper"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// Protected guards staff-only routes. The token comes from the HTTPOnly
// cookie set at login, or a Bearer header for non-browser clients.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Missing token", errors.New("no token"))
		}

		jwtToken, err := helper.ParseToken(token)
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
		}

		c.Locals("user", jwtToken)

		if !helper.IsStaff(c) {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "Staff only", errors.New("not staff"))
		}

		return c.Next()
	}
}
