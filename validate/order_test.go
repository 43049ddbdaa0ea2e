package validate

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, app *fiber.App, path, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestPlaceOrderValidation(t *testing.T) {
	app := fiber.New()
	app.Post("/orders", PlaceOrder(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	valid := `{"items":[{"menuItemId":1,"quantity":2}],"customerName":"Asha","pin":"4821"}`
	assert.Equal(t, fiber.StatusOK, postJSON(t, app, "/orders", valid))

	// name and phone are optional
	minimal := `{"items":[{"menuItemId":1,"quantity":1}],"pin":"4821"}`
	assert.Equal(t, fiber.StatusOK, postJSON(t, app, "/orders", minimal))

	missingPin := `{"items":[{"menuItemId":1,"quantity":2}]}`
	assert.Equal(t, fiber.StatusBadRequest, postJSON(t, app, "/orders", missingPin))

	shortPin := `{"items":[{"menuItemId":1,"quantity":2}],"pin":"48"}`
	assert.Equal(t, fiber.StatusBadRequest, postJSON(t, app, "/orders", shortPin))

	emptyCart := `{"items":[],"pin":"4821"}`
	assert.Equal(t, fiber.StatusBadRequest, postJSON(t, app, "/orders", emptyCart))

	zeroQuantity := `{"items":[{"menuItemId":1,"quantity":0}],"pin":"4821"}`
	assert.Equal(t, fiber.StatusBadRequest, postJSON(t, app, "/orders", zeroQuantity))

	notJSON := `token=1`
	assert.Equal(t, fiber.StatusBadRequest, postJSON(t, app, "/orders", notJSON))
}

func TestUpdateOrderStatusValidation(t *testing.T) {
	app := fiber.New()
	app.Patch("/orders/:orderId/status", UpdateOrderStatus(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	patch := func(body string) int {
		req := httptest.NewRequest("PATCH", "/orders/abc/status", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, fiber.StatusOK, patch(`{"status":"preparing"}`))
	assert.Equal(t, fiber.StatusOK, patch(`{"status":"cancelled"}`))
	// pending is never a target, only a starting point
	assert.Equal(t, fiber.StatusBadRequest, patch(`{"status":"pending"}`))
	assert.Equal(t, fiber.StatusBadRequest, patch(`{"status":"shipped"}`))
	assert.Equal(t, fiber.StatusBadRequest, patch(`{}`))
}

func TestUpdatePinValidation(t *testing.T) {
	app := fiber.New()
	app.Put("/pin", UpdatePin(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	put := func(body string) int {
		req := httptest.NewRequest("PUT", "/pin", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, fiber.StatusOK, put(`{"pin":"4821"}`))
	assert.Equal(t, fiber.StatusBadRequest, put(`{"pin":"48213"}`))
	assert.Equal(t, fiber.StatusBadRequest, put(`{"pin":"abcd"}`))
	assert.Equal(t, fiber.StatusBadRequest, put(`{}`))
}
