package router

import (
	"restaurant_manager/handler"
	"restaurant_manager/middleware"
	"restaurant_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)

	// Customer surface
	menu := v1.Group("/menu")
	menu.Get("/", handler.GetMenuItems)
	menu.Get("/:slug", handler.GetMenuItemBySlug)

	orders := v1.Group("/orders")
	orders.Post("/", validate.PlaceOrder(), handler.PlaceOrder)
	orders.Get("/:orderId", handler.GetOrderById)

	v1.Get("/qr/menu", handler.GetMenuQR)

	// Staff surface
	orders.Get("/", middleware.Protected(), handler.GetOrders)
	orders.Patch("/:orderId/status", middleware.Protected(), validate.UpdateOrderStatus(), handler.UpdateOrderStatus)
	orders.Delete("/:orderId", middleware.Protected(), handler.DeleteOrder)

	settings := v1.Group("/settings", logger.New())
	settings.Get("/verification-pin", middleware.Protected(), handler.GetVerificationPin)
	settings.Put("/verification-pin", middleware.Protected(), validate.UpdatePin(), handler.UpdateVerificationPin)
	settings.Post("/verification-pin/refresh", middleware.Protected(), handler.RefreshVerificationPin)

	menuAdmin := v1.Group("/menu-admin", logger.New())
	menuAdmin.Post("/", middleware.Protected(), validate.CreateMenuItem(), handler.CreateMenuItem)
	menuAdmin.Put("/:itemId", middleware.Protected(), validate.GetById("itemId"), validate.UpdateMenuItem(), handler.UpdateMenuItem)
	menuAdmin.Post("/:itemId/image", middleware.Protected(), validate.GetById("itemId"), handler.UploadMenuItemImage)
	v1.Post("/cloudinary-signature", middleware.Protected(), handler.GenerateSignature)

	reports := v1.Group("/reports", logger.New())
	reports.Get("/sales", middleware.Protected(), handler.GetSalesReport)

	// Realtime fan-out
	ws := v1.Group("/ws")
	ws.Get("/orders", websocket.New(handler.DashboardWebsocket))
	ws.Get("/orders/:orderId", websocket.New(handler.OrderWebsocket))
}
