package main

import (
	"log"

	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()
	database.ConnectRedis()

	helper.StartTokenScheduler()
	defer helper.StopTokenScheduler()
	helper.StartReportScheduler()
	defer helper.StopReportScheduler()

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":8002"))
}
