package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/karigarhub/karigar-backend/handlers"
	"github.com/karigarhub/karigar-backend/middleware"
)

func UploadRoutes(app *fiber.App) {
	api := app.Group("/api/v1", middleware.Protected())

	uploads := api.Group("/uploads")
	uploads.Get("/signature", handlers.GenerateUploadSignature)
}
