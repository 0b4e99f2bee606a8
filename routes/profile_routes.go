package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/karigarhub/karigar-backend/handlers"
	"github.com/karigarhub/karigar-backend/middleware"
)

func ProfileRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	profile := api.Group("/profile/me", middleware.Protected())
	profile.Get("", handlers.GetProfile)
	profile.Put("", handlers.UpdateProfile)

	profile.Get("/settings", handlers.GetMySettings)
	profile.Put("/settings", handlers.UpdateMySettings)

	addresses := profile.Group("/addresses")
	addresses.Get("", handlers.GetMyAddresses)
	addresses.Post("", handlers.CreateAddress)
	addresses.Delete("/:addressId", handlers.DeleteAddress)
}
