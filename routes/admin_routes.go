package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/karigarhub/karigar-backend/handlers"
	"github.com/karigarhub/karigar-backend/middleware"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/verifications/pending", handlers.ListPendingVerifications)
	admin.Put("/verifications/:workerId", handlers.ProcessVerification)
	admin.Get("/dashboard-analytics", handlers.GetDashboardAnalytics)
	admin.Get("/bookings", handlers.AdminGetAllBookings)

	users := admin.Group("/users")
	users.Get("", handlers.GetAllUsers)
	users.Put("/:userId/status", handlers.ToggleUserStatus)
}
