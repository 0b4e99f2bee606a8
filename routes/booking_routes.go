package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/karigarhub/karigar-backend/handlers"
	"github.com/karigarhub/karigar-backend/middleware"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	bookings := api.Group("/bookings", middleware.Protected())
	bookings.Get("/me", handlers.GetMyBookings)
	bookings.Get("/stats", handlers.GetBookingStats)
	bookings.Post("", handlers.CreateBooking)
	bookings.Get("/:bookingId", handlers.GetBooking)
	bookings.Put("/:bookingId/status", handlers.UpdateBookingStatus)
	bookings.Post("/:bookingId/review", handlers.RateBooking)
}
