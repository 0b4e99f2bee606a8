package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/karigarhub/karigar-backend/handlers"
	"github.com/karigarhub/karigar-backend/middleware"
)

func WorkerRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/workers", handlers.ListAvailableWorkers)
	api.Get("/workers/:workerId", handlers.GetWorkerProfile)
	api.Get("/workers/:workerId/availability", handlers.GetWorkerAvailability)
	api.Get("/workers/:workerId/services", handlers.ListWorkerServices)

	worker := api.Group("/worker", middleware.Protected(), middleware.WorkerRequired())

	profile := worker.Group("/profile")
	profile.Get("/me", handlers.GetMyWorkerProfile)
	profile.Put("/me", handlers.UpdateMyWorkerProfile)

	availability := worker.Group("/availability")
	availability.Get("", handlers.GetMyWeeklyAvailability)
	availability.Put("", handlers.SetMyWeeklyAvailability)

	services := worker.Group("/services")
	services.Get("", handlers.ListMyServices)
	services.Post("", handlers.CreateService)
	services.Put("/:serviceId", handlers.UpdateService)
	services.Delete("/:serviceId", handlers.DeactivateService)
}
