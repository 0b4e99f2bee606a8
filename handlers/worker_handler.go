package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/karigarhub/karigar-backend/database"
	"github.com/karigarhub/karigar-backend/models"
	"github.com/karigarhub/karigar-backend/scheduling"
)

// myWorkerProfile resolves the calling user's worker profile row.
func myWorkerProfile(c *fiber.Ctx) (*models.WorkerProfile, error) {
	userID := currentUserID(c)

	var profile models.WorkerProfile
	if err := database.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func GetMyWorkerProfile(c *fiber.Ctx) error {
	profile, err := myWorkerProfile(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Worker profile not found"})
	}

	database.DB.Preload("User").First(profile, "id = ?", profile.ID)
	return c.JSON(profile)
}

type UpdateWorkerProfileRequest struct {
	CNIC            *string   `json:"cnic"`
	ServiceCategory *string   `json:"service_category"`
	Skills          *[]string `json:"skills"`
	ExperienceLevel *string   `json:"experience_level"`
	Bio             *string   `json:"bio"`
	HourlyRate      *float64  `json:"hourly_rate"`
	ServiceRadius   *int      `json:"service_radius"`
	Languages       *[]string `json:"languages"`
	PortfolioImages *[]string `json:"portfolio_images"`
	Certifications  *[]string `json:"certifications"`
	IsAvailable     *bool     `json:"is_available"`
}

func UpdateMyWorkerProfile(c *fiber.Ctx) error {
	profile, err := myWorkerProfile(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Worker profile not found"})
	}

	var req UpdateWorkerProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if req.HourlyRate != nil && *req.HourlyRate < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Hourly rate must not be negative"})
	}

	if req.CNIC != nil {
		profile.CNIC = req.CNIC
	}
	if req.ServiceCategory != nil {
		profile.ServiceCategory = *req.ServiceCategory
	}
	if req.Skills != nil {
		profile.Skills = *req.Skills
	}
	if req.ExperienceLevel != nil {
		profile.ExperienceLevel = req.ExperienceLevel
	}
	if req.Bio != nil {
		profile.Bio = req.Bio
	}
	if req.HourlyRate != nil {
		profile.HourlyRate = req.HourlyRate
	}
	if req.ServiceRadius != nil {
		profile.ServiceRadius = *req.ServiceRadius
	}
	if req.Languages != nil {
		profile.Languages = *req.Languages
	}
	if req.PortfolioImages != nil {
		profile.PortfolioImages = *req.PortfolioImages
	}
	if req.Certifications != nil {
		profile.Certifications = *req.Certifications
	}
	if req.IsAvailable != nil {
		profile.IsAvailable = *req.IsAvailable
	}

	if err := database.DB.Save(profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update worker profile"})
	}

	return c.JSON(profile)
}

func GetWorkerProfile(c *fiber.Ctx) error {
	workerID := c.Params("workerId")

	var profile models.WorkerProfile
	err := database.DB.Preload("User").First(&profile, "id = ?", workerID).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Worker not found"})
	}

	return c.JSON(profile)
}

func ListAvailableWorkers(c *fiber.Ctx) error {
	category := c.Query("category")

	engine := scheduling.New(database.DB)
	workers, err := engine.AvailableWorkers(category)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch workers"})
	}

	return c.JSON(workers)
}

type SetAvailabilityRequest struct {
	Rules []scheduling.RuleInput `json:"rules" validate:"required,dive"`
}

// SetMyWeeklyAvailability replaces the caller's entire weekly schedule.
func SetMyWeeklyAvailability(c *fiber.Ctx) error {
	profile, err := myWorkerProfile(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Worker profile not found"})
	}

	var req SetAvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	engine := scheduling.New(database.DB)
	if err := engine.SetWeeklyAvailability(profile.ID, req.Rules); err != nil {
		if errors.Is(err, scheduling.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update availability"})
	}

	rules, err := engine.WeeklyAvailability(profile.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load availability"})
	}
	return c.JSON(rules)
}

func GetMyWeeklyAvailability(c *fiber.Ctx) error {
	profile, err := myWorkerProfile(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Worker profile not found"})
	}

	engine := scheduling.New(database.DB)
	rules, err := engine.WeeklyAvailability(profile.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load availability"})
	}

	return c.JSON(rules)
}

// GetWorkerAvailability returns the bookable and occupied 30-minute slots
// for a worker on one date (?date=2006-01-02).
func GetWorkerAvailability(c *fiber.Ctx) error {
	workerID, err := uuid.Parse(c.Params("workerId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid worker id"})
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid or missing date (expected YYYY-MM-DD)"})
	}

	engine := scheduling.New(database.DB)
	slots, err := engine.GetAvailability(workerID, date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to resolve availability"})
	}

	return c.JSON(slots)
}

type ServiceRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category" validate:"required"`
	Rate        float64 `json:"rate" validate:"min=0"`
}

func CreateService(c *fiber.Ctx) error {
	profile, err := myWorkerProfile(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Worker profile not found"})
	}

	var req ServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	service := models.Service{
		WorkerID:    profile.ID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Rate:        req.Rate,
	}
	if err := database.DB.Create(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create service"})
	}

	return c.Status(fiber.StatusCreated).JSON(service)
}

func ListMyServices(c *fiber.Ctx) error {
	profile, err := myWorkerProfile(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Worker profile not found"})
	}

	var services []models.Service
	database.DB.Where("worker_id = ?", profile.ID).Order("created_at desc").Find(&services)

	return c.JSON(services)
}

func ListWorkerServices(c *fiber.Ctx) error {
	workerID := c.Params("workerId")

	var services []models.Service
	database.DB.Where("worker_id = ? AND is_active = ?", workerID, true).Find(&services)

	return c.JSON(services)
}

func UpdateService(c *fiber.Ctx) error {
	profile, err := myWorkerProfile(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Worker profile not found"})
	}
	serviceID := c.Params("serviceId")

	var service models.Service
	err = database.DB.Where("id = ? AND worker_id = ?", serviceID, profile.ID).First(&service).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}

	var req ServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	service.Title = req.Title
	service.Description = req.Description
	service.Category = req.Category
	service.Rate = req.Rate
	if err := database.DB.Save(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update service"})
	}

	return c.JSON(service)
}

func DeactivateService(c *fiber.Ctx) error {
	profile, err := myWorkerProfile(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Worker profile not found"})
	}
	serviceID := c.Params("serviceId")

	result := database.DB.Model(&models.Service{}).
		Where("id = ? AND worker_id = ?", serviceID, profile.ID).
		Update("is_active", false)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to deactivate service"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
