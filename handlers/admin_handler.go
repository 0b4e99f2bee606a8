package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/karigarhub/karigar-backend/database"
	"github.com/karigarhub/karigar-backend/models"
	"github.com/karigarhub/karigar-backend/notifications"
)

func ListPendingVerifications(c *fiber.Ctx) error {
	var profiles []models.WorkerProfile
	err := database.DB.
		Preload("User").
		Where("verification_status = ?", models.VerificationPending).
		Order("created_at asc").
		Find(&profiles).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch pending verifications"})
	}

	return c.JSON(profiles)
}

type ProcessVerificationRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
	Reason string `json:"reason"`
}

func ProcessVerification(c *fiber.Ctx) error {
	workerID := c.Params("workerId")

	var req ProcessVerificationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var profile models.WorkerProfile
	err := database.DB.Preload("User").First(&profile, "id = ?", workerID).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Worker profile not found"})
	}
	if profile.VerificationStatus != models.VerificationPending {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Worker verification has already been processed"})
	}

	if req.Action == "approve" {
		profile.VerificationStatus = models.VerificationVerified
	} else {
		profile.VerificationStatus = models.VerificationRejected
	}

	if err := database.DB.Save(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update verification status"})
	}

	if req.Action == "approve" {
		go notifications.SendEmail(profile.User.FullName(), profile.User.Email,
			"Your Worker Profile is Verified!",
			"<h1>You're Verified</h1><p>Your profile is now visible to customers. Set your weekly availability to start receiving bookings.</p>")
	} else {
		go notifications.SendEmail(profile.User.FullName(), profile.User.Email,
			"Your Worker Verification Was Declined",
			"<h1>Verification Declined</h1><p>"+req.Reason+"</p>")
	}

	return c.JSON(profile)
}

func GetAllUsers(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "25"))
	offset := (page - 1) * pageSize

	query := database.DB.Model(&models.User{}).Order("created_at desc")
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var total int64
	query.Count(&total)

	var users []models.User
	if err := query.Limit(pageSize).Offset(offset).Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch users"})
	}

	return c.JSON(fiber.Map{"users": users, "total": total, "page": page})
}

func ToggleUserStatus(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	user.IsActive = !user.IsActive
	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user status"})
	}

	return c.JSON(fiber.Map{"id": user.ID, "is_active": user.IsActive})
}

func GetDashboardAnalytics(c *fiber.Ctx) error {
	var totalUsers, totalWorkers, totalBookings, pendingVerifications int64
	database.DB.Model(&models.User{}).Count(&totalUsers)
	database.DB.Model(&models.WorkerProfile{}).Count(&totalWorkers)
	database.DB.Model(&models.Booking{}).Count(&totalBookings)
	database.DB.Model(&models.WorkerProfile{}).
		Where("verification_status = ?", models.VerificationPending).
		Count(&pendingVerifications)

	var completedRevenue float64
	database.DB.Model(&models.Booking{}).
		Where("status = ?", models.BookingCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&completedRevenue)

	return c.JSON(fiber.Map{
		"total_users":           totalUsers,
		"total_workers":         totalWorkers,
		"total_bookings":        totalBookings,
		"pending_verifications": pendingVerifications,
		"completed_revenue":     completedRevenue,
	})
}

func AdminGetAllBookings(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "25"))
	offset := (page - 1) * pageSize

	query := database.DB.
		Preload("Customer").
		Preload("Worker.User").
		Order("created_at desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Limit(pageSize).Offset(offset).Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch bookings"})
	}

	return c.JSON(bookings)
}
