package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/karigarhub/karigar-backend/database"
	"github.com/karigarhub/karigar-backend/models"
	"github.com/karigarhub/karigar-backend/notifications"
	"github.com/karigarhub/karigar-backend/scheduling"
	"github.com/karigarhub/karigar-backend/services"
	"gorm.io/gorm"
)

type CreateBookingRequest struct {
	WorkerID      string  `json:"worker_id" validate:"required,uuid"`
	ServiceID     *string `json:"service_id,omitempty" validate:"omitempty,uuid"`
	Title         string  `json:"title" validate:"required"`
	Description   string  `json:"description"`
	BookingDate   string  `json:"booking_date" validate:"required,datetime=2006-01-02"`
	StartTime     string  `json:"start_time" validate:"required"`
	DurationHours float64 `json:"duration_hours" validate:"required,gt=0"`
	Location      string  `json:"location" validate:"required"`
	Amount        float64 `json:"amount" validate:"min=0"`
	Notes         string  `json:"notes"`
}

func CreateBooking(c *fiber.Ctx) error {
	customerID := currentUserID(c)

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	workerID, _ := uuid.Parse(req.WorkerID)
	bookingDate, _ := time.Parse("2006-01-02", req.BookingDate)

	var serviceID *uuid.UUID
	if req.ServiceID != nil {
		id, _ := uuid.Parse(*req.ServiceID)
		serviceID = &id
	}

	engine := scheduling.New(database.DB)
	booking, err := engine.CreateBooking(scheduling.BookingInput{
		CustomerID:    customerID,
		WorkerID:      workerID,
		ServiceID:     serviceID,
		Title:         req.Title,
		Description:   req.Description,
		BookingDate:   bookingDate,
		StartTime:     req.StartTime,
		DurationHours: req.DurationHours,
		Location:      req.Location,
		Amount:        req.Amount,
		Notes:         req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, scheduling.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "One or more of the requested time slots is already booked"})
		case errors.Is(err, scheduling.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, scheduling.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Worker not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create booking"})
	}

	go notifyBookingParties(booking.ID, "You Have a New Booking Request!", "New Booking Request")

	return c.Status(fiber.StatusCreated).JSON(booking)
}

func GetMyBookings(c *fiber.Ctx) error {
	userID := currentUserID(c)
	role := currentRole(c)

	query := database.DB.
		Preload("Customer").
		Preload("Worker.User").
		Preload("Service").
		Order("booking_date asc, start_time asc")

	if role == "worker" {
		var profile models.WorkerProfile
		if err := database.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Worker profile not found"})
		}
		query = query.Where("worker_id = ?", profile.ID)
	} else {
		query = query.Where("customer_id = ?", userID)
	}

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch bookings"})
	}

	return c.JSON(bookings)
}

func GetBooking(c *fiber.Ctx) error {
	userID := currentUserID(c)
	role := currentRole(c)

	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	engine := scheduling.New(database.DB)
	booking, err := engine.GetBooking(bookingID)
	if err != nil {
		if errors.Is(err, scheduling.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch booking"})
	}

	if role != "admin" && booking.CustomerID != userID && booking.Worker.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not your booking"})
	}

	return c.JSON(booking)
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// statusAllowedFor gates which lifecycle moves each role may request. The
// engine still validates the transition itself.
func statusAllowedFor(role string, isCustomer, isWorker bool, next models.BookingStatus) bool {
	if role == "admin" {
		return true
	}
	switch next {
	case models.BookingConfirmed, models.BookingInProgress, models.BookingCompleted:
		return isWorker
	case models.BookingCancelled:
		return isCustomer || isWorker
	}
	return false
}

func UpdateBookingStatus(c *fiber.Ctx) error {
	userID := currentUserID(c)
	role := currentRole(c)

	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	next := models.BookingStatus(req.Status)
	if !next.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown booking status"})
	}

	engine := scheduling.New(database.DB)
	booking, err := engine.GetBooking(bookingID)
	if err != nil {
		if errors.Is(err, scheduling.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch booking"})
	}

	isCustomer := booking.CustomerID == userID
	isWorker := booking.Worker.UserID == userID
	if !statusAllowedFor(role, isCustomer, isWorker, next) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not allowed to make this status change"})
	}

	if err := engine.UpdateBookingStatus(bookingID, next); err != nil {
		switch {
		case errors.Is(err, scheduling.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, scheduling.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update booking status"})
	}

	if next == models.BookingCompleted {
		database.DB.Model(&models.WorkerProfile{}).
			Where("id = ?", booking.WorkerID).
			Update("total_jobs", gorm.Expr("total_jobs + 1"))
		go services.GenerateBookingReceipt(bookingID)
	}

	go notifyBookingParties(bookingID, "", "")

	return c.JSON(fiber.Map{"message": "Booking status updated", "status": next})
}

// notifyBookingParties emails customer and worker about the booking's
// current state. Custom subject/headline override the status-derived ones
// (used for the initial request).
func notifyBookingParties(bookingID uuid.UUID, subject, headline string) {
	var booking models.Booking
	err := database.DB.Preload("Customer").Preload("Worker.User").First(&booking, "id = ?", bookingID).Error
	if err != nil {
		return
	}

	if subject != "" {
		body := "<h1>" + headline + "</h1><p>Booking " + booking.Reference + " for " + booking.Title + " is awaiting confirmation.</p>"
		notifications.SendEmail(booking.Customer.FullName(), booking.Customer.Email, subject, body)
		notifications.SendEmail(booking.Worker.User.FullName(), booking.Worker.User.Email, subject, body)
		return
	}

	notifications.SendBookingStatusEmail(booking.Customer.FullName(), booking.Customer.Email, &booking)
	notifications.SendBookingStatusEmail(booking.Worker.User.FullName(), booking.Worker.User.Email, &booking)
}

func GetBookingStats(c *fiber.Ctx) error {
	userID := currentUserID(c)
	role := currentRole(c)

	engine := scheduling.New(database.DB)
	stats, err := engine.BookingStats(userID, role)
	if err != nil {
		if errors.Is(err, scheduling.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Worker profile not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch booking stats"})
	}

	return c.JSON(stats)
}

type ReviewRequest struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Review string `json:"review"`
}

// RateBooking records a post-completion rating. Customers rate the worker;
// workers rate the customer. A customer rating refreshes the worker
// profile's aggregate.
func RateBooking(c *fiber.Ctx) error {
	userID := currentUserID(c)

	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var booking models.Booking
	err = database.DB.Preload("Worker").First(&booking, "id = ?", bookingID).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}
	if booking.Status != models.BookingCompleted {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only completed bookings can be rated"})
	}

	switch userID {
	case booking.CustomerID:
		if booking.CustomerRating != nil {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You have already rated this booking"})
		}
		booking.CustomerRating = &req.Rating
		if req.Review != "" {
			booking.CustomerReview = &req.Review
		}
	case booking.Worker.UserID:
		if booking.WorkerRating != nil {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You have already rated this booking"})
		}
		booking.WorkerRating = &req.Rating
		if req.Review != "" {
			booking.WorkerReview = &req.Review
		}
	default:
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not your booking"})
	}

	if err := database.DB.Save(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save rating"})
	}

	if userID == booking.CustomerID {
		refreshWorkerRating(booking.WorkerID)
	}

	return c.JSON(booking)
}

// refreshWorkerRating recomputes the aggregate from all customer ratings.
func refreshWorkerRating(workerID uuid.UUID) {
	var avg float64
	err := database.DB.Model(&models.Booking{}).
		Where("worker_id = ? AND customer_rating IS NOT NULL", workerID).
		Select("COALESCE(AVG(customer_rating), 0)").
		Scan(&avg).Error
	if err != nil {
		return
	}
	database.DB.Model(&models.WorkerProfile{}).Where("id = ?", workerID).Update("rating", avg)
}
