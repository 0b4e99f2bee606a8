package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/karigarhub/karigar-backend/database"
	"github.com/karigarhub/karigar-backend/models"
	"github.com/karigarhub/karigar-backend/notifications"
)

// SendBookingReminders emails both parties of confirmed bookings starting
// roughly one hour from now. It never touches booking status.
func SendBookingReminders() {
	log.Println("Running job: SendBookingReminders...")

	now := time.Now()
	lowerBound := now.Add(60 * time.Minute)
	upperBound := now.Add(65 * time.Minute)

	var todaysBookings []models.Booking
	err := database.DB.
		Preload("Customer").
		Preload("Worker.User").
		Where("status = ? AND booking_date IN ?", models.BookingConfirmed,
			[]string{lowerBound.Format("2006-01-02"), upperBound.Format("2006-01-02")}).
		Find(&todaysBookings).Error
	if err != nil {
		log.Printf("Error checking for upcoming bookings: %v", err)
		return
	}

	for _, booking := range todaysBookings {
		start, err := time.ParseInLocation("2006-01-02 15:04",
			booking.BookingDate.Format("2006-01-02")+" "+booking.StartTime, now.Location())
		if err != nil {
			continue
		}
		if start.Before(lowerBound) || start.After(upperBound) {
			continue
		}

		log.Printf("Sending reminder for booking %s", booking.Reference)

		emailSubject := "Reminder: Your Booking Starts in 1 Hour!"
		emailBody := fmt.Sprintf(
			"<h1>Booking Reminder</h1><p>Hi there,</p><p>This is a friendly reminder that %s (ref %s) is scheduled to start at %s at %s.</p>",
			booking.Title, booking.Reference, booking.StartTime, booking.Location,
		)

		go notifications.SendEmail(booking.Customer.FullName(), booking.Customer.Email, emailSubject, emailBody)
		go notifications.SendEmail(booking.Worker.User.FullName(), booking.Worker.User.Email, emailSubject, emailBody)
	}
}
