package notifications

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	config "github.com/karigarhub/karigar-backend/configs"
	"github.com/karigarhub/karigar-backend/models"
)

type BrevoService struct {
	APIKey      string
	SenderEmail string
	SenderName  string
}

var EmailClient *BrevoService

type brevoPayload struct {
	Sender      map[string]string   `json:"sender"`
	To          []map[string]string `json:"to"`
	Subject     string              `json:"subject"`
	HTMLContent string              `json:"htmlContent"`
}

func InitEmailService() {
	apiKey := config.Config("BREVO_API_KEY")
	senderEmail := config.Config("EMAIL_SENDER")
	senderName := config.Config("EMAIL_SENDER_NAME")

	if apiKey == "" || senderEmail == "" || senderName == "" {
		log.Println("⚠️ Email service not configured. Missing API Key, Sender Email, or Sender Name.")
		EmailClient = nil
		return
	}

	EmailClient = &BrevoService{
		APIKey:      apiKey,
		SenderEmail: senderEmail,
		SenderName:  senderName,
	}
	log.Println("✅ Email service initialized successfully.")
}

func SendEmail(recipientName, recipientEmail, subject, htmlContent string) {
	if EmailClient == nil {
		log.Printf("Email service not configured; dropping email to %s (%s)", recipientEmail, subject)
		return
	}

	payload := brevoPayload{
		Sender: map[string]string{
			"name":  EmailClient.SenderName,
			"email": EmailClient.SenderEmail,
		},
		To: []map[string]string{
			{"name": recipientName, "email": recipientEmail},
		},
		Subject:     subject,
		HTMLContent: htmlContent,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("🔥 Failed to marshal email payload: %v", err)
		return
	}

	req, err := http.NewRequest(http.MethodPost, "https://api.brevo.com/v3/smtp/email", bytes.NewReader(body))
	if err != nil {
		log.Printf("🔥 Failed to build email request: %v", err)
		return
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("content-type", "application/json")
	req.Header.Set("api-key", EmailClient.APIKey)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		log.Printf("🔥 Failed to send email to %s: %v", recipientEmail, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		log.Printf("🔥 Email API returned %d for %s: %s", resp.StatusCode, recipientEmail, string(respBody))
		return
	}
	log.Printf("✅ Email sent to %s: %s", recipientEmail, subject)
}

// SendBookingStatusEmail notifies a booking party about a lifecycle change.
func SendBookingStatusEmail(recipientName, recipientEmail string, booking *models.Booking) {
	var subject, headline string
	switch booking.Status {
	case models.BookingConfirmed:
		subject = "Your Booking is Confirmed!"
		headline = "Booking Confirmed"
	case models.BookingInProgress:
		subject = "Your Booking is Underway"
		headline = "Work Started"
	case models.BookingCompleted:
		subject = "Your Booking is Complete"
		headline = "Booking Completed"
	case models.BookingCancelled:
		subject = "Your Booking Was Cancelled"
		headline = "Booking Cancelled"
	default:
		subject = "Booking Update"
		headline = "Booking Update"
	}

	title := booking.Title
	if strings.TrimSpace(title) == "" {
		title = "your booking"
	}

	body := fmt.Sprintf(
		"<h1>%s</h1><p>Hi %s,</p><p>%s (ref %s) on %s at %s is now <b>%s</b>.</p>",
		headline, recipientName, title, booking.Reference,
		booking.BookingDate.Format("January 2, 2006"), booking.StartTime, booking.Status,
	)
	SendEmail(recipientName, recipientEmail, subject, body)
}
