package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	config "github.com/karigarhub/karigar-backend/configs"
	"github.com/karigarhub/karigar-backend/database"
	"github.com/karigarhub/karigar-backend/models"
)

const receiptTemplate = `<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: Georgia, serif; margin: 48px; color: #222; }
  .header { border-bottom: 2px solid #222; padding-bottom: 12px; }
  .ref { color: #666; font-size: 14px; }
  table { width: 100%; margin-top: 24px; border-collapse: collapse; }
  td { padding: 8px 0; border-bottom: 1px solid #ddd; }
  td.label { color: #666; width: 40%; }
  .total { font-size: 20px; font-weight: bold; margin-top: 24px; }
</style>
</head>
<body>
  <div class="header">
    <h1>Booking Receipt</h1>
    <div class="ref">Reference {{.Reference}}</div>
  </div>
  <table>
    <tr><td class="label">Service</td><td>{{.Title}}</td></tr>
    <tr><td class="label">Customer</td><td>{{.CustomerName}}</td></tr>
    <tr><td class="label">Worker</td><td>{{.WorkerName}}</td></tr>
    <tr><td class="label">Date</td><td>{{.Date}}</td></tr>
    <tr><td class="label">Time</td><td>{{.StartTime}} – {{.EndTime}}</td></tr>
    <tr><td class="label">Location</td><td>{{.Location}}</td></tr>
  </table>
  <div class="total">Amount: Rs. {{.Amount}}</div>
</body>
</html>`

// GenerateBookingReceipt renders a PDF receipt for a completed booking,
// uploads it and stores the URL on the booking. Failures are logged; the
// booking itself is already completed at this point.
func GenerateBookingReceipt(bookingID uuid.UUID) {
	var booking models.Booking
	err := database.DB.
		Preload("Customer").
		Preload("Worker.User").
		First(&booking, "id = ?", bookingID).Error
	if err != nil {
		log.Printf("🔥 Receipt: failed to load booking %s: %v", bookingID, err)
		return
	}
	if booking.Status != models.BookingCompleted {
		return
	}

	htmlData, err := renderReceiptHTML(&booking)
	if err != nil {
		log.Printf("🔥 Receipt: failed to render HTML for %s: %v", bookingID, err)
		return
	}

	pdfBytes, err := printPDF(htmlData)
	if err != nil {
		log.Printf("🔥 Receipt: failed to print PDF for %s: %v", bookingID, err)
		return
	}

	uploadURL, err := uploadReceipt(pdfBytes, booking.Reference)
	if err != nil {
		log.Printf("🔥 Receipt: failed to upload PDF for %s: %v", bookingID, err)
		return
	}

	err = database.DB.Model(&booking).Update("receipt_url", uploadURL).Error
	if err != nil {
		log.Printf("🔥 Receipt: failed to store URL for %s: %v", bookingID, err)
		return
	}
	log.Printf("✅ Receipt generated for booking %s", booking.Reference)
}

func renderReceiptHTML(booking *models.Booking) (string, error) {
	tmpl, err := template.New("receipt").Parse(receiptTemplate)
	if err != nil {
		return "", err
	}

	data := struct {
		Reference    string
		Title        string
		CustomerName string
		WorkerName   string
		Date         string
		StartTime    string
		EndTime      string
		Location     string
		Amount       string
	}{
		Reference:    booking.Reference,
		Title:        booking.Title,
		CustomerName: booking.Customer.FullName(),
		WorkerName:   booking.Worker.User.FullName(),
		Date:         booking.BookingDate.Format("January 2, 2006"),
		StartTime:    booking.StartTime,
		EndTime:      booking.EndTime,
		Location:     booking.Location,
		Amount:       fmt.Sprintf("%.0f", booking.Amount),
	}

	var rendered bytes.Buffer
	if err := tmpl.Execute(&rendered, data); err != nil {
		return "", err
	}
	return rendered.String(), nil
}

func printPDF(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	ctx, cancelTimeout := context.WithTimeout(ctx, 30*time.Second)
	defer cancelTimeout()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadReceipt(pdfBytes []byte, reference string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := cld.Upload.Upload(ctx, bytes.NewReader(pdfBytes), uploader.UploadParams{
		Folder:   "karigar_receipts",
		PublicID: "receipt_" + reference,
	})
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}
