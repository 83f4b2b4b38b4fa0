package services

import (
	"bytes"
	"fmt"
	"strings"

	"carrental/internal/domain/models"
	"carrental/internal/repositories"
	"carrental/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ReceiptService renders a printable receipt for a persisted booking.
type ReceiptService struct {
	BookingRepo repositories.BookingRepository
	RequestID   string
}

func (s ReceiptService) GenerateReceipt(bookingID int64) ([]byte, string, error) {
	b, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "receipt", "generate", fmt.Sprintf("booking_id=%d", bookingID))
	return buildReceiptPDF(b)
}

func buildReceiptPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING CONFIRMED - RECEIPT")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 12)
	customer := []string{
		fmt.Sprintf("Customer Name : %s", receiptSafe(b.Name)),
		fmt.Sprintf("Email         : %s", receiptSafe(b.Email)),
		fmt.Sprintf("Phone         : %s", receiptSafe(b.Phone)),
	}
	for _, line := range customer {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	details := []string{
		fmt.Sprintf("Car Model         : %s", receiptSafe(b.Car)),
		fmt.Sprintf("Pickup Date       : %s", utils.FormatReceiptTime(b.PickupDate)),
		fmt.Sprintf("Drop Date         : %s", utils.FormatReceiptTime(b.DropDate)),
		fmt.Sprintf("Pickup Location   : %s", receiptSafe(b.PickupLocation)),
		fmt.Sprintf("Drop-off Location : %s", receiptSafe(b.DropoffLocation)),
	}
	for _, line := range details {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "TOTAL AMOUNT PAID: "+utils.FormatDollarGrouped(b.Price))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This receipt is the proof of your completed car rental booking.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("RECEIPT_%d_%s.pdf", b.ID, receiptFilenamePart(b.Name))
	return buf.Bytes(), filename, nil
}

func receiptSafe(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "-"
	}
	return v
}

func receiptFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	// truncate on runes so a multi-byte name is never split mid-character
	if r := []rune(s); len(r) > 40 {
		s = string(r[:40])
	}
	return s
}
