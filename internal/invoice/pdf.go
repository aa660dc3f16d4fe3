package invoice

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"hallbook/internal/domain"
)

// RenderPDF produces a one-page invoice PDF for a booking's quote.
func RenderPDF(booking *domain.Booking, q *domain.Quote, venueName, currency string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("%s - Booking Invoice", venueName))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Booking: %s", booking.ID))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Contact: %s (%s)", booking.ContactPerson, booking.Email))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Event: %s, %s to %s", booking.EventTitle, booking.EventStartDate, booking.EventEndDate))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(70, 8, "Category", "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, "Item", "1", 0, "L", false, 0, "")
	pdf.CellFormat(15, 8, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(45, 8, "Subtotal", "1", 0, "R", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	for _, it := range q.Items {
		pdf.CellFormat(70, 7, it.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, it.Label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(15, 7, fmt.Sprintf("%d", it.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 7, fmt.Sprintf("%s %.2f", currency, it.Subtotal), "1", 0, "R", false, 0, "")
		pdf.Ln(7)
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(145, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(45, 8, fmt.Sprintf("%s %.2f", currency, q.Total), "1", 0, "R", false, 0, "")
	pdf.Ln(8)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering invoice PDF: %w", err)
	}
	return buf.Bytes(), nil
}
