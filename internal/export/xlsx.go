package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"hallbook/internal/domain"
)

const sheetName = "Bookings"

var headers = []string{
	"ID", "Status", "Contact", "Organization", "Email", "Phone", "Space",
	"Start Date", "End Date", "Time", "Guests", "Event", "Quote Total", "Created",
}

// BookingsXLSX renders a bookings ledger as an Excel workbook, one row per
// booking in the order given.
func BookingsXLSX(bookings []domain.Booking) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("write header %s: %w", h, err)
		}
	}

	for row, b := range bookings {
		values := []any{
			b.ID.String(), string(b.Status), b.ContactPerson, b.Organization,
			b.Email, b.Phone, string(b.Space), b.EventStartDate, b.EventEndDate,
			string(b.TimeSelection), b.GuestCount, b.EventTitle, b.QuoteTotal,
			b.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("write row %d: %w", row+1, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
