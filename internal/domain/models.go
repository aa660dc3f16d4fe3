package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// BookingRequest is the validated intake form for a hall booking. Dates are
// carried as submitted; unparseable dates degrade to a one-day duration
// rather than failing the request.
type BookingRequest struct {
	ContactPerson    string        `json:"contact_person"`
	Organization     string        `json:"organization"`
	Email            string        `json:"email"`
	Phone            string        `json:"phone"`
	Space            Space         `json:"space"`
	EventStartDate   string        `json:"event_start_date"`
	EventEndDate     string        `json:"event_end_date"`
	TimeSelection    TimeSelection `json:"time_selection"`
	CustomStart      string        `json:"custom_start,omitempty"`
	CustomEnd        string        `json:"custom_end,omitempty"`
	GuestCount       int           `json:"guest_count"`
	EventTitle       string        `json:"event_title"`
	EventDescription string        `json:"event_description"`
	Privacy          Privacy       `json:"privacy"`
	Setup            []string      `json:"setup,omitempty"`
	OtherSetup       string        `json:"other_setup,omitempty"`
	Catering         string        `json:"catering,omitempty"`
}

// ItemKey addresses a tariff line item within the table.
type ItemKey struct {
	Category string
	Label    string
}

// Selection is the caller's state for one tariff line.
type Selection struct {
	Checked  bool
	Quantity int
}

// SelectionSet maps tariff line items to the caller's checked/quantity state.
type SelectionSet map[ItemKey]Selection

// QuoteLineItem is one priced row of a quote. Subtotal is always the exact
// product of Quantity and UnitPrice.
type QuoteLineItem struct {
	Category  string  `json:"category"`
	Label     string  `json:"label"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

// Quote is an ordered, itemized price quote. Total is the exact sum of
// subtotals; rounding happens only at display time.
type Quote struct {
	Items []QuoteLineItem `json:"items"`
	Total float64         `json:"total"`
}

// Booking is the persisted booking record. DisplayTitle carries the
// "PENDING: " prefix until approval; EventTitle and EventDescription keep the
// originals so approval can restore them.
type Booking struct {
	ID                uuid.UUID       `db:"id" json:"id"`
	Status            BookingStatus   `db:"status" json:"status"`
	DisplayTitle      string          `db:"display_title" json:"display_title"`
	EventTitle        string          `db:"event_title" json:"event_title"`
	EventDescription  string          `db:"event_description" json:"event_description"`
	PublicDescription string          `db:"public_description" json:"public_description"`
	IsPrivate         bool            `db:"is_private" json:"is_private"`
	ContactPerson     string          `db:"contact_person" json:"contact_person"`
	Organization      string          `db:"organization" json:"organization"`
	Email             string          `db:"email" json:"email"`
	Phone             string          `db:"phone" json:"phone"`
	Space             Space           `db:"space" json:"space"`
	EventStartDate    string          `db:"event_start_date" json:"event_start_date"`
	EventEndDate      string          `db:"event_end_date" json:"event_end_date"`
	TimeSelection     TimeSelection   `db:"time_selection" json:"time_selection"`
	CustomStart       string          `db:"custom_start" json:"custom_start,omitempty"`
	CustomEnd         string          `db:"custom_end" json:"custom_end,omitempty"`
	GuestCount        int             `db:"guest_count" json:"guest_count"`
	SetupRequirements string          `db:"setup_requirements" json:"setup_requirements,omitempty"`
	OtherSetup        string          `db:"other_setup" json:"other_setup,omitempty"`
	Catering          string          `db:"catering" json:"catering,omitempty"`
	QuoteItems        json.RawMessage `db:"quote_items" json:"quote_items"`
	QuoteTotal        float64         `db:"quote_total" json:"quote_total"`
	CreatedAt         time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at" json:"updated_at"`
}

// Invoice is the billing record linked to a booking.
type Invoice struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	BookingID uuid.UUID       `db:"booking_id" json:"booking_id"`
	Contact   string          `db:"contact" json:"contact"`
	Email     string          `db:"email" json:"email"`
	Items     json.RawMessage `db:"items" json:"items"`
	Total     float64         `db:"total" json:"total"`
	Status    InvoiceStatus   `db:"status" json:"status"`
	PDFKey    *string         `db:"pdf_key" json:"pdf_key,omitempty"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}
