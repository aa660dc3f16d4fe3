package port

import (
	"context"

	"hallbook/internal/domain"
)

// EmailSender defines the contract for sending booking notifications.
type EmailSender interface {
	// SendBookingReceived acknowledges a new booking to the requester with the
	// itemized quote.
	SendBookingReceived(ctx context.Context, booking *domain.Booking, quote *domain.Quote) error
	// SendAdminBookingAlert notifies the venue administrator of a new booking
	// awaiting approval.
	SendAdminBookingAlert(ctx context.Context, booking *domain.Booking, quote *domain.Quote) error
	// SendAdminConfigAlert flags a configuration problem, such as a missing
	// tariff table, to the venue administrator.
	SendAdminConfigAlert(ctx context.Context, subject, detail string) error
}
