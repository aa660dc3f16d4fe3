package noop

import (
	"context"
	"log"

	"hallbook/internal/domain"
	"hallbook/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs instead of sending.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendBookingReceived(_ context.Context, booking *domain.Booking, quote *domain.Quote) error {
	log.Printf("[NOOP EMAIL] Booking received confirmation for %s (%s), total %.2f",
		booking.ContactPerson, booking.Email, quote.Total)
	return nil
}

func (s *noopSender) SendAdminBookingAlert(_ context.Context, booking *domain.Booking, quote *domain.Quote) error {
	log.Printf("[NOOP EMAIL] Admin alert for booking %s by %s, total %.2f",
		booking.ID, booking.ContactPerson, quote.Total)
	return nil
}

func (s *noopSender) SendAdminConfigAlert(_ context.Context, subject, detail string) error {
	log.Printf("[NOOP EMAIL] Admin config alert: %s: %s", subject, detail)
	return nil
}
