package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"hallbook/internal/domain"
	"hallbook/internal/port"
)

// ApprovalService drives the booking approval state machine. The only
// transition is pending_payment to approved; everything else is a no-op, so
// repeated record saves and double approvals are harmless.
type ApprovalService interface {
	// HandleRecordSaved reacts to a content-system save event. Returns the
	// booking and whether this save caused the approval transition.
	HandleRecordSaved(ctx context.Context, id uuid.UUID, recordStatus string) (*domain.Booking, bool, error)
	// Approve publishes a booking directly from the admin dashboard.
	Approve(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
}

type approvalService struct {
	bookings  port.BookingRepository
	venueName string
}

// NewApprovalService creates a new ApprovalService implementation.
func NewApprovalService(bookings port.BookingRepository, venueName string) ApprovalService {
	return &approvalService{bookings: bookings, venueName: venueName}
}

func (s *approvalService) HandleRecordSaved(ctx context.Context, id uuid.UUID, recordStatus string) (*domain.Booking, bool, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if recordStatus != domain.RecordStatusPublished {
		return booking, false, nil
	}
	if booking.Status != domain.BookingPendingPayment {
		return booking, false, nil
	}
	if err := s.approve(ctx, booking); err != nil {
		return nil, false, err
	}
	return booking, true, nil
}

func (s *approvalService) Approve(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingPendingPayment {
		return booking, nil
	}
	if err := s.approve(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// approve applies the single state transition: drop the pending prefix by
// restoring the public title and description with privacy fallbacks, and mark
// the booking approved.
func (s *approvalService) approve(ctx context.Context, booking *domain.Booking) error {
	booking.Status = domain.BookingApproved

	if booking.IsPrivate {
		booking.DisplayTitle = privateTitle
		booking.PublicDescription = fmt.Sprintf("Private event at %s", s.venueName)
	} else {
		booking.DisplayTitle = booking.EventTitle
		booking.PublicDescription = booking.EventDescription
	}

	if err := s.bookings.Update(ctx, booking); err != nil {
		return fmt.Errorf("approvalService.approve: %w", err)
	}
	return nil
}
