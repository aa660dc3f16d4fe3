package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hallbook/internal/domain"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendBookingReceived(ctx context.Context, booking *domain.Booking, quote *domain.Quote) error {
	args := m.Called(ctx, booking, quote)
	return args.Error(0)
}

func (m *MockEmailSender) SendAdminBookingAlert(ctx context.Context, booking *domain.Booking, quote *domain.Quote) error {
	args := m.Called(ctx, booking, quote)
	return args.Error(0)
}

func (m *MockEmailSender) SendAdminConfigAlert(ctx context.Context, subject, detail string) error {
	args := m.Called(ctx, subject, detail)
	return args.Error(0)
}
