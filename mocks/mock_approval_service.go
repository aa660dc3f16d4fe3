package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"hallbook/internal/domain"
)

// MockApprovalService is a mock implementation of service.ApprovalService.
type MockApprovalService struct {
	mock.Mock
}

func (m *MockApprovalService) HandleRecordSaved(ctx context.Context, id uuid.UUID, recordStatus string) (*domain.Booking, bool, error) {
	args := m.Called(ctx, id, recordStatus)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Booking), args.Bool(1), args.Error(2)
}

func (m *MockApprovalService) Approve(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
