package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hallbook/internal/domain"
)

// MockTariffService is a mock implementation of service.TariffService.
type MockTariffService struct {
	mock.Mock
}

func (m *MockTariffService) Get(ctx context.Context) (*domain.TariffTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TariffTable), args.Error(1)
}

func (m *MockTariffService) Replace(ctx context.Context, table *domain.TariffTable) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}
