package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hallbook/internal/domain"
)

// MockTariffStore is a mock implementation of port.TariffStore.
type MockTariffStore struct {
	mock.Mock
}

func (m *MockTariffStore) Get(ctx context.Context) (*domain.TariffTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TariffTable), args.Error(1)
}

func (m *MockTariffStore) Replace(ctx context.Context, table *domain.TariffTable) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}
