package port

import (
	"context"

	"github.com/google/uuid"

	"hallbook/internal/domain"
)

// BookingRepository defines the contract for booking persistence.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	List(ctx context.Context, status domain.BookingStatus, offset, limit int) ([]domain.Booking, int, error)
	Update(ctx context.Context, booking *domain.Booking) error
}

// InvoiceRepository defines the contract for invoice persistence.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*domain.Invoice, error)
	Update(ctx context.Context, invoice *domain.Invoice) error
}

// TariffStore defines the contract for tariff table persistence. The table is
// stored as one snapshot; Replace swaps the whole snapshot atomically.
type TariffStore interface {
	Get(ctx context.Context) (*domain.TariffTable, error)
	Replace(ctx context.Context, table *domain.TariffTable) error
}
