package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"hallbook/internal/domain"
	"hallbook/internal/port"
)

type bookingRepo struct {
	db *sqlx.DB
}

// NewBookingRepo creates a new PostgreSQL-backed BookingRepository.
func NewBookingRepo(db *sqlx.DB) port.BookingRepository {
	return &bookingRepo{db: db}
}

func (r *bookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	booking.ID = uuid.New()
	now := time.Now().UTC()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	query := `INSERT INTO bookings (
			id, status, display_title, event_title, event_description,
			public_description, is_private, contact_person, organization, email,
			phone, space, event_start_date, event_end_date, time_selection,
			custom_start, custom_end, guest_count, setup_requirements,
			other_setup, catering, quote_items, quote_total, created_at, updated_at
		) VALUES (
			:id, :status, :display_title, :event_title, :event_description,
			:public_description, :is_private, :contact_person, :organization, :email,
			:phone, :space, :event_start_date, :event_end_date, :time_selection,
			:custom_start, :custom_end, :guest_count, :setup_requirements,
			:other_setup, :catering, :quote_items, :quote_total, :created_at, :updated_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, booking); err != nil {
		return fmt.Errorf("bookingRepo.Create: %w", err)
	}
	return nil
}

func (r *bookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	var booking domain.Booking
	err := r.db.GetContext(ctx, &booking, "SELECT * FROM bookings WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("bookingRepo.GetByID: %w", err)
	}
	return &booking, nil
}

func (r *bookingRepo) List(ctx context.Context, status domain.BookingStatus, offset, limit int) ([]domain.Booking, int, error) {
	where := ""
	args := []any{}
	if status != "" {
		where = "WHERE status = $1"
		args = append(args, status)
	}

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM bookings "+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("bookingRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM bookings %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var bookings []domain.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, 0, fmt.Errorf("bookingRepo.List: %w", err)
	}
	return bookings, total, nil
}

func (r *bookingRepo) Update(ctx context.Context, booking *domain.Booking) error {
	booking.UpdatedAt = time.Now().UTC()

	query := `UPDATE bookings SET
			status = :status, display_title = :display_title,
			event_title = :event_title, event_description = :event_description,
			public_description = :public_description, is_private = :is_private,
			contact_person = :contact_person, organization = :organization,
			email = :email, phone = :phone, space = :space,
			event_start_date = :event_start_date, event_end_date = :event_end_date,
			time_selection = :time_selection, custom_start = :custom_start,
			custom_end = :custom_end, guest_count = :guest_count,
			setup_requirements = :setup_requirements, other_setup = :other_setup,
			catering = :catering, quote_items = :quote_items,
			quote_total = :quote_total, updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, booking)
	if err != nil {
		return fmt.Errorf("bookingRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
