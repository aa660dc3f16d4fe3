package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"hallbook/internal/domain"
	"hallbook/internal/export"
	"hallbook/internal/invoice"
	"hallbook/internal/port"
	"hallbook/internal/quote"
)

const (
	pendingPrefix = "PENDING: "
	privateTitle  = "Private Event"

	notifyTimeout = 30 * time.Second
)

// SubmitResult is the outcome of a booking submission.
type SubmitResult struct {
	Booking *domain.Booking `json:"booking"`
	Quote   *domain.Quote   `json:"quote"`
}

// BookingService defines the booking intake and administration contract.
type BookingService interface {
	// PreviewQuote prices a prospective booking without persisting anything.
	PreviewQuote(ctx context.Context, req *domain.BookingRequest, sel domain.SelectionSet) (*domain.Quote, error)
	// Submit quotes the booking, persists it with its invoice, and notifies
	// the requester and the administrator.
	Submit(ctx context.Context, req *domain.BookingRequest, sel domain.SelectionSet) (*SubmitResult, error)
	List(ctx context.Context, status domain.BookingStatus, offset, limit int) ([]domain.Booking, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	// UpdateQuote re-prices an existing booking with an admin-revised
	// selection set, through the same rule engine as intake.
	UpdateQuote(ctx context.Context, id uuid.UUID, sel domain.SelectionSet) (*domain.Booking, error)
	// InvoicePDFURL returns a short-lived download link for the booking's
	// archived invoice PDF.
	InvoicePDFURL(ctx context.Context, id uuid.UUID) (string, error)
	ExportXLSX(ctx context.Context) ([]byte, error)
}

type bookingService struct {
	bookings      port.BookingRepository
	invoices      port.InvoiceRepository
	tariffs       port.TariffStore
	mailer        port.EmailSender
	storage       port.ObjectStorage // nil disables PDF archiving
	bucket        string
	presignExpiry int64
	venueName     string
	currency      string
}

// NewBookingService creates a new BookingService implementation. storage may
// be nil when no archive bucket is configured.
func NewBookingService(
	bookings port.BookingRepository,
	invoices port.InvoiceRepository,
	tariffs port.TariffStore,
	mailer port.EmailSender,
	storage port.ObjectStorage,
	bucket string,
	presignExpiry int64,
	venueName, currency string,
) BookingService {
	return &bookingService{
		bookings:      bookings,
		invoices:      invoices,
		tariffs:       tariffs,
		mailer:        mailer,
		storage:       storage,
		bucket:        bucket,
		presignExpiry: presignExpiry,
		venueName:     venueName,
		currency:      currency,
	}
}

// loadTable fetches the tariff snapshot. A missing or empty table degrades to
// an empty one so quoting proceeds with zero prices; the flag tells callers to
// raise an administrator alert.
func (s *bookingService) loadTable(ctx context.Context) (table *domain.TariffTable, misconfigured bool, err error) {
	table, err = s.tariffs.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrTariffNotConfigured) {
			return &domain.TariffTable{}, true, nil
		}
		return nil, false, fmt.Errorf("bookingService.loadTable: %w", err)
	}
	if table.Empty() {
		return table, true, nil
	}
	return table, false, nil
}

func (s *bookingService) PreviewQuote(ctx context.Context, req *domain.BookingRequest, sel domain.SelectionSet) (*domain.Quote, error) {
	table, _, err := s.loadTable(ctx)
	if err != nil {
		return nil, err
	}
	return quote.Build(req, sel, table)
}

func (s *bookingService) Submit(ctx context.Context, req *domain.BookingRequest, sel domain.SelectionSet) (*SubmitResult, error) {
	table, misconfigured, err := s.loadTable(ctx)
	if err != nil {
		return nil, err
	}

	q, err := quote.Build(req, sel, table)
	if err != nil {
		return nil, err
	}

	booking, err := newBooking(req, q, s.venueName)
	if err != nil {
		return nil, err
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("bookingService.Submit: %w", err)
	}

	inv := &domain.Invoice{
		BookingID: booking.ID,
		Contact:   booking.ContactPerson,
		Email:     booking.Email,
		Items:     booking.QuoteItems,
		Total:     q.Total,
		Status:    domain.InvoicePending,
	}
	if err := s.invoices.Create(ctx, inv); err != nil {
		// The booking is already committed; a missing invoice row is
		// recoverable from the booking's own quote snapshot.
		log.Printf("failed to create invoice for booking %s: %v", booking.ID, err)
	} else {
		s.archiveInvoicePDF(ctx, booking, q, inv)
	}

	s.notifyAsync(booking, q, misconfigured)

	return &SubmitResult{Booking: booking, Quote: q}, nil
}

func newBooking(req *domain.BookingRequest, q *domain.Quote, venueName string) (*domain.Booking, error) {
	items, err := json.Marshal(q.Items)
	if err != nil {
		return nil, fmt.Errorf("marshaling quote items: %w", err)
	}

	isPrivate := req.Privacy == domain.PrivacyPrivate

	displayTitle := req.EventTitle
	publicDescription := req.EventDescription
	if isPrivate {
		displayTitle = privateTitle
		publicDescription = fmt.Sprintf("Private event at %s", venueName)
	}

	return &domain.Booking{
		Status:            domain.BookingPendingPayment,
		DisplayTitle:      pendingPrefix + displayTitle,
		EventTitle:        req.EventTitle,
		EventDescription:  req.EventDescription,
		PublicDescription: publicDescription,
		IsPrivate:         isPrivate,
		ContactPerson:     req.ContactPerson,
		Organization:      req.Organization,
		Email:             req.Email,
		Phone:             req.Phone,
		Space:             req.Space,
		EventStartDate:    req.EventStartDate,
		EventEndDate:      req.EventEndDate,
		TimeSelection:     req.TimeSelection,
		CustomStart:       req.CustomStart,
		CustomEnd:         req.CustomEnd,
		GuestCount:        req.GuestCount,
		SetupRequirements: strings.Join(req.Setup, ", "),
		OtherSetup:        req.OtherSetup,
		Catering:          req.Catering,
		QuoteItems:        items,
		QuoteTotal:        q.Total,
	}, nil
}

// archiveInvoicePDF renders the invoice PDF and uploads it to the archive
// bucket. Best effort: failures leave the invoice without a pdf key.
func (s *bookingService) archiveInvoicePDF(ctx context.Context, booking *domain.Booking, q *domain.Quote, inv *domain.Invoice) {
	if s.storage == nil || s.bucket == "" {
		return
	}

	pdf, err := invoice.RenderPDF(booking, q, s.venueName, s.currency)
	if err != nil {
		log.Printf("rendering invoice PDF for booking %s: %v", booking.ID, err)
		return
	}

	key := fmt.Sprintf("invoices/%s/%s.pdf", booking.EventStartDate, inv.ID)
	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.bucket,
		Key:         key,
		Body:        bytes.NewReader(pdf),
		ContentType: "application/pdf",
		Size:        int64(len(pdf)),
	})
	if err != nil {
		log.Printf("archiving invoice PDF for booking %s: %v", booking.ID, err)
		return
	}

	inv.PDFKey = &key
	if err := s.invoices.Update(ctx, inv); err != nil {
		log.Printf("recording invoice pdf key for booking %s: %v", booking.ID, err)
	}
}

// notifyAsync sends the requester and administrator emails without blocking
// the request. Failures are logged, never surfaced.
func (s *bookingService) notifyAsync(booking *domain.Booking, q *domain.Quote, misconfigured bool) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := s.mailer.SendBookingReceived(ctx, booking, q); err != nil {
			log.Printf("booking confirmation email for %s failed: %v", booking.ID, err)
		}
		if err := s.mailer.SendAdminBookingAlert(ctx, booking, q); err != nil {
			log.Printf("admin booking alert for %s failed: %v", booking.ID, err)
		}
		if misconfigured {
			s.alertTariffMisconfigured(ctx, booking.ID)
		}
	}()
}

// alertTariffMisconfigured tells the administrator that a booking was priced
// against a missing or empty tariff table. Failures are logged only.
func (s *bookingService) alertTariffMisconfigured(ctx context.Context, bookingID uuid.UUID) {
	detail := fmt.Sprintf(
		"Booking %s was quoted with zero prices because the tariff table is missing or empty. "+
			"Configure the tariffs and re-quote the booking.", bookingID)
	if err := s.mailer.SendAdminConfigAlert(ctx, "tariff table not configured", detail); err != nil {
		log.Printf("admin config alert for %s failed: %v", bookingID, err)
	}
}

func (s *bookingService) List(ctx context.Context, status domain.BookingStatus, offset, limit int) ([]domain.Booking, int, error) {
	return s.bookings.List(ctx, status, offset, limit)
}

func (s *bookingService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func (s *bookingService) UpdateQuote(ctx context.Context, id uuid.UUID, sel domain.SelectionSet) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	table, misconfigured, err := s.loadTable(ctx)
	if err != nil {
		return nil, err
	}
	if misconfigured {
		// A re-quote against an unconfigured table prices at zero, same as
		// intake; the administrator gets the same alert.
		go func() {
			alertCtx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
			defer cancel()
			s.alertTariffMisconfigured(alertCtx, id)
		}()
	}

	req := requestFromBooking(booking)
	q, err := quote.Build(req, sel, table)
	if err != nil {
		return nil, err
	}

	items, err := json.Marshal(q.Items)
	if err != nil {
		return nil, fmt.Errorf("bookingService.UpdateQuote: %w", err)
	}
	booking.QuoteItems = items
	booking.QuoteTotal = q.Total

	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, err
	}

	inv, err := s.invoices.GetByBookingID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return booking, nil
	}
	inv.Items = items
	inv.Total = q.Total
	if err := s.invoices.Update(ctx, inv); err != nil {
		log.Printf("updating invoice for booking %s: %v", id, err)
	}
	return booking, nil
}

// requestFromBooking reconstructs the intake request so a re-quote runs
// through the same engine as the original submission.
func requestFromBooking(b *domain.Booking) *domain.BookingRequest {
	return &domain.BookingRequest{
		ContactPerson:    b.ContactPerson,
		Organization:     b.Organization,
		Email:            b.Email,
		Phone:            b.Phone,
		Space:            b.Space,
		EventStartDate:   b.EventStartDate,
		EventEndDate:     b.EventEndDate,
		TimeSelection:    b.TimeSelection,
		CustomStart:      b.CustomStart,
		CustomEnd:        b.CustomEnd,
		GuestCount:       b.GuestCount,
		EventTitle:       b.EventTitle,
		EventDescription: b.EventDescription,
	}
}

func (s *bookingService) InvoicePDFURL(ctx context.Context, id uuid.UUID) (string, error) {
	if s.storage == nil || s.bucket == "" {
		return "", domain.ErrNotFound
	}
	inv, err := s.invoices.GetByBookingID(ctx, id)
	if err != nil {
		return "", err
	}
	if inv.PDFKey == nil {
		return "", domain.ErrNotFound
	}
	url, err := s.storage.GetPresignedURL(ctx, s.bucket, *inv.PDFKey, s.presignExpiry)
	if err != nil {
		return "", fmt.Errorf("bookingService.InvoicePDFURL: %w", err)
	}
	return url, nil
}

const exportPageSize = 500

func (s *bookingService) ExportXLSX(ctx context.Context) ([]byte, error) {
	var all []domain.Booking
	offset := 0
	for {
		page, total, err := s.bookings.List(ctx, "", offset, exportPageSize)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		offset += len(page)
		if offset >= total || len(page) == 0 {
			break
		}
	}
	return export.BookingsXLSX(all)
}
