package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hallbook/internal/domain"
	"hallbook/internal/quote"
	"hallbook/internal/service"
	"hallbook/mocks"
)

func serviceTable() *domain.TariffTable {
	return &domain.TariffTable{Categories: []domain.TariffCategory{
		{Name: quote.CategoryHallHire, Items: []domain.TariffItem{
			{Label: quote.LabelDayRate, UnitPrice: 2200},
			{Label: quote.LabelFirstHour, UnitPrice: 220},
			{Label: quote.LabelAfterFirstHour, UnitPrice: 110},
			{Label: "Refundable deposit at time of booking", UnitPrice: 2000},
		}},
		{Name: quote.CategoryKitchen, Items: []domain.TariffItem{
			{Label: "Per event, for serving only", UnitPrice: 300},
		}},
	}}
}

func fullDayRequest() *domain.BookingRequest {
	return &domain.BookingRequest{
		ContactPerson:  "Jo Smith",
		Email:          "jo@example.com",
		Phone:          "0821234567",
		Space:          domain.SpaceMainHall,
		EventStartDate: "2025-06-01",
		EventEndDate:   "2025-06-03",
		TimeSelection:  domain.TimeFullDay,
		GuestCount:     120,
		EventTitle:     "Spring Market",
		Privacy:        domain.PrivacyPublic,
	}
}

type submitFixture struct {
	bookings *mocks.MockBookingRepo
	invoices *mocks.MockInvoiceRepo
	tariffs  *mocks.MockTariffStore
	mailer   *mocks.MockEmailSender
	svc      service.BookingService
	notified chan struct{}
}

func newSubmitFixture(t *testing.T, table *domain.TariffTable) *submitFixture {
	t.Helper()
	f := &submitFixture{
		bookings: new(mocks.MockBookingRepo),
		invoices: new(mocks.MockInvoiceRepo),
		tariffs:  new(mocks.MockTariffStore),
		mailer:   new(mocks.MockEmailSender),
		notified: make(chan struct{}),
	}
	f.tariffs.On("Get", mock.Anything).Return(table, nil)
	f.svc = service.NewBookingService(
		f.bookings, f.invoices, f.tariffs, f.mailer, nil, "", 0, "Sandbaai Hall", "R")
	return f
}

func (f *submitFixture) waitForNotify(t *testing.T) {
	t.Helper()
	select {
	case <-f.notified:
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was never invoked")
	}
}

func TestSubmitCreatesBookingAndInvoice(t *testing.T) {
	f := newSubmitFixture(t, serviceTable())
	f.bookings.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)
	f.invoices.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)
	f.mailer.On("SendBookingReceived", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.mailer.On("SendAdminBookingAlert", mock.Anything, mock.Anything, mock.Anything).Return(nil).
		Run(func(mock.Arguments) { close(f.notified) })

	result, err := f.svc.Submit(context.Background(), fullDayRequest(), nil)
	require.NoError(t, err)

	assert.Equal(t, domain.BookingPendingPayment, result.Booking.Status)
	assert.Equal(t, "PENDING: Spring Market", result.Booking.DisplayTitle)
	// 3 days at 2200 plus the auto-attached deposit.
	assert.Equal(t, 8600.0, result.Quote.Total)
	assert.Equal(t, 8600.0, result.Booking.QuoteTotal)

	var items []domain.QuoteLineItem
	require.NoError(t, json.Unmarshal(result.Booking.QuoteItems, &items))
	assert.Equal(t, result.Quote.Items, items)

	f.waitForNotify(t)
	f.bookings.AssertExpectations(t)
	f.invoices.AssertExpectations(t)
	f.mailer.AssertExpectations(t)
}

func TestSubmitPrivateBookingMasksTitle(t *testing.T) {
	f := newSubmitFixture(t, serviceTable())
	f.bookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.invoices.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.mailer.On("SendBookingReceived", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.mailer.On("SendAdminBookingAlert", mock.Anything, mock.Anything, mock.Anything).Return(nil).
		Run(func(mock.Arguments) { close(f.notified) })

	req := fullDayRequest()
	req.Privacy = domain.PrivacyPrivate
	req.EventDescription = "Surprise 50th"

	result, err := f.svc.Submit(context.Background(), req, nil)
	require.NoError(t, err)

	assert.Equal(t, "PENDING: Private Event", result.Booking.DisplayTitle)
	assert.Equal(t, "Private event at Sandbaai Hall", result.Booking.PublicDescription)
	assert.True(t, result.Booking.IsPrivate)
	// Originals retained for restoration on approval.
	assert.Equal(t, "Spring Market", result.Booking.EventTitle)
	assert.Equal(t, "Surprise 50th", result.Booking.EventDescription)

	f.waitForNotify(t)
}

func TestSubmitValidationErrorCreatesNothing(t *testing.T) {
	f := newSubmitFixture(t, serviceTable())

	req := fullDayRequest()
	req.TimeSelection = domain.TimeCustom // missing custom times

	_, err := f.svc.Submit(context.Background(), req, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	f.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.invoices.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitMissingTariffDegradesAndAlerts(t *testing.T) {
	f := &submitFixture{
		bookings: new(mocks.MockBookingRepo),
		invoices: new(mocks.MockInvoiceRepo),
		tariffs:  new(mocks.MockTariffStore),
		mailer:   new(mocks.MockEmailSender),
		notified: make(chan struct{}),
	}
	f.tariffs.On("Get", mock.Anything).Return(nil, domain.ErrTariffNotConfigured)
	f.svc = service.NewBookingService(
		f.bookings, f.invoices, f.tariffs, f.mailer, nil, "", 0, "Sandbaai Hall", "R")

	f.bookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.invoices.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.mailer.On("SendBookingReceived", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.mailer.On("SendAdminBookingAlert", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.mailer.On("SendAdminConfigAlert", mock.Anything, mock.Anything, mock.Anything).Return(nil).
		Run(func(mock.Arguments) { close(f.notified) })

	result, err := f.svc.Submit(context.Background(), fullDayRequest(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Quote.Total)

	f.waitForNotify(t)
	f.mailer.AssertExpectations(t)
}

func TestSubmitNotifierFailureTolerated(t *testing.T) {
	f := newSubmitFixture(t, serviceTable())
	f.bookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.invoices.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.mailer.On("SendBookingReceived", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("smtp down"))
	f.mailer.On("SendAdminBookingAlert", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("smtp down")).
		Run(func(mock.Arguments) { close(f.notified) })

	result, err := f.svc.Submit(context.Background(), fullDayRequest(), nil)
	require.NoError(t, err)
	require.NotNil(t, result.Booking)

	f.waitForNotify(t)
}

func TestSubmitInvoiceFailureDoesNotFailBooking(t *testing.T) {
	f := newSubmitFixture(t, serviceTable())
	f.bookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.invoices.On("Create", mock.Anything, mock.Anything).Return(errors.New("db error"))
	f.mailer.On("SendBookingReceived", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.mailer.On("SendAdminBookingAlert", mock.Anything, mock.Anything, mock.Anything).Return(nil).
		Run(func(mock.Arguments) { close(f.notified) })

	result, err := f.svc.Submit(context.Background(), fullDayRequest(), nil)
	require.NoError(t, err)
	require.NotNil(t, result.Booking)

	f.waitForNotify(t)
}

func TestPreviewQuoteDoesNotPersist(t *testing.T) {
	f := newSubmitFixture(t, serviceTable())

	q, err := f.svc.PreviewQuote(context.Background(), fullDayRequest(), nil)
	require.NoError(t, err)
	assert.Equal(t, 8600.0, q.Total)

	f.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateQuoteRepricesBookingAndInvoice(t *testing.T) {
	f := newSubmitFixture(t, serviceTable())
	id := uuid.New()

	stored := &domain.Booking{
		ID:             id,
		Status:         domain.BookingPendingPayment,
		ContactPerson:  "Jo Smith",
		Email:          "jo@example.com",
		Space:          domain.SpaceMainHall,
		EventStartDate: "2025-06-01",
		EventEndDate:   "2025-06-01",
		TimeSelection:  domain.TimeFullDay,
	}
	inv := &domain.Invoice{ID: uuid.New(), BookingID: id, Status: domain.InvoicePending}

	f.bookings.On("GetByID", mock.Anything, id).Return(stored, nil)
	f.bookings.On("Update", mock.Anything, stored).Return(nil)
	f.invoices.On("GetByBookingID", mock.Anything, id).Return(inv, nil)
	f.invoices.On("Update", mock.Anything, inv).Return(nil)

	sel := domain.SelectionSet{
		{Category: quote.CategoryKitchen, Label: "Per event, for serving only"}: {Checked: true},
	}
	updated, err := f.svc.UpdateQuote(context.Background(), id, sel)
	require.NoError(t, err)

	// 1 day at 2200 + deposit 2000 + kitchen serving 300.
	assert.Equal(t, 4500.0, updated.QuoteTotal)
	assert.Equal(t, 4500.0, inv.Total)
	f.bookings.AssertExpectations(t)
	f.invoices.AssertExpectations(t)
}

func TestUpdateQuoteUnknownBooking(t *testing.T) {
	f := newSubmitFixture(t, serviceTable())
	id := uuid.New()
	f.bookings.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

	_, err := f.svc.UpdateQuote(context.Background(), id, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateQuoteMissingTariffAlertsAdmin(t *testing.T) {
	f := &submitFixture{
		bookings: new(mocks.MockBookingRepo),
		invoices: new(mocks.MockInvoiceRepo),
		tariffs:  new(mocks.MockTariffStore),
		mailer:   new(mocks.MockEmailSender),
		notified: make(chan struct{}),
	}
	f.tariffs.On("Get", mock.Anything).Return(nil, domain.ErrTariffNotConfigured)
	f.svc = service.NewBookingService(
		f.bookings, f.invoices, f.tariffs, f.mailer, nil, "", 0, "Sandbaai Hall", "R")

	id := uuid.New()
	stored := &domain.Booking{
		ID:             id,
		Status:         domain.BookingPendingPayment,
		Space:          domain.SpaceMainHall,
		EventStartDate: "2025-06-01",
		EventEndDate:   "2025-06-01",
		TimeSelection:  domain.TimeFullDay,
	}
	f.bookings.On("GetByID", mock.Anything, id).Return(stored, nil)
	f.bookings.On("Update", mock.Anything, stored).Return(nil)
	f.invoices.On("GetByBookingID", mock.Anything, id).Return(nil, domain.ErrNotFound)
	f.mailer.On("SendAdminConfigAlert", mock.Anything, mock.Anything, mock.Anything).Return(nil).
		Run(func(mock.Arguments) { close(f.notified) })

	updated, err := f.svc.UpdateQuote(context.Background(), id, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, updated.QuoteTotal)

	f.waitForNotify(t)
	f.mailer.AssertExpectations(t)
}

func TestInvoicePDFURL(t *testing.T) {
	f := newSubmitFixture(t, serviceTable())
	storage := new(mocks.MockObjectStorage)
	svc := service.NewBookingService(
		f.bookings, f.invoices, f.tariffs, f.mailer, storage,
		"hall-invoices", 900, "Sandbaai Hall", "R")

	id := uuid.New()
	key := "invoices/2025-06-01/abc.pdf"
	f.invoices.On("GetByBookingID", mock.Anything, id).
		Return(&domain.Invoice{ID: uuid.New(), BookingID: id, PDFKey: &key}, nil)
	storage.On("GetPresignedURL", mock.Anything, "hall-invoices", key, int64(900)).
		Return("https://archive.example.com/signed", nil)

	url, err := svc.InvoicePDFURL(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "https://archive.example.com/signed", url)
	storage.AssertExpectations(t)
}

func TestInvoicePDFURLWithoutArchivedPDF(t *testing.T) {
	f := newSubmitFixture(t, serviceTable())
	storage := new(mocks.MockObjectStorage)
	svc := service.NewBookingService(
		f.bookings, f.invoices, f.tariffs, f.mailer, storage,
		"hall-invoices", 900, "Sandbaai Hall", "R")

	id := uuid.New()
	f.invoices.On("GetByBookingID", mock.Anything, id).
		Return(&domain.Invoice{ID: uuid.New(), BookingID: id}, nil)

	_, err := svc.InvoicePDFURL(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	storage.AssertNotCalled(t, "GetPresignedURL",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoicePDFURLArchivingDisabled(t *testing.T) {
	f := newSubmitFixture(t, serviceTable())

	_, err := f.svc.InvoicePDFURL(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	f.invoices.AssertNotCalled(t, "GetByBookingID", mock.Anything, mock.Anything)
}
