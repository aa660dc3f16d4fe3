package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"hallbook/internal/domain"
	"hallbook/internal/invoice"
	"hallbook/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
	adminEmail  string
	venueName   string
	currency    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName, adminEmail, venueName, currency string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	return &sesSender{
		client:      sesv2.NewFromConfig(cfg),
		fromAddress: fromAddress,
		fromName:    fromName,
		adminEmail:  adminEmail,
		venueName:   venueName,
		currency:    currency,
	}, nil
}

func (s *sesSender) SendBookingReceived(ctx context.Context, booking *domain.Booking, quote *domain.Quote) error {
	subject := fmt.Sprintf("%s Booking Request Received", s.venueName)
	body := fmt.Sprintf(
		"Dear %s,\n\nThank you for your booking request.\n\n"+
			"Booking Summary:\nSpace: %s\nDate: %s to %s\nTime: %s\nGuests: %d\nEvent: %s\n\nQuote:\n%s"+
			"\nWe will review your request and send a formal invoice. "+
			"Your booking is confirmed once payment is received.",
		booking.ContactPerson, booking.Space, booking.EventStartDate, booking.EventEndDate,
		booking.TimeSelection, booking.GuestCount, booking.EventTitle,
		invoice.Summary(quote, s.currency))

	return s.send(ctx, booking.Email, subject, body)
}

func (s *sesSender) SendAdminBookingAlert(ctx context.Context, booking *domain.Booking, quote *domain.Quote) error {
	subject := fmt.Sprintf("New Hall Booking: %s - %s", booking.ContactPerson, booking.Space)
	body := fmt.Sprintf(
		"A new booking request has been received and is awaiting approval.\n\n"+
			"Contact: %s\nEmail: %s\nPhone: %s\nSpace: %s\nDate: %s to %s\nGuests: %d\nEvent: %s\n\nQuote:\n%s"+
			"\nReview and send the invoice via the admin dashboard.",
		booking.ContactPerson, booking.Email, booking.Phone, booking.Space,
		booking.EventStartDate, booking.EventEndDate, booking.GuestCount, booking.EventTitle,
		invoice.Summary(quote, s.currency))

	return s.send(ctx, s.adminEmail, subject, body)
}

func (s *sesSender) SendAdminConfigAlert(ctx context.Context, subject, detail string) error {
	return s.send(ctx, s.adminEmail,
		fmt.Sprintf("%s configuration alert: %s", s.venueName, subject), detail)
}

func (s *sesSender) send(ctx context.Context, to, subject, body string) error {
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Text: &types.Content{Data: &body},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}
