package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"hallbook/internal/config"
	"hallbook/internal/email/noop"
	"hallbook/internal/email/ses"
	"hallbook/internal/handler"
	"hallbook/internal/port"
	"hallbook/internal/repository/postgres"
	"hallbook/internal/repository/rediscache"
	"hallbook/internal/router"
	"hallbook/internal/service"
	s3storage "hallbook/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Local development convenience; a missing .env is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	bookingRepo := postgres.NewBookingRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)
	tariffStore := postgres.NewTariffRepo(db)
	if cfg.Redis.Addr != "" {
		tariffStore = rediscache.NewTariffCache(tariffStore, &cfg.Redis)
	}

	// Initialize email delivery
	var mailer port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		mailer, err = ses.NewSESSender(
			cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName,
			cfg.Email.AdminEmail, cfg.Booking.VenueName, cfg.Booking.CurrencySymbol)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		mailer = noop.NewNoopSender()
	}

	// Initialize invoice archive storage
	var storage port.ObjectStorage
	if cfg.S3.Bucket != "" {
		storage, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	// Initialize services
	authSvc := service.NewAuthService(cfg.JWT, cfg.Booking)
	tariffSvc := service.NewTariffService(tariffStore)
	bookingSvc := service.NewBookingService(
		bookingRepo, invoiceRepo, tariffStore, mailer, storage,
		cfg.S3.Bucket, cfg.S3.PresignExpiry,
		cfg.Booking.VenueName, cfg.Booking.CurrencySymbol)
	approvalSvc := service.NewApprovalService(bookingRepo, cfg.Booking.VenueName)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	bookingH := handler.NewBookingHandler(bookingSvc, approvalSvc)
	tariffH := handler.NewTariffHandler(tariffSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, authSvc, authH, bookingH, tariffH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
