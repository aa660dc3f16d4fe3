package router

import (
	"github.com/gin-gonic/gin"

	"hallbook/internal/config"
	"hallbook/internal/domain"
	"hallbook/internal/handler"
	"hallbook/internal/middleware"
	"hallbook/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	bookingH *handler.BookingHandler,
	tariffH *handler.TariffHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public intake routes
	v1.POST("/quote", bookingH.PreviewQuote)
	v1.POST("/bookings", bookingH.Submit)
	v1.POST("/events/record-saved", bookingH.RecordSaved)

	// Public auth routes
	v1.POST("/auth/login", authH.Login)

	// Admin routes
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authSvc))
	admin.Use(middleware.RequireRole(domain.RoleAdmin))
	admin.GET("/tariffs", tariffH.Get)
	admin.PUT("/tariffs", tariffH.Replace)
	admin.GET("/bookings", bookingH.List)
	admin.GET("/bookings/export", bookingH.Export)
	admin.GET("/bookings/:id", bookingH.GetByID)
	admin.GET("/bookings/:id/invoice-url", bookingH.InvoicePDFURL)
	admin.POST("/bookings/:id/approve", bookingH.Approve)
	admin.PUT("/bookings/:id/quote", bookingH.UpdateQuote)

	return r
}
