package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hallbook/internal/domain"
	"hallbook/internal/service"
)

// SelectionInput is one tariff line selection on the booking form.
type SelectionInput struct {
	Category string `json:"category" binding:"required"`
	Label    string `json:"label" binding:"required"`
	Checked  bool   `json:"checked"`
	Quantity int    `json:"quantity"`
}

// QuoteRequest is the payload for quote previews and booking submissions.
type QuoteRequest struct {
	domain.BookingRequest
	Selections []SelectionInput `json:"selections"`
}

// RecordSavedInput is the content-system callback payload for a saved record.
type RecordSavedInput struct {
	BookingID    uuid.UUID `json:"booking_id" binding:"required"`
	RecordStatus string    `json:"record_status" binding:"required"`
}

func toSelectionSet(selections []SelectionInput) domain.SelectionSet {
	sel := make(domain.SelectionSet, len(selections))
	for _, s := range selections {
		sel[domain.ItemKey{Category: s.Category, Label: s.Label}] = domain.Selection{
			Checked:  s.Checked,
			Quantity: s.Quantity,
		}
	}
	return sel
}

// BookingHandler handles booking intake and administration endpoints.
type BookingHandler struct {
	bookingService  service.BookingService
	approvalService service.ApprovalService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookingService service.BookingService, approvalService service.ApprovalService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService, approvalService: approvalService}
}

// PreviewQuote handles POST /api/v1/quote
// @Summary Preview a booking quote
// @Description Compute an itemized quote for a prospective booking without creating anything
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body QuoteRequest true "Booking details and selections"
// @Success 200 {object} APIResponse{data=domain.Quote} "Itemized quote"
// @Failure 400 {object} APIResponse "Validation error"
// @Router /quote [post]
func (h *BookingHandler) PreviewQuote(c *gin.Context) {
	var input QuoteRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	q, err := h.bookingService.PreviewQuote(c.Request.Context(), &input.BookingRequest, toSelectionSet(input.Selections))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, q)
}

// Submit handles POST /api/v1/bookings
// @Summary Submit a booking request
// @Description Quote the booking, create the pending booking and invoice records, and notify by email
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body QuoteRequest true "Booking details and selections"
// @Success 201 {object} APIResponse{data=service.SubmitResult} "Created booking with quote"
// @Failure 400 {object} APIResponse "Validation error"
// @Router /bookings [post]
func (h *BookingHandler) Submit(c *gin.Context) {
	var input QuoteRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.bookingService.Submit(c.Request.Context(), &input.BookingRequest, toSelectionSet(input.Selections))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, result)
}

// RecordSaved handles POST /api/v1/events/record-saved
// @Summary Record-saved callback
// @Description Content-system trigger; a published save approves a pending booking, anything else is a no-op
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body RecordSavedInput true "Saved record reference"
// @Success 200 {object} APIResponse{data=domain.Booking} "Booking after processing"
// @Failure 404 {object} APIResponse "Unknown booking"
// @Router /events/record-saved [post]
func (h *BookingHandler) RecordSaved(c *gin.Context) {
	var input RecordSavedInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	booking, transitioned, err := h.approvalService.HandleRecordSaved(c.Request.Context(), input.BookingID, input.RecordStatus)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"booking": booking, "transitioned": transitioned})
}

// List handles GET /api/v1/admin/bookings
// @Summary List bookings
// @Description Paginated booking list, optionally filtered by status (admin only)
// @Tags bookings
// @Produce json
// @Param status query string false "Filter by status (pending_payment, approved)"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} APIResponse{data=[]domain.Booking,meta=PagMeta} "List of bookings"
// @Security BearerAuth
// @Router /admin/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	status := domain.BookingStatus(c.Query("status"))

	bookings, total, err := h.bookingService.List(c.Request.Context(), status, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, bookings, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/admin/bookings/:id
// @Summary Get a booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} APIResponse{data=domain.Booking} "Booking"
// @Failure 404 {object} APIResponse "Not found"
// @Security BearerAuth
// @Router /admin/bookings/{id} [get]
func (h *BookingHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid booking id")
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, booking)
}

// Approve handles POST /api/v1/admin/bookings/:id/approve
// @Summary Approve a booking
// @Description Publishes the booking record and runs the approval transition (admin only)
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} APIResponse{data=domain.Booking} "Approved booking"
// @Failure 404 {object} APIResponse "Not found"
// @Security BearerAuth
// @Router /admin/bookings/{id}/approve [post]
func (h *BookingHandler) Approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid booking id")
		return
	}

	booking, err := h.approvalService.Approve(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, booking)
}

// UpdateQuoteInput is the payload for an admin re-quote.
type UpdateQuoteInput struct {
	Selections []SelectionInput `json:"selections" binding:"required"`
}

// UpdateQuote handles PUT /api/v1/admin/bookings/:id/quote
// @Summary Re-quote a booking
// @Description Replace the booking's selections and recompute its quote through the same engine (admin only)
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body UpdateQuoteInput true "Revised selections"
// @Success 200 {object} APIResponse{data=domain.Booking} "Re-quoted booking"
// @Failure 400 {object} APIResponse "Validation error"
// @Failure 404 {object} APIResponse "Not found"
// @Security BearerAuth
// @Router /admin/bookings/{id}/quote [put]
func (h *BookingHandler) UpdateQuote(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid booking id")
		return
	}

	var input UpdateQuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	booking, err := h.bookingService.UpdateQuote(c.Request.Context(), id, toSelectionSet(input.Selections))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, booking)
}

// InvoicePDFURL handles GET /api/v1/admin/bookings/:id/invoice-url
// @Summary Get an invoice download link
// @Description Return a short-lived presigned URL for the booking's archived invoice PDF (admin only)
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} APIResponse "Presigned URL"
// @Failure 404 {object} APIResponse "No archived invoice PDF"
// @Security BearerAuth
// @Router /admin/bookings/{id}/invoice-url [get]
func (h *BookingHandler) InvoicePDFURL(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid booking id")
		return
	}

	url, err := h.bookingService.InvoicePDFURL(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"url": url})
}

// Export handles GET /api/v1/admin/bookings/export
// @Summary Export the bookings ledger
// @Description Download all bookings as an XLSX workbook (admin only)
// @Tags bookings
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary "XLSX workbook"
// @Security BearerAuth
// @Router /admin/bookings/export [get]
func (h *BookingHandler) Export(c *gin.Context) {
	data, err := h.bookingService.ExportXLSX(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="bookings.xlsx"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
