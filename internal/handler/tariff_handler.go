package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hallbook/internal/domain"
	"hallbook/internal/service"
)

// TariffHandler handles tariff administration endpoints.
type TariffHandler struct {
	tariffService service.TariffService
}

// NewTariffHandler creates a new TariffHandler.
func NewTariffHandler(tariffService service.TariffService) *TariffHandler {
	return &TariffHandler{tariffService: tariffService}
}

// Get handles GET /api/v1/admin/tariffs
// @Summary Get the tariff table
// @Tags tariffs
// @Produce json
// @Success 200 {object} APIResponse{data=domain.TariffTable} "Current tariff snapshot"
// @Failure 404 {object} APIResponse "No tariff configured"
// @Security BearerAuth
// @Router /admin/tariffs [get]
func (h *TariffHandler) Get(c *gin.Context) {
	table, err := h.tariffService.Get(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, table)
}

// Replace handles PUT /api/v1/admin/tariffs
// @Summary Replace the tariff table
// @Description Swap the whole tariff snapshot; category and item order is the quote render order
// @Tags tariffs
// @Accept json
// @Produce json
// @Param request body domain.TariffTable true "Full tariff table"
// @Success 200 {object} APIResponse{data=domain.TariffTable} "Stored tariff snapshot"
// @Failure 400 {object} APIResponse "Validation error"
// @Security BearerAuth
// @Router /admin/tariffs [put]
func (h *TariffHandler) Replace(c *gin.Context) {
	var table domain.TariffTable
	if err := c.ShouldBindJSON(&table); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.tariffService.Replace(c.Request.Context(), &table); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, table)
}
