package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/shop_management_app/internal/core/ports/services"
	"github.com/SscSPs/shop_management_app/internal/dto"
	"github.com/SscSPs/shop_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// RegisterLedgerRoutes registers the stateless ledger computation route.
// Customer statements live under /customers/{customerID}/ledger.
func RegisterLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	registerValidators()
	h := &ledgerHandler{ledgerService: ledgerService}
	rg.POST("/ledger/compute", h.computeLedger)
}

// computeLedger godoc
// @Summary Compute a ledger from posted records
// @Description Runs the ledger engine on the given customer and record lists without touching storage. Numeric fields may be numbers or numeric strings; anything else counts as missing.
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   request body dto.ComputeLedgerRequest true "Customer and records"
// @Success 200 {object} dto.LedgerResponse
// @Failure 400 {object} ErrorResponse "Malformed JSON"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /ledger/compute [post]
func (h *ledgerHandler) computeLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ComputeLedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ComputeLedger", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	result := h.ledgerService.ComputeLedger(c.Request.Context(), req)
	c.JSON(http.StatusOK, dto.ToLedgerResponse(result))
}
