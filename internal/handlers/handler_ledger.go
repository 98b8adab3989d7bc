package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/plot_receivables/internal/core/ports/services"
	"github.com/SscSPs/plot_receivables/internal/dto"
	"github.com/SscSPs/plot_receivables/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests for party ledgers
type ledgerHandler struct {
	ledgerService portssvc.LedgerService
}

// RegisterLedgerRoutes registers the party ledger route
func RegisterLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerService) {
	h := &ledgerHandler{ledgerService: ledgerService}
	rg.GET("/parties/:party_id/ledger", h.getCustomerLedger)
}

// getCustomerLedger godoc
// @Summary Get a party's ledger
// @Description Returns every transaction of the party with running balance, aging days and totals
// @Tags ledger
// @Produce json
// @Param party_id path int true "Party ID"
// @Success 200 {object} dto.CustomerLedgerResponse
// @Failure 400 {object} map[string]string "Invalid party ID"
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 500 {object} map[string]string "Failed to build ledger"
// @Router /parties/{party_id}/ledger [get]
func (h *ledgerHandler) getCustomerLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var uri dto.PartyURI
	if err := c.ShouldBindUri(&uri); err != nil {
		logger.Warn("Invalid party ID in path", slog.String("party_id", c.Param("party_id")), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid party ID"})
		return
	}

	logger = logger.With(slog.Int64("party_id", uri.PartyID))
	logger.Info("Received request for customer ledger")

	ledger, err := h.ledgerService.GetCustomerLedger(c.Request.Context(), uri.PartyID)
	if err != nil {
		respondError(c, logger, err, "Failed to build ledger")
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerLedgerResponse(ledger))
}
