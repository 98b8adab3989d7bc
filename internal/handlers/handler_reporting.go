package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/plot_receivables/internal/core/ports/services"
	"github.com/SscSPs/plot_receivables/internal/dto"
	"github.com/SscSPs/plot_receivables/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ReportingRouteOptions tunes the reporting handlers.
type ReportingRouteOptions struct {
	StatementDefaultDays int
	Now                  func() time.Time
}

// reportingHandler handles HTTP requests related to receivables reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
	defaultDays      int
	now              func() time.Time
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService, opts ReportingRouteOptions) *reportingHandler {
	h := &reportingHandler{
		reportingService: rs,
		defaultDays:      opts.StatementDefaultDays,
		now:              opts.Now,
	}
	if h.defaultDays <= 0 {
		h.defaultDays = 30
	}
	if h.now == nil {
		h.now = time.Now
	}
	return h
}

// RegisterReportingRoutes registers routes related to receivables reports
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, opts ReportingRouteOptions) {
	h := newReportingHandler(reportingService, opts)

	rg.GET("/reports/receivables-aging", h.getReceivablesAging)
	rg.GET("/parties/:party_id/statement", h.getCustomerStatement)
}

// getReceivablesAging godoc
// @Summary Generate receivables aging report
// @Description Buckets each party's outstanding balance by age as of a date, with portfolio totals
// @Tags reports
// @Produce json
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Param partyId query int false "Restrict to one party"
// @Success 200 {object} dto.AgingReportResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/receivables-aging [get]
func (h *reportingHandler) getReceivablesAging(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var query dto.AgingReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid aging report query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query. Use asOf=YYYY-MM-DD and a positive partyId"})
		return
	}

	asOfStr := query.AsOf
	if asOfStr == "" {
		asOfStr = h.now().Format(dto.DateLayout)
	}
	asOf, err := time.Parse(dto.DateLayout, asOfStr)
	if err != nil {
		logger.Warn("Invalid asOf date format", slog.String("asOf", asOfStr), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	logger = logger.With(slog.String("asOf", asOfStr))
	if query.PartyID != nil {
		logger = logger.With(slog.Int64("party_id", *query.PartyID))
	}
	logger.Info("Received request to generate receivables aging report")

	report, err := h.reportingService.ReceivablesAging(c.Request.Context(), asOf, query.PartyID)
	if err != nil {
		respondError(c, logger, err, "Failed to generate receivables aging report")
		return
	}

	logger.Info("Receivables aging report generated successfully", slog.Int("row_count", len(report.Rows)))
	c.JSON(http.StatusOK, dto.ToAgingReportResponse(report))
}

// getCustomerStatement godoc
// @Summary Generate customer statement
// @Description Opening balance, transactions and closing balance of a party over a date window
// @Tags reports
// @Produce json
// @Param party_id path int true "Party ID"
// @Param fromDate query string false "Start date (YYYY-MM-DD)" default(30 days before toDate)
// @Param toDate query string false "End date (YYYY-MM-DD)" default(current date)
// @Param period query string false "Preset window ending at toDate" Enums(30, 60, 90)
// @Success 200 {object} dto.StatementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 500 {object} map[string]string "Failed to generate statement"
// @Router /parties/{party_id}/statement [get]
func (h *reportingHandler) getCustomerStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var uri dto.PartyURI
	if err := c.ShouldBindUri(&uri); err != nil {
		logger.Warn("Invalid party ID in path", slog.String("party_id", c.Param("party_id")), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid party ID"})
		return
	}

	var query dto.StatementQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid statement query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query. Use fromDate/toDate as YYYY-MM-DD, or period=30|60|90 without fromDate"})
		return
	}

	from, to, err := query.Window(h.now(), h.defaultDays)
	if err != nil {
		respondError(c, logger, err, "Failed to generate statement")
		return
	}

	logger = logger.With(
		slog.Int64("party_id", uri.PartyID),
		slog.String("fromDate", from.Format(dto.DateLayout)),
		slog.String("toDate", to.Format(dto.DateLayout)),
	)
	logger.Info("Received request to generate customer statement")

	stmt, err := h.reportingService.CustomerStatement(c.Request.Context(), uri.PartyID, from, to)
	if err != nil {
		respondError(c, logger, err, "Failed to generate statement")
		return
	}

	logger.Info("Customer statement generated successfully", slog.Int("line_count", len(stmt.Lines)))
	c.JSON(http.StatusOK, dto.ToStatementResponse(stmt))
}
