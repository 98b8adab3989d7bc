package dto

import (
	"time"

	"github.com/SscSPs/plot_receivables/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of every date in requests and responses.
const DateLayout = "2006-01-02"

// PartyURI binds the party id path parameter.
type PartyURI struct {
	PartyID int64 `uri:"party_id" binding:"required,gt=0"`
}

// AgingReportQuery binds the receivables aging query string.
type AgingReportQuery struct {
	AsOf    string `form:"asOf" binding:"omitempty,datetime=2006-01-02"`
	PartyID *int64 `form:"partyId" binding:"omitempty,gt=0"`
}

// StatementQuery binds the customer statement query string.
// Period is one of the presets 30, 60 or 90 and counts back from ToDate (default today).
type StatementQuery struct {
	FromDate string `form:"fromDate" binding:"omitempty,datetime=2006-01-02"`
	ToDate   string `form:"toDate" binding:"omitempty,datetime=2006-01-02"`
	Period   string `form:"period" binding:"omitempty,statement_period,excluded_with=FromDate"`
}

// PartyResponse represents a party in report responses
type PartyResponse struct {
	PartyID int64  `json:"partyID"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

// AgingRowResponse represents a row in the receivables aging report response
type AgingRowResponse struct {
	PartyID           int64           `json:"partyID"`
	PartyName         string          `json:"partyName"`
	Current           decimal.Decimal `json:"current"`
	Days31To60        decimal.Decimal `json:"days31To60"`
	Days61To90        decimal.Decimal `json:"days61To90"`
	Over90            decimal.Decimal `json:"over90"`
	TotalOutstanding  decimal.Decimal `json:"totalOutstanding"`
	OldestInvoiceDate string          `json:"oldestInvoiceDate"`
}

// AgingReportResponse represents the receivables aging report response
type AgingReportResponse struct {
	AsOf    string             `json:"asOf"`
	PartyID *int64             `json:"partyID,omitempty"`
	Rows    []AgingRowResponse `json:"rows"`
	Totals  struct {
		Current          decimal.Decimal `json:"current"`
		Days31To60       decimal.Decimal `json:"days31To60"`
		Days61To90       decimal.Decimal `json:"days61To90"`
		Over90           decimal.Decimal `json:"over90"`
		TotalOutstanding decimal.Decimal `json:"totalOutstanding"`
	} `json:"totals"`
}

// StatementLineResponse represents one line of a customer statement response
type StatementLineResponse struct {
	TransactionID int64           `json:"transactionID"`
	Date          string          `json:"date"`
	Description   string          `json:"description"`
	Reference     string          `json:"reference"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Balance       decimal.Decimal `json:"balance"`
}

// StatementResponse represents the customer statement response
type StatementResponse struct {
	Party          PartyResponse           `json:"party"`
	FromDate       string                  `json:"fromDate"`
	ToDate         string                  `json:"toDate"`
	OpeningBalance decimal.Decimal         `json:"openingBalance"`
	Lines          []StatementLineResponse `json:"lines"`
	Summary        struct {
		TotalDebit     decimal.Decimal `json:"totalDebit"`
		TotalCredit    decimal.Decimal `json:"totalCredit"`
		ClosingBalance decimal.Decimal `json:"closingBalance"`
		Outstanding    decimal.Decimal `json:"outstanding"`
	} `json:"summary"`
}

// ToPartyResponse converts a domain party to a DTO response
func ToPartyResponse(p domain.Party) PartyResponse {
	return PartyResponse{
		PartyID: p.PartyID,
		Name:    p.Name,
		Type:    string(p.Type),
		Address: p.Address,
		Phone:   p.Phone,
		Email:   p.Email,
	}
}

// ToAgingReportResponse converts a domain aging report to a DTO response
func ToAgingReportResponse(report *domain.AgingReport) AgingReportResponse {
	response := AgingReportResponse{
		AsOf:    report.AsOf.Format(DateLayout),
		PartyID: report.PartyFilter,
		Rows:    make([]AgingRowResponse, len(report.Rows)),
	}

	for i, row := range report.Rows {
		response.Rows[i] = AgingRowResponse{
			PartyID:           row.PartyID,
			PartyName:         row.PartyName,
			Current:           row.Current,
			Days31To60:        row.Days31To60,
			Days61To90:        row.Days61To90,
			Over90:            row.Over90,
			TotalOutstanding:  row.TotalOutstanding,
			OldestInvoiceDate: row.OldestInvoiceDate.Format(DateLayout),
		}
	}

	response.Totals.Current = report.Totals.Current
	response.Totals.Days31To60 = report.Totals.Days31To60
	response.Totals.Days61To90 = report.Totals.Days61To90
	response.Totals.Over90 = report.Totals.Over90
	response.Totals.TotalOutstanding = report.Totals.TotalOutstanding

	return response
}

// ToStatementResponse converts a domain statement to a DTO response
func ToStatementResponse(stmt *domain.Statement) StatementResponse {
	response := StatementResponse{
		Party:          ToPartyResponse(stmt.Party),
		FromDate:       stmt.FromDate.Format(DateLayout),
		ToDate:         stmt.ToDate.Format(DateLayout),
		OpeningBalance: stmt.OpeningBalance,
		Lines:          make([]StatementLineResponse, len(stmt.Lines)),
	}

	for i, line := range stmt.Lines {
		response.Lines[i] = StatementLineResponse{
			TransactionID: line.TransactionID,
			Date:          line.Date.Format(DateLayout),
			Description:   line.Description,
			Reference:     line.Reference,
			Debit:         line.Debit,
			Credit:        line.Credit,
			Balance:       line.Balance,
		}
	}

	response.Summary.TotalDebit = stmt.TotalDebit
	response.Summary.TotalCredit = stmt.TotalCredit
	response.Summary.ClosingBalance = stmt.ClosingBalance
	response.Summary.Outstanding = stmt.Outstanding

	return response
}

// parseDateOr parses s, or returns fallback when s is empty.
func parseDateOr(s string, fallback time.Time) (time.Time, error) {
	if s == "" {
		return domain.DateOnly(fallback), nil
	}
	return time.Parse(DateLayout, s)
}
