package dto

import (
	"github.com/SscSPs/plot_receivables/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerEntryResponse represents one ledger line
type LedgerEntryResponse struct {
	TransactionID int64           `json:"transactionID"`
	Date          string          `json:"date"`
	Description   string          `json:"description"`
	Reference     string          `json:"reference"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Balance       decimal.Decimal `json:"balance"`
	AgingDays     int             `json:"agingDays"`
}

// LedgerSummaryResponse represents the totals of a ledger
type LedgerSummaryResponse struct {
	RunningBalance    decimal.Decimal `json:"runningBalance"`
	OutstandingAmount decimal.Decimal `json:"outstandingAmount"`
	TotalDebit        decimal.Decimal `json:"totalDebit"`
	TotalCredit       decimal.Decimal `json:"totalCredit"`
}

// CustomerLedgerResponse represents a party's full ledger
type CustomerLedgerResponse struct {
	Party   PartyResponse         `json:"party"`
	AsOf    string                `json:"asOf"`
	Entries []LedgerEntryResponse `json:"entries"`
	Summary LedgerSummaryResponse `json:"summary"`
}

// ToCustomerLedgerResponse converts a domain ledger to a DTO response
func ToCustomerLedgerResponse(l *domain.CustomerLedger) CustomerLedgerResponse {
	response := CustomerLedgerResponse{
		Party:   ToPartyResponse(l.Party),
		AsOf:    l.AsOf.Format(DateLayout),
		Entries: make([]LedgerEntryResponse, len(l.Entries)),
		Summary: LedgerSummaryResponse{
			RunningBalance:    l.Summary.RunningBalance,
			OutstandingAmount: l.Summary.OutstandingAmount,
			TotalDebit:        l.Summary.TotalDebit,
			TotalCredit:       l.Summary.TotalCredit,
		},
	}
	for i, e := range l.Entries {
		response.Entries[i] = LedgerEntryResponse{
			TransactionID: e.TransactionID,
			Date:          e.Date.Format(DateLayout),
			Description:   e.Description,
			Reference:     e.Reference,
			Debit:         e.Debit,
			Credit:        e.Credit,
			Balance:       e.Balance,
			AgingDays:     e.AgingDays,
		}
	}
	return response
}
