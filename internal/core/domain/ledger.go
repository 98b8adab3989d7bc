package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is a transaction projected into a party's running ledger.
type LedgerEntry struct {
	TransactionID int64           `json:"transactionID"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Reference     string          `json:"reference"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Balance       decimal.Decimal `json:"balance"` // Running balance after this entry
	AgingDays     int             `json:"agingDays"`
}

// LedgerSummary aggregates a party's ledger.
//
// OutstandingAmount is derived from a negative running balance, not a positive one.
// This mirrors how receivables screens have always reported it.
type LedgerSummary struct {
	RunningBalance    decimal.Decimal `json:"runningBalance"`
	OutstandingAmount decimal.Decimal `json:"outstandingAmount"`
	TotalDebit        decimal.Decimal `json:"totalDebit"`
	TotalCredit       decimal.Decimal `json:"totalCredit"`
}

// CustomerLedger is the full ledger view for one party.
type CustomerLedger struct {
	Party   Party         `json:"party"`
	AsOf    time.Time     `json:"asOf"`
	Entries []LedgerEntry `json:"entries"`
	Summary LedgerSummary `json:"summary"`
}
