package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is a Debit or a Credit.
// Stored values are free text; matching is case-insensitive.
type TransactionType string

const (
	Debit  TransactionType = "Debit"
	Credit TransactionType = "Credit"
)

// IsDebit reports whether t names a debit, ignoring case.
func (t TransactionType) IsDebit() bool {
	return strings.EqualFold(string(t), string(Debit))
}

// IsCredit reports whether t names a credit, ignoring case.
func (t TransactionType) IsCredit() bool {
	return strings.EqualFold(string(t), string(Credit))
}

// IsKnown reports whether t is either a debit or a credit.
func (t TransactionType) IsKnown() bool {
	return t.IsDebit() || t.IsCredit()
}

// TransactionRecord is a single dated financial event for a party.
// Records are append-only; the ledger never mutates them.
type TransactionRecord struct {
	TransactionID int64           `json:"transactionID"` // Store-assigned, monotonic
	PartyID       int64           `json:"partyID"`
	Date          time.Time       `json:"date"` // Calendar day; time of day is ignored
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"` // Non-negative by convention, not enforced
	Description   string          `json:"description"`
	SaleID        *int64          `json:"saleID,omitempty"`
	InstallmentID *int64          `json:"installmentID,omitempty"`
	AuditFields
}

// TransactionFilter restricts a per-party fetch to an inclusive date range.
// Nil bounds are open.
type TransactionFilter struct {
	From *time.Time
	To   *time.Time
}

// TransactionSetVersion identifies the set of transactions a report was computed from.
// Since the store is append-only, any insert changes either field.
type TransactionSetVersion struct {
	Count            int64 `json:"count"`
	MaxTransactionID int64 `json:"maxTransactionID"`
}
