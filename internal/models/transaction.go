package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction mirrors a row of the transactions table.
// PartyID is nil on rows read through the legacy sales join before the party is resolved.
type Transaction struct {
	TransactionID int64           `db:"transaction_id"`
	PartyID       *int64          `db:"party_id"`
	Date          time.Time       `db:"date"`
	Type          string          `db:"type"`
	Amount        decimal.Decimal `db:"amount"`
	Description   *string         `db:"description"`
	SaleID        *int64          `db:"sale_id"`
	InstallmentID *int64          `db:"installment_id"`
	AuditFields
}
