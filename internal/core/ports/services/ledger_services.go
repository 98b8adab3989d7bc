package services

import (
	"context"

	"github.com/SscSPs/plot_receivables/internal/core/domain"
)

// LedgerService builds the running ledger of a party.
type LedgerService interface {
	// GetCustomerLedger returns every transaction of the party with running balances and a summary.
	GetCustomerLedger(ctx context.Context, partyID int64) (*domain.CustomerLedger, error)
}
