package services

import (
	"context"

	"github.com/SscSPs/plot_receivables/internal/core/domain"
)

// TransactionService records new entries in the transaction log.
type TransactionService interface {
	// RecordTransactions validates and appends records in the given order and returns their ids.
	// It stops at the first failure; ids of records already stored are still returned.
	RecordTransactions(ctx context.Context, recs []domain.TransactionRecord) ([]int64, error)
}
