package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/plot_receivables/internal/core/domain"
)

// TransactionRepositoryReader defines read operations over the transaction log.
type TransactionRepositoryReader interface {
	// ListTransactionsByParty returns one party's transactions inside the optional date bounds,
	// ordered by date and then id.
	ListTransactionsByParty(ctx context.Context, partyID int64, filter domain.TransactionFilter) ([]domain.TransactionRecord, error)

	// ListTransactionsAsOf returns every transaction dated on or before asOf, optionally for a
	// single party, ordered by party, then date and id.
	ListTransactionsAsOf(ctx context.Context, asOf time.Time, partyID *int64) ([]domain.TransactionRecord, error)

	// GetTransactionSetVersion identifies the current transaction set for cache keys.
	GetTransactionSetVersion(ctx context.Context, partyID *int64) (domain.TransactionSetVersion, error)
}

// TransactionRepositoryWriter defines write operations over the transaction log.
type TransactionRepositoryWriter interface {
	// AppendTransaction stores a new transaction and returns its assigned id.
	AppendTransaction(ctx context.Context, rec domain.TransactionRecord) (int64, error)
}

// TransactionRepositoryFacade combines the transaction reader and writer.
type TransactionRepositoryFacade interface {
	TransactionRepositoryReader
	TransactionRepositoryWriter
}
