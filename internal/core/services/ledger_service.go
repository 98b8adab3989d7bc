package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/plot_receivables/internal/core/domain"
	"github.com/SscSPs/plot_receivables/internal/core/ledger"
	portsrepo "github.com/SscSPs/plot_receivables/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/plot_receivables/internal/core/ports/services"
)

// ledgerService implements the LedgerService interface
type ledgerService struct {
	BaseService
	txnRepo   portsrepo.TransactionRepositoryReader
	partyRepo portsrepo.PartyRepository
	now       func() time.Time
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithLedgerClock overrides the clock used to compute aging days.
func WithLedgerClock(now func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

// NewLedgerService creates a new ledger service with the provided options
func NewLedgerService(txnRepo portsrepo.TransactionRepositoryReader, partyRepo portsrepo.PartyRepository, options ...LedgerServiceOption) portssvc.LedgerService {
	svc := &ledgerService{
		txnRepo:   txnRepo,
		partyRepo: partyRepo,
		now:       time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.LedgerService = (*ledgerService)(nil)

// GetCustomerLedger returns the party's full ledger with running balances
func (s *ledgerService) GetCustomerLedger(ctx context.Context, partyID int64) (*domain.CustomerLedger, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find party for ledger", slog.Int64("party_id", partyID))
		return nil, fmt.Errorf("failed to find party %d: %w", partyID, err)
	}

	txns, err := s.txnRepo.ListTransactionsByParty(ctx, partyID, domain.TransactionFilter{})
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for ledger", slog.Int64("party_id", partyID))
		return nil, fmt.Errorf("failed to list transactions for party %d: %w", partyID, err)
	}
	s.logUnknownTypes(ctx, &partyID, ledger.CountUnknownTypes(txns))

	now := s.now()
	entries := ledger.ComputeLedger(txns, now)
	result := &domain.CustomerLedger{
		Party:   *party,
		AsOf:    domain.DateOnly(now),
		Entries: entries,
		Summary: ledger.SummarizeEntries(entries),
	}

	s.LogInfo(ctx, "Customer ledger generated successfully",
		slog.Int64("party_id", partyID),
		slog.Int("entry_count", len(entries)),
		slog.String("running_balance", result.Summary.RunningBalance.String()))
	return result, nil
}
