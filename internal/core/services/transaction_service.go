package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/plot_receivables/internal/apperrors"
	"github.com/SscSPs/plot_receivables/internal/core/domain"
	portsrepo "github.com/SscSPs/plot_receivables/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/plot_receivables/internal/core/ports/services"
)

type transactionService struct {
	BaseService
	txnRepo   portsrepo.TransactionRepositoryWriter
	partyRepo portsrepo.PartyRepository
}

// NewTransactionService creates a service that appends records to the transaction log.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryWriter, partyRepo portsrepo.PartyRepository) portssvc.TransactionService {
	return &transactionService{
		txnRepo:   txnRepo,
		partyRepo: partyRepo,
	}
}

var _ portssvc.TransactionService = (*transactionService)(nil)

// RecordTransactions appends recs in order, checking each against the known parties first
func (s *transactionService) RecordTransactions(ctx context.Context, recs []domain.TransactionRecord) ([]int64, error) {
	ids := make([]int64, 0, len(recs))
	knownParties := make(map[int64]bool)

	for i, rec := range recs {
		if err := validateRecord(rec); err != nil {
			s.LogError(ctx, err, "Rejected transaction record", slog.Int("row", i+1))
			return ids, fmt.Errorf("record %d: %w", i+1, err)
		}

		if !knownParties[rec.PartyID] {
			if _, err := s.partyRepo.FindPartyByID(ctx, rec.PartyID); err != nil {
				s.LogError(ctx, err, "Unknown party on transaction record",
					slog.Int("row", i+1),
					slog.Int64("party_id", rec.PartyID))
				return ids, fmt.Errorf("record %d: party %d: %w", i+1, rec.PartyID, err)
			}
			knownParties[rec.PartyID] = true
		}

		id, err := s.txnRepo.AppendTransaction(ctx, rec)
		if err != nil {
			s.LogError(ctx, err, "Failed to append transaction", slog.Int("row", i+1))
			return ids, fmt.Errorf("record %d: failed to append transaction: %w", i+1, err)
		}
		ids = append(ids, id)
	}

	s.LogInfo(ctx, "Transactions recorded successfully", slog.Int("count", len(ids)))
	return ids, nil
}

func validateRecord(rec domain.TransactionRecord) error {
	switch {
	case rec.PartyID <= 0:
		return apperrors.NewAppError(apperrors.CodeValidation, "party id must be positive", nil)
	case rec.Date.IsZero():
		return apperrors.NewAppError(apperrors.CodeValidation, "transaction date is required", nil)
	case rec.Type == "":
		return apperrors.NewAppError(apperrors.CodeValidation, "transaction type is required", nil)
	case rec.Amount.IsNegative():
		return apperrors.NewAppError(apperrors.CodeValidation, "amount must not be negative", nil)
	}
	return nil
}
