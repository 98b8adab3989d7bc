package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/plot_receivables/internal/apperrors"
	"github.com/SscSPs/plot_receivables/internal/core/domain"
	"github.com/SscSPs/plot_receivables/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordTransactions(t *testing.T) {
	ctx := context.Background()
	txnRepo := new(MockTransactionRepository)
	partyRepo := new(MockPartyRepository)
	svc := services.NewTransactionService(txnRepo, partyRepo)

	recs := []domain.TransactionRecord{
		{PartyID: 1, Date: date(2024, 1, 1), Type: domain.Debit, Amount: decimal.NewFromInt(1000)},
		{PartyID: 1, Date: date(2024, 1, 5), Type: domain.Credit, Amount: decimal.NewFromInt(250)},
	}

	partyRepo.On("FindPartyByID", ctx, int64(1)).Return(&domain.Party{PartyID: 1}, nil).Once()
	txnRepo.On("AppendTransaction", ctx, recs[0]).Return(int64(101), nil).Once()
	txnRepo.On("AppendTransaction", ctx, recs[1]).Return(int64(102), nil).Once()

	ids, err := svc.RecordTransactions(ctx, recs)

	require.NoError(t, err)
	assert.Equal(t, []int64{101, 102}, ids)
	partyRepo.AssertExpectations(t)
	txnRepo.AssertExpectations(t)
}

func TestRecordTransactions_StopsAtInvalidRecord(t *testing.T) {
	ctx := context.Background()
	txnRepo := new(MockTransactionRepository)
	partyRepo := new(MockPartyRepository)
	svc := services.NewTransactionService(txnRepo, partyRepo)

	recs := []domain.TransactionRecord{
		{PartyID: 1, Date: date(2024, 1, 1), Type: domain.Debit, Amount: decimal.NewFromInt(10)},
		{PartyID: 1, Date: date(2024, 1, 2), Type: domain.Credit, Amount: decimal.NewFromInt(-5)},
	}
	partyRepo.On("FindPartyByID", ctx, int64(1)).Return(&domain.Party{PartyID: 1}, nil).Once()
	txnRepo.On("AppendTransaction", ctx, recs[0]).Return(int64(1), nil).Once()

	ids, err := svc.RecordTransactions(ctx, recs)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, []int64{1}, ids)
	txnRepo.AssertNumberOfCalls(t, "AppendTransaction", 1)
}

func TestRecordTransactions_UnknownParty(t *testing.T) {
	ctx := context.Background()
	txnRepo := new(MockTransactionRepository)
	partyRepo := new(MockPartyRepository)
	svc := services.NewTransactionService(txnRepo, partyRepo)

	partyRepo.On("FindPartyByID", ctx, int64(5)).Return(nil, apperrors.ErrNotFound).Once()

	ids, err := svc.RecordTransactions(ctx, []domain.TransactionRecord{
		{PartyID: 5, Date: date(2024, 1, 1), Type: domain.Debit, Amount: decimal.NewFromInt(10)},
	})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Empty(t, ids)
	txnRepo.AssertNotCalled(t, "AppendTransaction", mock.Anything, mock.Anything)
}
