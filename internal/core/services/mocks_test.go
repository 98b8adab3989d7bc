package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/plot_receivables/internal/core/domain"
	portsrepo "github.com/SscSPs/plot_receivables/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) ListTransactionsByParty(ctx context.Context, partyID int64, filter domain.TransactionFilter) ([]domain.TransactionRecord, error) {
	args := m.Called(ctx, partyID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionRecord), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsAsOf(ctx context.Context, asOf time.Time, partyID *int64) ([]domain.TransactionRecord, error) {
	args := m.Called(ctx, asOf, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionRecord), args.Error(1)
}

func (m *MockTransactionRepository) GetTransactionSetVersion(ctx context.Context, partyID *int64) (domain.TransactionSetVersion, error) {
	args := m.Called(ctx, partyID)
	return args.Get(0).(domain.TransactionSetVersion), args.Error(1)
}

func (m *MockTransactionRepository) AppendTransaction(ctx context.Context, rec domain.TransactionRecord) (int64, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock PartyRepository ---
type MockPartyRepository struct {
	mock.Mock
}

var _ portsrepo.PartyRepository = (*MockPartyRepository)(nil)

func (m *MockPartyRepository) FindPartyByID(ctx context.Context, partyID int64) (*domain.Party, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyRepository) FindPartiesByIDs(ctx context.Context, partyIDs []int64) (map[int64]domain.Party, error) {
	args := m.Called(ctx, partyIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.Party), args.Error(1)
}

// --- In-memory ReportCache ---
// Values are stored by pointer, so a hit copies the stored report into dest.
type memoryCache struct {
	entries map[string]any
	sets    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]any)}
}

func (c *memoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	v, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	switch d := dest.(type) {
	case *domain.AgingReport:
		*d = *(v.(*domain.AgingReport))
	case *domain.Statement:
		*d = *(v.(*domain.Statement))
	}
	return true, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	c.entries[key] = value
	c.sets++
	return nil
}
