package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/plot_receivables/internal/cli"
	"github.com/SscSPs/plot_receivables/internal/core/domain"
	portssvc "github.com/SscSPs/plot_receivables/internal/core/ports/services"
	"github.com/SscSPs/plot_receivables/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLedgerService struct{ mock.Mock }

func (m *MockLedgerService) GetCustomerLedger(ctx context.Context, partyID int64) (*domain.CustomerLedger, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerLedger), args.Error(1)
}

type MockReportingService struct{ mock.Mock }

func (m *MockReportingService) ReceivablesAging(ctx context.Context, asOf time.Time, partyID *int64) (*domain.AgingReport, error) {
	args := m.Called(ctx, asOf, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AgingReport), args.Error(1)
}

func (m *MockReportingService) CustomerStatement(ctx context.Context, partyID int64, from, to time.Time) (*domain.Statement, error) {
	args := m.Called(ctx, partyID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statement), args.Error(1)
}

type MockTransactionService struct{ mock.Mock }

func (m *MockTransactionService) RecordTransactions(ctx context.Context, recs []domain.TransactionRecord) ([]int64, error) {
	args := m.Called(ctx, recs)
	ids, _ := args.Get(0).([]int64)
	return ids, args.Error(1)
}

type fixture struct {
	ledger       *MockLedgerService
	reporting    *MockReportingService
	transactions *MockTransactionService
	released     bool
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var today = date(2024, 6, 30)

func newFixture() *fixture {
	return &fixture{
		ledger:       new(MockLedgerService),
		reporting:    new(MockReportingService),
		transactions: new(MockTransactionService),
	}
}

func (f *fixture) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	factory := func(ctx context.Context) (*portssvc.ServiceContainer, func(), error) {
		return &portssvc.ServiceContainer{
			Ledger:       f.ledger,
			Reporting:    f.reporting,
			Transactions: f.transactions,
		}, func() { f.released = true }, nil
	}
	cmd := cli.NewRootCmd(factory, cli.WithClock(func() time.Time { return today.Add(9 * time.Hour) }))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (f *fixture) assertExpectations(t *testing.T) {
	f.ledger.AssertExpectations(t)
	f.reporting.AssertExpectations(t)
	f.transactions.AssertExpectations(t)
}

func TestLedgerCommand_JSON(t *testing.T) {
	f := newFixture()
	ledger := &domain.CustomerLedger{
		Party: domain.Party{PartyID: 7, Name: "Asha", Type: domain.PartyBuyer},
		AsOf:  today,
		Entries: []domain.LedgerEntry{
			{TransactionID: 1, Date: date(2024, 6, 1), Reference: "SALE-3", Debit: decimal.NewFromInt(1000), Credit: decimal.Zero, Balance: decimal.NewFromInt(1000), AgingDays: 29},
		},
		Summary: domain.LedgerSummary{RunningBalance: decimal.NewFromInt(1000), OutstandingAmount: decimal.Zero, TotalDebit: decimal.NewFromInt(1000), TotalCredit: decimal.Zero},
	}
	f.ledger.On("GetCustomerLedger", mock.Anything, int64(7)).Return(ledger, nil).Once()

	out, err := f.run(t, "ledger", "--party", "7")
	require.NoError(t, err)

	var resp dto.CustomerLedgerResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "Asha", resp.Party.Name)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, 29, resp.Entries[0].AgingDays)
	assert.True(t, f.released)
	f.assertExpectations(t)
}

func TestLedgerCommand_CSV(t *testing.T) {
	f := newFixture()
	ledger := &domain.CustomerLedger{
		Party: domain.Party{PartyID: 7},
		Entries: []domain.LedgerEntry{
			{TransactionID: 1, Date: date(2024, 6, 1), Reference: "SALE-3", Debit: decimal.NewFromInt(1000), Credit: decimal.Zero, Balance: decimal.NewFromInt(1000), AgingDays: 29},
		},
	}
	f.ledger.On("GetCustomerLedger", mock.Anything, int64(7)).Return(ledger, nil).Once()

	out, err := f.run(t, "ledger", "-p", "7", "--format", "CSV")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "transaction_id,date,reference,description,debit,credit,balance,aging_days", lines[0])
	assert.Equal(t, "1,2024-06-01,SALE-3,,1000.00,0.00,1000.00,29", lines[1])
}

func TestLedgerCommand_RejectsBadParty(t *testing.T) {
	f := newFixture()
	_, err := f.run(t, "ledger", "--party", "0")
	require.Error(t, err)
	f.ledger.AssertNotCalled(t, "GetCustomerLedger", mock.Anything, mock.Anything)
}

func TestUnsupportedFormat(t *testing.T) {
	f := newFixture()
	_, err := f.run(t, "ledger", "--party", "7", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
	assert.False(t, f.released)
}

func TestFactoryError(t *testing.T) {
	factory := func(ctx context.Context) (*portssvc.ServiceContainer, func(), error) {
		return nil, nil, errors.New("database unreachable")
	}
	cmd := cli.NewRootCmd(factory)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"aging"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database unreachable")
}

func TestStatementCommand_DefaultWindow(t *testing.T) {
	f := newFixture()
	stmt := &domain.Statement{
		Party:          domain.Party{PartyID: 7, Name: "Asha"},
		FromDate:       date(2024, 5, 31),
		ToDate:         today,
		OpeningBalance: decimal.NewFromInt(250),
		ClosingBalance: decimal.NewFromInt(250),
		Outstanding:    decimal.NewFromInt(250),
	}
	f.reporting.On("CustomerStatement", mock.Anything, int64(7), date(2024, 5, 31), today).Return(stmt, nil).Once()

	out, err := f.run(t, "statement", "--party", "7", "--format", "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, ",2024-05-31,,Opening balance,,,250.00", lines[1])
	f.assertExpectations(t)
}

func TestStatementCommand_Period(t *testing.T) {
	f := newFixture()
	f.reporting.On("CustomerStatement", mock.Anything, int64(7), date(2024, 1, 2), date(2024, 4, 1)).
		Return(&domain.Statement{FromDate: date(2024, 1, 2), ToDate: date(2024, 4, 1)}, nil).Once()

	_, err := f.run(t, "statement", "--party", "7", "--period", "89", "--to", "2024-03-31")
	require.Error(t, err)

	_, err = f.run(t, "statement", "--party", "7", "--period", "90", "--to", "2024-04-01")
	require.NoError(t, err)
	f.assertExpectations(t)
}

func TestStatementCommand_InvalidWindows(t *testing.T) {
	f := newFixture()
	cases := [][]string{
		{"statement", "--party", "7", "--period", "30", "--from", "2024-01-01"},
		{"statement", "--party", "7", "--from", "2024/01/01"},
		{"statement", "--party", "7", "--from", "2024-02-01", "--to", "2024-01-01"},
	}
	for _, args := range cases {
		_, err := f.run(t, args...)
		assert.Error(t, err, strings.Join(args, " "))
	}
	f.reporting.AssertNotCalled(t, "CustomerStatement", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAgingCommand(t *testing.T) {
	f := newFixture()
	report := &domain.AgingReport{
		AsOf: date(2024, 2, 20),
		Rows: []domain.AgingBucket{{
			PartyID: 3, PartyName: "Ravi",
			Current: decimal.NewFromInt(200), Days31To60: decimal.NewFromInt(600),
			Days61To90: decimal.Zero, Over90: decimal.Zero,
			TotalOutstanding: decimal.NewFromInt(800), OldestInvoiceDate: date(2024, 1, 1),
		}},
		Totals: domain.AgingTotals{
			Current: decimal.NewFromInt(200), Days31To60: decimal.NewFromInt(600),
			Days61To90: decimal.Zero, Over90: decimal.Zero, TotalOutstanding: decimal.NewFromInt(800),
		},
	}
	f.reporting.On("ReceivablesAging", mock.Anything, date(2024, 2, 20), mock.MatchedBy(func(p *int64) bool {
		return p != nil && *p == 3
	})).Return(report, nil).Once()

	out, err := f.run(t, "aging", "--as-of", "2024-02-20", "--party", "3", "--format", "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "3,Ravi,200.00,600.00,0.00,0.00,800.00,2024-01-01", lines[1])
	assert.Equal(t, ",TOTAL,200.00,600.00,0.00,0.00,800.00,", lines[2])
	f.assertExpectations(t)
}

func TestAgingCommand_DefaultsToToday(t *testing.T) {
	f := newFixture()
	f.reporting.On("ReceivablesAging", mock.Anything, today, (*int64)(nil)).
		Return(&domain.AgingReport{AsOf: today}, nil).Once()

	out, err := f.run(t, "aging")
	require.NoError(t, err)
	assert.Contains(t, out, `"asOf": "2024-06-30"`)
	f.assertExpectations(t)
}

func TestImportCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "txns.csv")
	content := "party_id,date,type,amount,description,sale_id,installment_id\n" +
		"7,2024-01-01,Debit,1000,Plot 12,3,\n" +
		"7,2024-01-15,credit,400,Installment 1,3,5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	f := newFixture()
	f.transactions.On("RecordTransactions", mock.Anything, mock.MatchedBy(func(recs []domain.TransactionRecord) bool {
		return len(recs) == 2 && recs[0].PartyID == 7 && recs[1].Amount.Equal(decimal.NewFromInt(400))
	})).Return([]int64{11, 12}, nil).Once()

	out, err := f.run(t, "import", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 of 2 transactions")
	f.assertExpectations(t)
}

func TestImportCommand_PartialFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "txns.csv")
	content := "party_id,date,type,amount,description,sale_id,installment_id\n" +
		"7,2024-01-01,Debit,1000,,,\n" +
		"8,2024-01-02,Debit,50,,,\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	f := newFixture()
	f.transactions.On("RecordTransactions", mock.Anything, mock.Anything).
		Return([]int64{11}, errors.New("party 8 not found")).Once()

	out, err := f.run(t, "import", "--file", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
	assert.Contains(t, out, "Imported 1 of 2 transactions")
}

func TestImportCommand_RequiresFile(t *testing.T) {
	f := newFixture()
	_, err := f.run(t, "import")
	require.Error(t, err)
}
