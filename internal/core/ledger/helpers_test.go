package ledger_test

import (
	"testing"
	"time"

	"github.com/SscSPs/plot_receivables/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var day0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func day(n int) time.Time {
	return day0.AddDate(0, 0, n)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func debit(id, party int64, on time.Time, amount string) domain.TransactionRecord {
	return domain.TransactionRecord{TransactionID: id, PartyID: party, Date: on, Type: domain.Debit, Amount: dec(amount)}
}

func credit(id, party int64, on time.Time, amount string) domain.TransactionRecord {
	return domain.TransactionRecord{TransactionID: id, PartyID: party, Date: on, Type: domain.Credit, Amount: dec(amount)}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), append([]any{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}
