package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/plot_receivables/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDaysBetween(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{name: "same day", from: base, to: base, want: 0},
		{name: "time of day ignored", from: base.Add(23 * time.Hour), to: base.AddDate(0, 0, 1).Add(time.Hour), want: 1},
		{name: "across leap day", from: time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC), to: base, want: 2},
		{name: "negative when reversed", from: base.AddDate(0, 0, 10), to: base, want: -10},
		{name: "other location", from: time.Date(2024, 3, 1, 22, 0, 0, 0, time.FixedZone("X", -5*3600)), to: base.AddDate(0, 0, 5), want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.DaysBetween(tt.from, tt.to))
		})
	}
}

func TestTransactionType_Classification(t *testing.T) {
	tests := []struct {
		in       domain.TransactionType
		debit    bool
		credit   bool
		knownTyp bool
	}{
		{in: "Debit", debit: true, knownTyp: true},
		{in: "DEBIT", debit: true, knownTyp: true},
		{in: "credit", credit: true, knownTyp: true},
		{in: "Refund"},
		{in: ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.debit, tt.in.IsDebit())
			assert.Equal(t, tt.credit, tt.in.IsCredit())
			assert.Equal(t, tt.knownTyp, tt.in.IsKnown())
		})
	}
}

func TestAgingBucket_BucketSum(t *testing.T) {
	b := domain.AgingBucket{
		Current:    decimal.NewFromInt(10),
		Days31To60: decimal.NewFromInt(20),
		Days61To90: decimal.NewFromInt(30),
		Over90:     decimal.RequireFromString("0.50"),
	}
	assert.True(t, decimal.RequireFromString("60.50").Equal(b.BucketSum()))
}
