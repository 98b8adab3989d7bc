package ledger

import (
	"cmp"
	"slices"

	"github.com/SscSPs/plot_receivables/internal/core/domain"
)

// compareTransactions orders by calendar day, then by transaction id.
func compareTransactions(a, b domain.TransactionRecord) int {
	if c := domain.DateOnly(a.Date).Compare(domain.DateOnly(b.Date)); c != 0 {
		return c
	}
	return cmp.Compare(a.TransactionID, b.TransactionID)
}

// SortTransactions returns a copy of txns sorted ascending by (date, id).
// The input slice is left untouched.
func SortTransactions(txns []domain.TransactionRecord) []domain.TransactionRecord {
	sorted := slices.Clone(txns)
	slices.SortStableFunc(sorted, compareTransactions)
	return sorted
}
