// Package ledger turns a party's transaction log into running balances, aging buckets
// and statements. Every function is pure: inputs are never mutated and nothing is cached.
package ledger

import (
	"time"

	"github.com/SscSPs/plot_receivables/internal/core/domain"
	"github.com/SscSPs/plot_receivables/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// ComputeLedger builds the running ledger of a single party.
// txns must already be restricted to that party. AgingDays on each entry is measured
// against now.
func ComputeLedger(txns []domain.TransactionRecord, now time.Time) []domain.LedgerEntry {
	sorted := SortTransactions(txns)
	entries := make([]domain.LedgerEntry, 0, len(sorted))

	balance := decimal.Zero
	for _, txn := range sorted {
		debit, credit := accounting.SplitAmount(txn)
		balance = balance.Add(debit).Sub(credit)

		entries = append(entries, domain.LedgerEntry{
			TransactionID: txn.TransactionID,
			Date:          txn.Date,
			Description:   txn.Description,
			Reference:     ParseReference(txn.Description),
			Debit:         debit,
			Credit:        credit,
			Balance:       balance,
			AgingDays:     domain.DaysBetween(txn.Date, now),
		})
	}
	return entries
}

// ComputeSummary aggregates the ledger of a single party.
func ComputeSummary(txns []domain.TransactionRecord) domain.LedgerSummary {
	// Aging days do not feed the summary, so any reference time will do.
	return SummarizeEntries(ComputeLedger(txns, time.Time{}))
}

// SummarizeEntries aggregates already computed ledger entries.
func SummarizeEntries(entries []domain.LedgerEntry) domain.LedgerSummary {
	summary := domain.LedgerSummary{
		RunningBalance:    decimal.Zero,
		OutstandingAmount: decimal.Zero,
		TotalDebit:        decimal.Zero,
		TotalCredit:       decimal.Zero,
	}
	if len(entries) == 0 {
		return summary
	}

	for _, e := range entries {
		summary.TotalDebit = summary.TotalDebit.Add(e.Debit)
		summary.TotalCredit = summary.TotalCredit.Add(e.Credit)
	}
	summary.RunningBalance = entries[len(entries)-1].Balance
	if summary.RunningBalance.IsNegative() {
		summary.OutstandingAmount = summary.RunningBalance.Abs()
	}
	return summary
}

// CountUnknownTypes returns how many transactions are neither debits nor credits.
// Those transactions are skipped by every balance computation in this package.
func CountUnknownTypes(txns []domain.TransactionRecord) int {
	n := 0
	for _, txn := range txns {
		if !txn.Type.IsKnown() {
			n++
		}
	}
	return n
}
