package ledger

import (
	"time"

	"github.com/SscSPs/plot_receivables/internal/core/domain"
	"github.com/SscSPs/plot_receivables/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// ComputeOpeningBalance returns debits minus credits over all transactions dated strictly
// before fromDate.
func ComputeOpeningBalance(txns []domain.TransactionRecord, fromDate time.Time) decimal.Decimal {
	cutoff := domain.DateOnly(fromDate)
	opening := decimal.Zero
	for _, txn := range txns {
		if domain.DateOnly(txn.Date).Before(cutoff) {
			opening = opening.Add(accounting.CalculateSignedAmount(txn))
		}
	}
	return opening
}

// ComputeStatement produces statement lines for transactions already restricted to the
// statement window, carrying the running balance forward from openingBalance.
func ComputeStatement(txns []domain.TransactionRecord, openingBalance decimal.Decimal) []domain.StatementLine {
	sorted := SortTransactions(txns)
	lines := make([]domain.StatementLine, 0, len(sorted))

	balance := openingBalance
	for _, txn := range sorted {
		debit, credit := accounting.SplitAmount(txn)
		balance = balance.Add(debit).Sub(credit)
		lines = append(lines, domain.StatementLine{
			TransactionID: txn.TransactionID,
			Date:          txn.Date,
			Description:   txn.Description,
			Reference:     ParseReference(txn.Description),
			Debit:         debit,
			Credit:        credit,
			Balance:       balance,
		})
	}
	return lines
}

// ClosingBalance is the balance of the last line, or openingBalance for an empty window.
func ClosingBalance(lines []domain.StatementLine, openingBalance decimal.Decimal) decimal.Decimal {
	if len(lines) == 0 {
		return openingBalance
	}
	return lines[len(lines)-1].Balance
}

// WithinWindow returns the transactions dated in the inclusive [fromDate, toDate] window.
func WithinWindow(txns []domain.TransactionRecord, fromDate, toDate time.Time) []domain.TransactionRecord {
	from, to := domain.DateOnly(fromDate), domain.DateOnly(toDate)
	window := make([]domain.TransactionRecord, 0, len(txns))
	for _, txn := range txns {
		d := domain.DateOnly(txn.Date)
		if d.Before(from) || d.After(to) {
			continue
		}
		window = append(window, txn)
	}
	return window
}

// BuildStatement assembles a complete statement from one party's transactions.
// txns may contain anything dated up to toDate; entries before fromDate only feed the
// opening balance.
func BuildStatement(party domain.Party, txns []domain.TransactionRecord, fromDate, toDate time.Time) domain.Statement {
	opening := ComputeOpeningBalance(txns, fromDate)
	lines := ComputeStatement(WithinWindow(txns, fromDate, toDate), opening)

	stmt := domain.Statement{
		Party:          party,
		FromDate:       domain.DateOnly(fromDate),
		ToDate:         domain.DateOnly(toDate),
		OpeningBalance: opening,
		Lines:          lines,
		TotalDebit:     decimal.Zero,
		TotalCredit:    decimal.Zero,
		ClosingBalance: ClosingBalance(lines, opening),
		Outstanding:    decimal.Zero,
	}
	for _, l := range lines {
		stmt.TotalDebit = stmt.TotalDebit.Add(l.Debit)
		stmt.TotalCredit = stmt.TotalCredit.Add(l.Credit)
	}
	if stmt.ClosingBalance.IsPositive() {
		stmt.Outstanding = stmt.ClosingBalance
	}
	return stmt
}
