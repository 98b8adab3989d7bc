package accounting

import (
	"github.com/SscSPs/plot_receivables/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SplitAmount projects a transaction amount into its debit and credit columns.
// Unrecognised transaction types yield zero for both.
func SplitAmount(txn domain.TransactionRecord) (debit, credit decimal.Decimal) {
	switch {
	case txn.Type.IsDebit():
		return txn.Amount, decimal.Zero
	case txn.Type.IsCredit():
		return decimal.Zero, txn.Amount
	default:
		return decimal.Zero, decimal.Zero
	}
}

// CalculateSignedAmount applies the receivables sign convention to a transaction amount.
// DEBIT -> Positive (+), the party owes more
// CREDIT -> Negative (-), the party paid
// Anything else -> 0
func CalculateSignedAmount(txn domain.TransactionRecord) decimal.Decimal {
	debit, credit := SplitAmount(txn)
	return debit.Sub(credit)
}

// NetBalance sums the signed amounts of all transactions.
func NetBalance(transactions []domain.TransactionRecord) decimal.Decimal {
	sum := decimal.Zero
	for _, txn := range transactions {
		sum = sum.Add(CalculateSignedAmount(txn))
	}
	return sum
}
