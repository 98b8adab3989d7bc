package ledger

import (
	"time"

	"github.com/SscSPs/plot_receivables/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BucketFor classifies an age in days into its aging period.
func BucketFor(days int) domain.AgingBucketName {
	switch {
	case days <= 30:
		return domain.BucketCurrent
	case days <= 60:
		return domain.Bucket31To60
	case days <= 90:
		return domain.Bucket61To90
	default:
		return domain.BucketOver90
	}
}

// ComputeAgingReport computes one aging row per party with a positive balance as of asOf.
// txns may span the whole portfolio. When partyFilter is set only that party is considered.
// Rows come out in the order parties are first seen in txns.
func ComputeAgingReport(txns []domain.TransactionRecord, asOf time.Time, partyFilter *int64) []domain.AgingBucket {
	cutoff := domain.DateOnly(asOf)

	order := make([]int64, 0)
	groups := make(map[int64][]domain.TransactionRecord)
	for _, txn := range txns {
		if domain.DateOnly(txn.Date).After(cutoff) {
			continue
		}
		if partyFilter != nil && txn.PartyID != *partyFilter {
			continue
		}
		if _, seen := groups[txn.PartyID]; !seen {
			order = append(order, txn.PartyID)
		}
		groups[txn.PartyID] = append(groups[txn.PartyID], txn)
	}

	rows := make([]domain.AgingBucket, 0, len(order))
	for _, partyID := range order {
		row := agePartyTransactions(partyID, groups[partyID], cutoff)
		if row.TotalOutstanding.IsPositive() {
			rows = append(rows, row)
		}
	}
	return rows
}

// agePartyTransactions walks one party's transactions once, in (date, id) order.
// Only the still-unpaid part of each debit, measured right after that debit is applied,
// is aged. Credits are not matched to individual debits.
func agePartyTransactions(partyID int64, txns []domain.TransactionRecord, asOf time.Time) domain.AgingBucket {
	row := domain.AgingBucket{
		PartyID:           partyID,
		Current:           decimal.Zero,
		Days31To60:        decimal.Zero,
		Days61To90:        decimal.Zero,
		Over90:            decimal.Zero,
		TotalOutstanding:  decimal.Zero,
		OldestInvoiceDate: asOf,
	}

	balance := decimal.Zero
	var oldestDebit *time.Time
	for _, txn := range SortTransactions(txns) {
		switch {
		case txn.Type.IsDebit():
			balance = balance.Add(txn.Amount)
			if oldestDebit == nil || txn.Date.Before(*oldestDebit) {
				d := txn.Date
				oldestDebit = &d
			}
			if balance.IsPositive() {
				addToBucket(&row, BucketFor(domain.DaysBetween(txn.Date, asOf)), decimal.Min(txn.Amount, balance))
			}
		case txn.Type.IsCredit():
			balance = balance.Sub(txn.Amount)
		}
	}

	row.TotalOutstanding = balance
	if oldestDebit != nil {
		row.OldestInvoiceDate = *oldestDebit
	}
	if balance.IsPositive() {
		reconcileBuckets(&row)
	}
	return row
}

func addToBucket(row *domain.AgingBucket, bucket domain.AgingBucketName, amount decimal.Decimal) {
	switch bucket {
	case domain.BucketCurrent:
		row.Current = row.Current.Add(amount)
	case domain.Bucket31To60:
		row.Days31To60 = row.Days31To60.Add(amount)
	case domain.Bucket61To90:
		row.Days61To90 = row.Days61To90.Add(amount)
	default:
		row.Over90 = row.Over90.Add(amount)
	}
}

// reconcileBuckets makes the buckets add up to TotalOutstanding.
// The single pass never ages less than the final balance, but a credit posted after a debit
// was aged does not reduce that debit's share. The surplus is taken from the oldest buckets first.
func reconcileBuckets(row *domain.AgingBucket) {
	excess := row.BucketSum().Sub(row.TotalOutstanding)
	if !excess.IsPositive() {
		return
	}

	for _, bucket := range []*decimal.Decimal{&row.Over90, &row.Days61To90, &row.Days31To60, &row.Current} {
		if !excess.IsPositive() {
			return
		}
		take := decimal.Min(*bucket, excess)
		*bucket = bucket.Sub(take)
		excess = excess.Sub(take)
	}
}

// SumAging adds up every row of an aging report into portfolio totals.
func SumAging(rows []domain.AgingBucket) domain.AgingTotals {
	totals := domain.AgingTotals{
		Current:          decimal.Zero,
		Days31To60:       decimal.Zero,
		Days61To90:       decimal.Zero,
		Over90:           decimal.Zero,
		TotalOutstanding: decimal.Zero,
	}
	for _, r := range rows {
		totals.Current = totals.Current.Add(r.Current)
		totals.Days31To60 = totals.Days31To60.Add(r.Days31To60)
		totals.Days61To90 = totals.Days61To90.Add(r.Days61To90)
		totals.Over90 = totals.Over90.Add(r.Over90)
		totals.TotalOutstanding = totals.TotalOutstanding.Add(r.TotalOutstanding)
	}
	return totals
}
