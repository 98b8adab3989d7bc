package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AgingBucketName identifies one of the receivables aging periods.
type AgingBucketName string

const (
	BucketCurrent AgingBucketName = "CURRENT"    // 0-30 days
	Bucket31To60  AgingBucketName = "DAYS_31_60" // 31-60 days
	Bucket61To90  AgingBucketName = "DAYS_61_90" // 61-90 days
	BucketOver90  AgingBucketName = "OVER_90"    // more than 90 days
)

// AgingBucket is one row of the receivables aging report.
type AgingBucket struct {
	PartyID           int64           `json:"partyID"`
	PartyName         string          `json:"partyName"`
	Current           decimal.Decimal `json:"current"`
	Days31To60        decimal.Decimal `json:"days31To60"`
	Days61To90        decimal.Decimal `json:"days61To90"`
	Over90            decimal.Decimal `json:"over90"`
	TotalOutstanding  decimal.Decimal `json:"totalOutstanding"`
	OldestInvoiceDate time.Time       `json:"oldestInvoiceDate"`
}

// BucketSum returns the sum of the four aging buckets.
func (b AgingBucket) BucketSum() decimal.Decimal {
	return b.Current.Add(b.Days31To60).Add(b.Days61To90).Add(b.Over90)
}

// AgingTotals are the portfolio-wide sums of an aging report.
type AgingTotals struct {
	Current          decimal.Decimal `json:"current"`
	Days31To60       decimal.Decimal `json:"days31To60"`
	Days61To90       decimal.Decimal `json:"days61To90"`
	Over90           decimal.Decimal `json:"over90"`
	TotalOutstanding decimal.Decimal `json:"totalOutstanding"`
}

// AgingReport represents the receivables aging report as of a date.
type AgingReport struct {
	AsOf        time.Time     `json:"asOf"`
	PartyFilter *int64        `json:"partyFilter,omitempty"`
	Rows        []AgingBucket `json:"rows"`
	Totals      AgingTotals   `json:"totals"`
}

// StatementLine is one transaction on a customer statement.
type StatementLine struct {
	TransactionID int64           `json:"transactionID"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Reference     string          `json:"reference"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Balance       decimal.Decimal `json:"balance"`
}

// Statement represents a customer statement for an inclusive date window.
type Statement struct {
	Party          Party           `json:"party"`
	FromDate       time.Time       `json:"fromDate"`
	ToDate         time.Time       `json:"toDate"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Lines          []StatementLine `json:"lines"`
	TotalDebit     decimal.Decimal `json:"totalDebit"`
	TotalCredit    decimal.Decimal `json:"totalCredit"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
	Outstanding    decimal.Decimal `json:"outstanding"` // Closing balance floored at zero
}
