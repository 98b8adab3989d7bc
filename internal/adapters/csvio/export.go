package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/SscSPs/plot_receivables/internal/core/domain"
	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// LedgerRow is one exported ledger line.
type LedgerRow struct {
	TransactionID int64  `csv:"transaction_id"`
	Date          string `csv:"date"`
	Reference     string `csv:"reference"`
	Description   string `csv:"description"`
	Debit         string `csv:"debit"`
	Credit        string `csv:"credit"`
	Balance       string `csv:"balance"`
	AgingDays     int    `csv:"aging_days"`
}

// StatementRow is one exported statement line. The opening balance is written as the first row.
type StatementRow struct {
	TransactionID string `csv:"transaction_id"`
	Date          string `csv:"date"`
	Reference     string `csv:"reference"`
	Description   string `csv:"description"`
	Debit         string `csv:"debit"`
	Credit        string `csv:"credit"`
	Balance       string `csv:"balance"`
}

// AgingRow is one exported aging line. The portfolio total is written as the last row.
type AgingRow struct {
	PartyID           string `csv:"party_id"`
	PartyName         string `csv:"party_name"`
	Current           string `csv:"current_0_30"`
	Days31To60        string `csv:"days_31_60"`
	Days61To90        string `csv:"days_61_90"`
	Over90            string `csv:"over_90"`
	TotalOutstanding  string `csv:"total_outstanding"`
	OldestInvoiceDate string `csv:"oldest_invoice_date"`
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func day(t time.Time) string {
	return t.Format(time.DateOnly)
}

func marshal(rows any, w io.Writer) error {
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csv.NewWriter(w))); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteLedger writes the ledger entries of one party.
func WriteLedger(w io.Writer, l *domain.CustomerLedger) error {
	rows := make([]LedgerRow, 0, len(l.Entries))
	for _, e := range l.Entries {
		rows = append(rows, LedgerRow{
			TransactionID: e.TransactionID,
			Date:          day(e.Date),
			Reference:     e.Reference,
			Description:   e.Description,
			Debit:         money(e.Debit),
			Credit:        money(e.Credit),
			Balance:       money(e.Balance),
			AgingDays:     e.AgingDays,
		})
	}
	return marshal(&rows, w)
}

// WriteStatement writes an opening balance row followed by the statement lines.
func WriteStatement(w io.Writer, s *domain.Statement) error {
	rows := make([]StatementRow, 0, len(s.Lines)+1)
	rows = append(rows, StatementRow{
		Date:        day(s.FromDate),
		Description: "Opening balance",
		Balance:     money(s.OpeningBalance),
	})
	for _, l := range s.Lines {
		rows = append(rows, StatementRow{
			TransactionID: strconv.FormatInt(l.TransactionID, 10),
			Date:          day(l.Date),
			Reference:     l.Reference,
			Description:   l.Description,
			Debit:         money(l.Debit),
			Credit:        money(l.Credit),
			Balance:       money(l.Balance),
		})
	}
	return marshal(&rows, w)
}

// WriteAging writes one row per party followed by a TOTAL row.
func WriteAging(w io.Writer, r *domain.AgingReport) error {
	rows := make([]AgingRow, 0, len(r.Rows)+1)
	for _, b := range r.Rows {
		rows = append(rows, AgingRow{
			PartyID:           strconv.FormatInt(b.PartyID, 10),
			PartyName:         b.PartyName,
			Current:           money(b.Current),
			Days31To60:        money(b.Days31To60),
			Days61To90:        money(b.Days61To90),
			Over90:            money(b.Over90),
			TotalOutstanding:  money(b.TotalOutstanding),
			OldestInvoiceDate: day(b.OldestInvoiceDate),
		})
	}
	rows = append(rows, AgingRow{
		PartyName:        "TOTAL",
		Current:          money(r.Totals.Current),
		Days31To60:       money(r.Totals.Days31To60),
		Days61To90:       money(r.Totals.Days61To90),
		Over90:           money(r.Totals.Over90),
		TotalOutstanding: money(r.Totals.TotalOutstanding),
	})
	return marshal(&rows, w)
}
