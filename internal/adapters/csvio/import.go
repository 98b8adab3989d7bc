// Package csvio reads transaction imports and writes reports as CSV.
package csvio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/plot_receivables/internal/apperrors"
	"github.com/SscSPs/plot_receivables/internal/core/domain"
	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// TransactionRow is one line of a transaction import file.
type TransactionRow struct {
	PartyID       string `csv:"party_id"`
	Date          string `csv:"date"` // YYYY-MM-DD
	Type          string `csv:"type"`
	Amount        string `csv:"amount"`
	Description   string `csv:"description"`
	SaleID        string `csv:"sale_id"`
	InstallmentID string `csv:"installment_id"`
}

// ReadTransactionsFile reads an import file from disk.
func ReadTransactionsFile(path string) ([]domain.TransactionRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return ReadTransactions(file)
}

// ReadTransactions parses import rows in file order. A file with only a header yields no records.
func ReadTransactions(r io.Reader) ([]domain.TransactionRecord, error) {
	var rows []*TransactionRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return []domain.TransactionRecord{}, nil
		}
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	recs := make([]domain.TransactionRecord, 0, len(rows))
	for i, row := range rows {
		rec, err := row.toRecord()
		if err != nil {
			// header is line 1
			return nil, apperrors.NewAppError(apperrors.CodeValidation, fmt.Sprintf("line %d", i+2), err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func (row TransactionRow) toRecord() (domain.TransactionRecord, error) {
	var rec domain.TransactionRecord

	partyID, err := strconv.ParseInt(strings.TrimSpace(row.PartyID), 10, 64)
	if err != nil {
		return rec, fmt.Errorf("invalid party_id %q", row.PartyID)
	}
	date, err := time.Parse(time.DateOnly, strings.TrimSpace(row.Date))
	if err != nil {
		return rec, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", row.Date)
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(row.Amount))
	if err != nil {
		return rec, fmt.Errorf("invalid amount %q", row.Amount)
	}
	saleID, err := optionalID(row.SaleID)
	if err != nil {
		return rec, fmt.Errorf("invalid sale_id %q", row.SaleID)
	}
	installmentID, err := optionalID(row.InstallmentID)
	if err != nil {
		return rec, fmt.Errorf("invalid installment_id %q", row.InstallmentID)
	}

	return domain.TransactionRecord{
		PartyID:       partyID,
		Date:          date,
		Type:          domain.TransactionType(strings.TrimSpace(row.Type)),
		Amount:        amount,
		Description:   strings.TrimSpace(row.Description),
		SaleID:        saleID,
		InstallmentID: installmentID,
	}, nil
}

func optionalID(s string) (*int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
