package services

import (
	"context"
	"time"

	"github.com/SscSPs/plot_receivables/internal/core/domain"
)

// ReportingService defines operations for generating receivables reports
type ReportingService interface {
	// ReceivablesAging generates the aging report as of a date, optionally for one party
	ReceivablesAging(ctx context.Context, asOf time.Time, partyID *int64) (*domain.AgingReport, error)

	// CustomerStatement generates a party's statement for the inclusive [from, to] window
	CustomerStatement(ctx context.Context, partyID int64, from, to time.Time) (*domain.Statement, error)
}
