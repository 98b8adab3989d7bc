package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/plot_receivables/internal/apperrors"
	"github.com/SscSPs/plot_receivables/internal/core/domain"
	"github.com/SscSPs/plot_receivables/internal/core/ledger"
	portsrepo "github.com/SscSPs/plot_receivables/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/plot_receivables/internal/core/ports/services"
)

const (
	reportKindAging     = "aging"
	reportKindStatement = "statement"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	txnRepo   portsrepo.TransactionRepositoryReader
	partyRepo portsrepo.PartyRepository
	cache     portsrepo.ReportCache
	cacheTTL  time.Duration
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportCache enables caching of computed reports. A nil cache leaves caching disabled.
func WithReportCache(cache portsrepo.ReportCache, ttl time.Duration) ReportingServiceOption {
	return func(s *reportingService) {
		s.cache = cache
		s.cacheTTL = ttl
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(txnRepo portsrepo.TransactionRepositoryReader, partyRepo portsrepo.PartyRepository, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		txnRepo:   txnRepo,
		partyRepo: partyRepo,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// ReceivablesAging generates the receivables aging report as of a specific date
func (s *reportingService) ReceivablesAging(ctx context.Context, asOf time.Time, partyID *int64) (*domain.AgingReport, error) {
	asOf = domain.DateOnly(asOf)

	if partyID != nil {
		if _, err := s.partyRepo.FindPartyByID(ctx, *partyID); err != nil {
			s.LogError(ctx, err, "Failed to find party for aging report", slog.Int64("party_id", *partyID))
			return nil, fmt.Errorf("failed to find party %d: %w", *partyID, err)
		}
	}

	key, cached := "", &domain.AgingReport{}
	if s.cache != nil {
		key = s.cacheKey(ctx, reportKindAging, partyID, asOf)
		if key != "" && s.readCache(ctx, key, cached) {
			return cached, nil
		}
	}

	txns, err := s.txnRepo.ListTransactionsAsOf(ctx, asOf, partyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve transactions for aging report",
			slog.String("asOf", asOf.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve transactions for aging report: %w", err)
	}
	s.logUnknownTypes(ctx, partyID, ledger.CountUnknownTypes(txns))

	rows := ledger.ComputeAgingReport(txns, asOf, partyID)
	if err := s.attachPartyNames(ctx, rows); err != nil {
		return nil, err
	}

	report := &domain.AgingReport{
		AsOf:        asOf,
		PartyFilter: partyID,
		Rows:        rows,
		Totals:      ledger.SumAging(rows),
	}
	s.writeCache(ctx, key, report)

	s.LogInfo(ctx, "Receivables aging report generated successfully",
		slog.String("asOf", asOf.Format(time.RFC3339)),
		slog.Int("row_count", len(rows)),
		slog.String("total_outstanding", report.Totals.TotalOutstanding.String()))
	return report, nil
}

// CustomerStatement generates a party's statement for an inclusive date window
func (s *reportingService) CustomerStatement(ctx context.Context, partyID int64, from, to time.Time) (*domain.Statement, error) {
	from, to = domain.DateOnly(from), domain.DateOnly(to)
	if from.After(to) {
		err := apperrors.NewAppError(apperrors.CodeValidation, "fromDate must not be after toDate", nil)
		s.LogError(ctx, err, "Invalid statement window",
			slog.String("from", from.Format(time.RFC3339)),
			slog.String("to", to.Format(time.RFC3339)))
		return nil, err
	}

	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find party for statement", slog.Int64("party_id", partyID))
		return nil, fmt.Errorf("failed to find party %d: %w", partyID, err)
	}

	key, cached := "", &domain.Statement{}
	if s.cache != nil {
		key = s.cacheKey(ctx, reportKindStatement, &partyID, from, to)
		if key != "" && s.readCache(ctx, key, cached) {
			return cached, nil
		}
	}

	txns, err := s.txnRepo.ListTransactionsByParty(ctx, partyID, domain.TransactionFilter{To: &to})
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve transactions for statement",
			slog.Int64("party_id", partyID),
			slog.String("to", to.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve transactions for statement: %w", err)
	}
	s.logUnknownTypes(ctx, &partyID, ledger.CountUnknownTypes(txns))

	stmt := ledger.BuildStatement(*party, txns, from, to)
	s.writeCache(ctx, key, &stmt)

	s.LogInfo(ctx, "Customer statement generated successfully",
		slog.Int64("party_id", partyID),
		slog.String("from", from.Format(time.RFC3339)),
		slog.String("to", to.Format(time.RFC3339)),
		slog.Int("line_count", len(stmt.Lines)))
	return &stmt, nil
}

// attachPartyNames fills PartyName on each aging row. Rows whose party is missing keep an empty name.
func (s *reportingService) attachPartyNames(ctx context.Context, rows []domain.AgingBucket) error {
	if len(rows) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.PartyID)
	}

	parties, err := s.partyRepo.FindPartiesByIDs(ctx, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve parties for aging report", slog.Int("party_count", len(ids)))
		return fmt.Errorf("failed to retrieve parties for aging report: %w", err)
	}
	for i := range rows {
		if p, ok := parties[rows[i].PartyID]; ok {
			rows[i].PartyName = p.Name
		}
	}
	return nil
}

// cacheKey returns "" when the transaction set version cannot be read; the report is then computed uncached.
func (s *reportingService) cacheKey(ctx context.Context, kind string, partyID *int64, dates ...time.Time) string {
	version, err := s.txnRepo.GetTransactionSetVersion(ctx, partyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to read transaction set version, skipping report cache", slog.String("report", kind))
		return ""
	}
	return reportCacheKey(kind, partyID, version, dates...)
}

func (s *reportingService) readCache(ctx context.Context, key string, dest any) bool {
	found, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		s.LogError(ctx, err, "Report cache read failed", slog.String("cache_key", key))
		return false
	}
	if found {
		s.LogDebug(ctx, "Report served from cache", slog.String("cache_key", key))
	}
	return found
}

func (s *reportingService) writeCache(ctx context.Context, key string, value any) {
	if s.cache == nil || key == "" {
		return
	}
	if err := s.cache.Set(ctx, key, value, s.cacheTTL); err != nil {
		s.LogError(ctx, err, "Report cache write failed", slog.String("cache_key", key))
	}
}
