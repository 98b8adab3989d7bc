package services

import (
	portsrepo "github.com/SscSPs/plot_receivables/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/plot_receivables/internal/core/ports/services"
	"github.com/SscSPs/plot_receivables/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// cache may be nil, in which case reports are always computed from the store.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, cache portsrepo.ReportCache) *portssvc.ServiceContainer {
	reportingOpts := []ReportingServiceOption{}
	if cache != nil {
		reportingOpts = append(reportingOpts, WithReportCache(cache, cfg.ReportCacheTTL))
	}

	return &portssvc.ServiceContainer{
		Ledger:       NewLedgerService(repos.TransactionRepo, repos.PartyRepo),
		Reporting:    NewReportingService(repos.TransactionRepo, repos.PartyRepo, reportingOpts...),
		Transactions: NewTransactionService(repos.TransactionRepo, repos.PartyRepo),
	}
}
