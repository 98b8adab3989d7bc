// Package app wires the store, the report cache and the services from configuration.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/plot_receivables/internal/adapters/cache"
	portsrepo "github.com/SscSPs/plot_receivables/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/plot_receivables/internal/core/ports/services"
	"github.com/SscSPs/plot_receivables/internal/core/services"
	"github.com/SscSPs/plot_receivables/internal/platform/config"
	"github.com/SscSPs/plot_receivables/internal/repositories/database/pgsql"
	"github.com/SscSPs/plot_receivables/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App holds the long-lived resources shared by the server and the CLI.
type App struct {
	Config   *config.Config
	Pool     *pgxpool.Pool
	Services *portssvc.ServiceContainer

	reportCache *cache.RedisReportCache
}

// New connects to the database and, when configured, to Redis, then builds the services.
// A Redis connection failure is logged and the reports are served uncached.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}

	link := pgsql.PartyLinkDirect
	if cfg.LegacySchemaProbe {
		link, err = pgsql.DetectPartyLink(ctx, pool)
		if err != nil {
			database.ClosePgxPool(pool)
			return nil, fmt.Errorf("failed to detect transaction schema: %w", err)
		}
	}
	logger.Info("Transaction schema resolved", slog.String("party_link", link.String()))

	a := &App{Config: cfg, Pool: pool}

	var reportCache portsrepo.ReportCache
	if cfg.RedisURL != "" {
		client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Warn("Report cache unavailable, continuing without it", slog.String("error", err.Error()))
		} else {
			a.reportCache = cache.NewRedisReportCache(client)
			reportCache = a.reportCache
			logger.Info("Report cache enabled", slog.Duration("ttl", cfg.ReportCacheTTL))
		}
	}

	a.Services = services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(pool, link), reportCache)
	return a, nil
}

// Close releases the cache connection and the database pool.
func (a *App) Close() {
	if a.reportCache != nil {
		if err := a.reportCache.Close(); err != nil {
			slog.Error("Error closing report cache", slog.String("error", err.Error()))
		}
	}
	database.ClosePgxPool(a.Pool)
}
