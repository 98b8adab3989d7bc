package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/plot_receivables/internal/app"
	"github.com/SscSPs/plot_receivables/internal/cli"
	portssvc "github.com/SscSPs/plot_receivables/internal/core/ports/services"
	"github.com/SscSPs/plot_receivables/internal/platform/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Logs go to stderr so that report output on stdout stays clean
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	factory := func(ctx context.Context) (*portssvc.ServiceContainer, func(), error) {
		application, err := app.New(ctx, cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		return application.Services, application.Close, nil
	}

	root := cli.NewRootCmd(factory, cli.WithStatementDefaultDays(cfg.StatementDefaultDays))
	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
