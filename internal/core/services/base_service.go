package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/plot_receivables/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		// Return a default logger if not found in context
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// logUnknownTypes emits a debug line when some transactions will be skipped by the ledger engine.
func (s *BaseService) logUnknownTypes(ctx context.Context, partyID *int64, unknown int) {
	if unknown == 0 {
		return
	}
	args := []any{slog.Int("unknown_type_count", unknown)}
	if partyID != nil {
		args = append(args, slog.Int64("party_id", *partyID))
	}
	s.LogDebug(ctx, "Ignoring transactions with unrecognised type", args...)
}
