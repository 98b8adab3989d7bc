package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/plot_receivables/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP status codes.
func respondError(c *gin.Context, logger *slog.Logger, err error, failureMsg string) {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		msg := err.Error()
		if errors.As(err, &appErr) {
			msg = appErr.Message
		}
		logger.Warn("Rejected invalid request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Party not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "Party not found"})
	default:
		logger.Error(failureMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failureMsg})
	}
}
