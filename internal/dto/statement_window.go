package dto

import (
	"fmt"
	"strconv"
	"time"

	"github.com/SscSPs/plot_receivables/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

// StatementPeriods are the accepted values of the period query parameter, in days.
var StatementPeriods = []int{30, 60, 90}

// ValidateStatementPeriod is registered as the "statement_period" validation tag.
func ValidateStatementPeriod(fl validator.FieldLevel) bool {
	days, err := strconv.Atoi(fl.Field().String())
	if err != nil {
		return false
	}
	for _, p := range StatementPeriods {
		if days == p {
			return true
		}
	}
	return false
}

// RegisterValidators adds the custom validation tags used by the request DTOs.
func RegisterValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("statement_period", ValidateStatementPeriod); err != nil {
		return fmt.Errorf("failed to register statement_period validator: %w", err)
	}
	return nil
}

// Window resolves the inclusive statement window. toDate defaults to today; fromDate defaults
// to Period days, or defaultDays, before toDate.
func (q StatementQuery) Window(today time.Time, defaultDays int) (from, to time.Time, err error) {
	to, err = parseDateOr(q.ToDate, today)
	if err != nil {
		return from, to, apperrors.NewAppError(apperrors.CodeValidation, "invalid toDate, use YYYY-MM-DD", err)
	}

	days := defaultDays
	if q.Period != "" {
		if days, err = strconv.Atoi(q.Period); err != nil {
			return from, to, apperrors.NewAppError(apperrors.CodeValidation, "invalid period", err)
		}
	}

	from, err = parseDateOr(q.FromDate, to.AddDate(0, 0, -days))
	if err != nil {
		return from, to, apperrors.NewAppError(apperrors.CodeValidation, "invalid fromDate, use YYYY-MM-DD", err)
	}

	if from.After(to) {
		return from, to, apperrors.NewAppError(apperrors.CodeValidation, "fromDate must be before or equal to toDate", nil)
	}
	return from, to, nil
}
