package services

import (
	"testing"
	"time"

	"github.com/SscSPs/plot_receivables/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestReportCacheKey(t *testing.T) {
	party := int64(42)
	v := domain.TransactionSetVersion{Count: 3, MaxTransactionID: 17}
	from := time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "receivables:aging:all:2024-01-31:v3-17", reportCacheKey("aging", nil, v, to))
	assert.Equal(t, "receivables:statement:42:2024-01-01:2024-01-31:v3-17", reportCacheKey("statement", &party, v, from, to))

	bumped := domain.TransactionSetVersion{Count: 4, MaxTransactionID: 18}
	assert.NotEqual(t, reportCacheKey("aging", nil, v, to), reportCacheKey("aging", nil, bumped, to))
}
