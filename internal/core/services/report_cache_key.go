package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/SscSPs/plot_receivables/internal/core/domain"
)

const reportCacheKeyPrefix = "receivables"

// reportCacheKey identifies a report computed from one exact transaction set.
// Appending a transaction changes the version and therefore the key.
func reportCacheKey(kind string, partyID *int64, version domain.TransactionSetVersion, dates ...time.Time) string {
	party := "all"
	if partyID != nil {
		party = strconv.FormatInt(*partyID, 10)
	}
	key := fmt.Sprintf("%s:%s:%s", reportCacheKeyPrefix, kind, party)
	for _, d := range dates {
		key += ":" + domain.DateOnly(d).Format(time.DateOnly)
	}
	return fmt.Sprintf("%s:v%d-%d", key, version.Count, version.MaxTransactionID)
}
