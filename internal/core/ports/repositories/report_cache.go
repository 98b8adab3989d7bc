package repositories

import (
	"context"
	"time"
)

// ReportCache stores computed reports under opaque keys.
// A miss is reported as (false, nil); errors are reserved for backend failures.
type ReportCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}
