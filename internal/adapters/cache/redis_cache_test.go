package cache

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/plot_receivables/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisReportCache_NilClientIsAlwaysEmpty(t *testing.T) {
	c := NewRedisReportCache(nil)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", domain.AgingReport{}, time.Minute))

	var report domain.AgingReport
	found, err := c.Get(ctx, "k", &report)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, c.Close())
}

func TestRedisReportCache_SetRejectsUnencodableValue(t *testing.T) {
	c := NewRedisReportCache(nil)
	err := c.Set(context.Background(), "k", make(chan int), time.Minute)
	assert.ErrorContains(t, err, "failed to encode value")
}

func TestNewRedisClient_InvalidURL(t *testing.T) {
	client, err := NewRedisClient(context.Background(), "http://not-redis")
	assert.Nil(t, client)
	assert.ErrorContains(t, err, "invalid redis url")
}
