package services

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"facility-console/internal/maintenance"
	"facility-console/internal/repositories"
	"facility-console/pkg/metrics"
)

func TestSummaryCache_NilIsDisabled(t *testing.T) {
	ctx := context.Background()
	var cache *SummaryCache

	_, key, ok := cache.Get(ctx, 1, "2025-06-10")
	assert.False(t, ok)
	assert.Empty(t, key)
	assert.NotPanics(t, func() {
		cache.Put(ctx, "k", maintenance.Summary{})
		cache.Invalidate(ctx)
	})
}

func TestSummaryCache_GetPutInvalidate(t *testing.T) {
	ctx := context.Background()
	m := metrics.New()
	cache := NewSummaryCache(repositories.NewMemoryCacheRepository(), time.Minute, m, zap.NewNop())

	_, key, ok := cache.Get(ctx, 1, "2025-06-10")
	require.False(t, ok)
	require.NotEmpty(t, key)

	summary := maintenance.Summary{
		Equipment:       maintenance.EquipmentKey{Name: "터빈", Model: "T-100"},
		LastMaintenance: "2025-06-01",
		NextMaintenance: maintenance.NoRecord,
	}
	cache.Put(ctx, key, summary)

	got, _, ok := cache.Get(ctx, 1, "2025-06-10")
	require.True(t, ok)
	assert.Equal(t, summary.LastMaintenance, got.LastMaintenance)
	assert.Equal(t, summary.Equipment, got.Equipment)

	// another day is another entry
	_, _, ok = cache.Get(ctx, 1, "2025-06-11")
	assert.False(t, ok)

	cache.Invalidate(ctx)
	_, newKey, ok := cache.Get(ctx, 1, "2025-06-10")
	assert.False(t, ok)
	assert.NotEqual(t, key, newKey)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SummaryCacheHits.WithLabelValues("hit")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.SummaryCacheHits.WithLabelValues("miss")))
}

func TestSummaryCache_StaleKeyAfterInvalidate(t *testing.T) {
	ctx := context.Background()
	cache := NewSummaryCache(repositories.NewMemoryCacheRepository(), time.Minute, nil, zap.NewNop())

	_, key, _ := cache.Get(ctx, 7, "2025-06-10")
	// a mutation lands between the lookup and the store
	cache.Invalidate(ctx)
	cache.Put(ctx, key, maintenance.Summary{LastMaintenance: "2025-01-01"})

	_, _, ok := cache.Get(ctx, 7, "2025-06-10")
	assert.False(t, ok)
}
