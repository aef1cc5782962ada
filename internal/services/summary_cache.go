package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"facility-console/internal/maintenance"
	"facility-console/internal/repositories"
	"facility-console/pkg/metrics"
)

const summaryGenerationKey = "maintenance:summary:generation"

// SummaryCache keeps resolved maintenance summaries per equipment. Entries are
// keyed by a generation counter, so bumping the counter drops them all at once.
// A nil *SummaryCache is a valid, disabled cache.
type SummaryCache struct {
	repo    repositories.CacheRepositoryInterface
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewSummaryCache(repo repositories.CacheRepositoryInterface, ttl time.Duration, m *metrics.Metrics, logger *zap.Logger) *SummaryCache {
	return &SummaryCache{repo: repo, ttl: ttl, metrics: m, logger: logger}
}

// Get looks the summary up. On a miss it returns the key the freshly resolved
// summary should be stored under; the key is empty when the cache is unusable.
// The key is taken before the caller reads the collections, so a concurrent
// invalidation orphans the entry instead of letting stale data in.
func (c *SummaryCache) Get(ctx context.Context, equipmentID int, today string) (maintenance.Summary, string, bool) {
	var summary maintenance.Summary
	if c == nil {
		return summary, "", false
	}
	key, err := c.key(ctx, equipmentID, today)
	if err != nil {
		c.logger.Warn("summary cache generation unreadable", zap.Error(err))
		c.count("error")
		return summary, "", false
	}
	raw, err := c.repo.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, repositories.ErrCacheMiss) {
			c.logger.Warn("summary cache read failed", zap.Error(err))
			c.count("error")
			return summary, "", false
		}
		c.count("miss")
		return summary, key, false
	}
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		c.count("error")
		return summary, key, false
	}
	c.count("hit")
	return summary, key, true
}

func (c *SummaryCache) Put(ctx context.Context, key string, summary maintenance.Summary) {
	if c == nil || key == "" {
		return
	}
	payload, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := c.repo.Set(ctx, key, payload, c.ttl); err != nil {
		c.logger.Warn("summary cache write failed", zap.Error(err))
	}
}

// Invalidate drops every cached summary.
func (c *SummaryCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	if _, err := c.repo.Incr(ctx, summaryGenerationKey); err != nil {
		c.logger.Warn("summary cache invalidation failed", zap.Error(err))
	}
}

// The date is part of the key because last/next move when the day changes.
func (c *SummaryCache) key(ctx context.Context, equipmentID int, today string) (string, error) {
	gen := "0"
	raw, err := c.repo.Get(ctx, summaryGenerationKey)
	switch {
	case err == nil:
		if _, perr := strconv.ParseInt(raw, 10, 64); perr != nil {
			return "", fmt.Errorf("summary cache generation %q: %w", raw, perr)
		}
		gen = raw
	case !errors.Is(err, repositories.ErrCacheMiss):
		return "", err
	}
	return fmt.Sprintf("maintenance:summary:%s:%s:%d", gen, today, equipmentID), nil
}

func (c *SummaryCache) count(result string) {
	if c.metrics != nil {
		c.metrics.SummaryCacheHits.WithLabelValues(result).Inc()
	}
}
