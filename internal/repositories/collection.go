package repositories

import (
	"context"
	"slices"
	"sync"

	"go.uber.org/zap"

	"facility-console/internal/store"
	"facility-console/pkg/metrics"
)

// Collection is the authoritative in-memory copy of one stored collection.
// Every Replace re-saves the whole slice. A failed save is logged and counted
// but the in-memory state stays as replaced; nothing is retried.
type Collection[T any] struct {
	key     string
	store   store.Store
	logger  *zap.Logger
	metrics *metrics.Metrics

	mu    sync.RWMutex
	items []T
}

// NewCollection loads key from st, falling back to an empty collection when
// nothing is stored or the stored document cannot be read.
func NewCollection[T any](ctx context.Context, key string, st store.Store, logger *zap.Logger, m *metrics.Metrics) *Collection[T] {
	c := &Collection[T]{
		key:     key,
		store:   st,
		logger:  logger.With(zap.String("collection", key)),
		metrics: m,
		items:   []T{},
	}

	var loaded []T
	found, err := st.Load(ctx, key, &loaded)
	switch {
	case err != nil:
		c.logger.Error("load collection failed, starting empty", zap.Error(err))
		c.countFailure("load")
	case found && loaded != nil:
		c.items = loaded
	}
	return c
}

func (c *Collection[T]) Key() string { return c.key }

// cloner is implemented by entities holding slices or maps.
type cloner[T any] interface {
	Clone() T
}

// deepClone copies items including the nested slices and maps of every entity
// that implements cloner.
func deepClone[T any](items []T) []T {
	out := slices.Clone(items)
	for i := range out {
		if c, ok := any(out[i]).(cloner[T]); ok {
			out[i] = c.Clone()
		}
	}
	return out
}

// All returns a deep copy of the items; callers may modify it freely.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return deepClone(c.items)
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Replace swaps in items and saves them. The returned error is informational:
// the in-memory state has already changed.
func (c *Collection[T]) Replace(ctx context.Context, items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if items == nil {
		items = []T{}
	}
	c.items = deepClone(items)

	if err := c.store.Save(ctx, c.key, c.items); err != nil {
		c.logger.Error("save collection failed, keeping in-memory state", zap.Error(err), zap.Int("items", len(c.items)))
		c.countFailure("save")
		return err
	}
	return nil
}

func (c *Collection[T]) countFailure(op string) {
	if c.metrics != nil {
		c.metrics.StoreFailures.WithLabelValues(c.key, op).Inc()
	}
}
