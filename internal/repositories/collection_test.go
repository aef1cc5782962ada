package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"facility-console/internal/entities"
	"facility-console/internal/store"
	"facility-console/pkg/metrics"
)

type brokenStore struct{ err error }

func (s brokenStore) Load(context.Context, string, any) (bool, error) { return false, s.err }
func (s brokenStore) Save(context.Context, string, any) error         { return s.err }
func (s brokenStore) Close() error                                    { return nil }

func TestCollection_LoadsStoredItems(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	require.NoError(t, st.Save(ctx, store.KeyEquipment, []entities.Equipment{{ID: 1, Name: "터빈"}}))

	c := NewCollection[entities.Equipment](ctx, store.KeyEquipment, st, zap.NewNop(), metrics.New())
	require.Equal(t, 1, c.Len())
	assert.Equal(t, "터빈", c.All()[0].Name)
}

func TestCollection_ReplacePersistsWholeCollection(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	c := NewCollection[entities.Schedule](ctx, store.KeySchedules, st, zap.NewNop(), metrics.New())

	require.NoError(t, c.Replace(ctx, []entities.Schedule{{ID: 1}, {ID: 2}}))

	reloaded := NewCollection[entities.Schedule](ctx, store.KeySchedules, st, zap.NewNop(), metrics.New())
	assert.Equal(t, c.All(), reloaded.All())
}

func TestCollection_SaveFailureKeepsMemoryState(t *testing.T) {
	ctx := context.Background()
	m := metrics.New()
	c := NewCollection[entities.Schedule](ctx, store.KeySchedules, brokenStore{err: errors.New("offline")}, zap.NewNop(), m)

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreFailures.WithLabelValues(store.KeySchedules, "load")))

	err := c.Replace(ctx, []entities.Schedule{{ID: 9}})
	assert.Error(t, err)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, 9, c.All()[0].ID)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreFailures.WithLabelValues(store.KeySchedules, "save")))
}

func TestCollection_AllReturnsCopy(t *testing.T) {
	ctx := context.Background()
	c := NewCollection[entities.Announcement](ctx, store.KeyAnnouncements, store.NewMemoryStore(), zap.NewNop(), nil)
	require.NoError(t, c.Replace(ctx, []entities.Announcement{{ID: 1, Title: "원본"}}))

	items := c.All()
	items[0].Title = "변경"
	assert.Equal(t, "원본", c.All()[0].Title)
}

func TestCollection_AllCopiesNestedFields(t *testing.T) {
	ctx := context.Background()
	orders := NewCollection[entities.WorkOrder](ctx, store.KeyWorkOrders, store.NewMemoryStore(), zap.NewNop(), nil)
	stored := []entities.WorkOrder{{ID: "25-1", Assignees: []string{"김정비"}, Types: []string{"mechanical"}, Attachments: []string{"a.png"}}}
	require.NoError(t, orders.Replace(ctx, stored))

	// the caller's slice is not retained
	stored[0].Assignees[0] = "외부"

	items := orders.All()
	items[0].Assignees[0] = "변경"
	items[0].Types[0] = "electrical"
	items[0].Attachments[0] = "b.png"

	got := orders.All()[0]
	assert.Equal(t, []string{"김정비"}, got.Assignees)
	assert.Equal(t, []string{"mechanical"}, got.Types)
	assert.Equal(t, []string{"a.png"}, got.Attachments)

	equipment := NewCollection[entities.Equipment](ctx, store.KeyEquipment, store.NewMemoryStore(), zap.NewNop(), nil)
	require.NoError(t, equipment.Replace(ctx, []entities.Equipment{{ID: 1, Name: "터빈", Specifications: map[string]string{"출력": "50MW"}}}))
	e := equipment.All()
	e[0].Specifications["출력"] = "0MW"
	assert.Equal(t, "50MW", equipment.All()[0].Specifications["출력"])
}

func TestMemoryCacheRepository(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryCacheRepository()
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }

	_, err := r.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, r.Set(ctx, "k", "v", time.Minute))
	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	now = now.Add(2 * time.Minute)
	_, err = r.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)

	n, err := r.Incr(ctx, "gen")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	n, _ = r.Incr(ctx, "gen")
	assert.Equal(t, int64(2), n)

	require.NoError(t, r.Del(ctx, "gen"))
	_, err = r.Get(ctx, "gen")
	assert.ErrorIs(t, err, ErrCacheMiss)
}
