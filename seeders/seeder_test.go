package seeders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"facility-console/internal/entities"
	"facility-console/internal/repositories"
	"facility-console/internal/store"
	"facility-console/pkg/clock"
	"facility-console/pkg/metrics"
)

func TestSeedDemo(t *testing.T) {
	ctx := context.Background()
	repos := repositories.NewRepositories(ctx, store.NewMemoryStore(), zap.NewNop(), metrics.New())
	clk := clock.OnDate("2025-06-10")

	require.NoError(t, SeedDemo(ctx, repos, clk, zap.NewNop()))

	assert.Equal(t, len(equipmentData), repos.Equipment.Len())
	assert.Equal(t, len(personnelData), repos.Personnel.Len())

	orders := repos.WorkOrders.All()
	require.Len(t, orders, len(workOrderData))
	schedules := repos.Schedules.All()
	require.Len(t, schedules, len(workOrderData))

	byTitle := map[string]entities.WorkOrder{}
	for _, wo := range orders {
		byTitle[wo.Title] = wo
	}
	done := byTitle["터빈 베어링 점검"]
	assert.Equal(t, entities.StatusDone, done.Status)
	assert.Equal(t, "베어링 윤활유 교체 완료", done.WorkResult)
	assert.Equal(t, "2025-04-29", done.RequestDate)

	for _, s := range schedules {
		_, ok := byTitle[s.Title]
		assert.True(t, ok, "schedule %s should mirror a work order", s.ScheduleNumber)
	}

	// a second run leaves the data alone
	require.NoError(t, SeedDemo(ctx, repos, clk, zap.NewNop()))
	assert.Len(t, repos.WorkOrders.All(), len(workOrderData))
}
