package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"facility-console/internal/dto"
	"facility-console/internal/maintenance"
	"facility-console/pkg/clock"
)

func fixedClock() clock.Clock { return clock.OnDate("2025-06-10") }

func newExportFixture(t *testing.T) (*ExportService, *WorkOrderService) {
	t.Helper()
	ctx := context.Background()
	repos := newRepos(t)
	clk := fixedClock()
	workOrders := NewWorkOrderService(repos, clk, nil, nil, nil, zap.NewNop())
	equipment := NewEquipmentService(repos, maintenance.NewResolver(clk), nil, zap.NewNop())

	_, err := equipment.CreateEquipment(ctx, dto.CreateEquipmentDTO{Name: "터빈", Model: "T-100"})
	require.NoError(t, err)
	done, err := workOrders.CreateWorkOrder(ctx, turbineOrder("지난 점검", "2025-06-01"))
	require.NoError(t, err)
	_, err = workOrders.ChangeStatus(ctx, done.ID, dto.ChangeStatusDTO{Status: "done", WorkResult: strPtr("완료")})
	require.NoError(t, err)
	_, err = workOrders.CreateWorkOrder(ctx, turbineOrder("다음 점검", "2025-06-30"))
	require.NoError(t, err)

	return NewExportService(workOrders, repos, maintenance.NewResolver(clk), zap.NewNop()), workOrders
}

func TestExportService_FileNameUsesConsoleDate(t *testing.T) {
	svc, _ := newExportFixture(t)
	assert.Equal(t, "work_orders_2025-06-10.xlsx", svc.FileName("xlsx"))
	assert.Equal(t, "work_orders_2025-06-10.csv", svc.FileName("csv"))
}

func TestExportService_CSV(t *testing.T) {
	svc, _ := newExportFixture(t)

	var buf bytes.Buffer
	require.NoError(t, svc.WriteWorkOrdersCSV(context.Background(), dto.WorkOrderFilter{}, &buf))

	body := strings.TrimPrefix(buf.String(), "\ufeff")
	records, err := csv.NewReader(strings.NewReader(body)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, workOrderHeaders, records[0])

	// newest code first
	assert.Equal(t, "25-2", records[1][0])
	assert.Equal(t, "대기", records[1][4])
	assert.Equal(t, "기계", records[1][5])
	assert.Equal(t, "2025-06-01", records[1][11])
	assert.Equal(t, "2025-06-30", records[1][12])
	assert.Equal(t, "완료", records[2][4])
}

func TestExportService_XLSX(t *testing.T) {
	svc, _ := newExportFixture(t)

	var buf bytes.Buffer
	require.NoError(t, svc.WriteWorkOrdersXLSX(context.Background(), dto.WorkOrderFilter{Status: "done"}, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("작업지시")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "25-1", rows[1][0])

	equipmentRows, err := f.GetRows("설비")
	require.NoError(t, err)
	require.Len(t, equipmentRows, 2)
	assert.Equal(t, "터빈", equipmentRows[1][0])
	assert.Equal(t, "2025-06-01", equipmentRows[1][6])
	assert.Equal(t, "2025-06-30", equipmentRows[1][7])
}
