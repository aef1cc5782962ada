package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"facility-console/internal/dto"
	"facility-console/internal/entities"
	"facility-console/internal/maintenance"
	"facility-console/internal/repositories"
)

type ExportServiceInterface interface {
	WriteWorkOrdersXLSX(ctx context.Context, filter dto.WorkOrderFilter, w io.Writer) error
	WriteWorkOrdersCSV(ctx context.Context, filter dto.WorkOrderFilter, w io.Writer) error
	FileName(format string) string
}

type ExportService struct {
	workOrders WorkOrderServiceInterface
	repos      *repositories.Repositories
	resolver   *maintenance.Resolver
	logger     *zap.Logger
}

func NewExportService(
	workOrders WorkOrderServiceInterface,
	repos *repositories.Repositories,
	resolver *maintenance.Resolver,
	logger *zap.Logger,
) *ExportService {
	return &ExportService{workOrders: workOrders, repos: repos, resolver: resolver, logger: logger}
}

var workOrderHeaders = []string{
	"번호", "제목", "설비", "설비 모델", "상태", "유형", "담당자", "요청일", "예정일",
	"작업 결과", "완료 메모", "최근 정비일", "다음 정비일",
}

var equipmentHeaders = []string{
	"설비명", "모델", "제조사", "상태", "위치", "설치일", "최근 정비일", "다음 정비일",
}

var statusLabels = map[entities.WorkOrderStatus]string{
	entities.StatusWaiting:    "대기",
	entities.StatusInProgress: "진행중",
	entities.StatusDone:       "완료",
	entities.StatusDelayed:    "지연",
}

var equipmentStatusLabels = map[entities.EquipmentStatus]string{
	entities.EquipmentNormal:           "정상",
	entities.EquipmentNeedsInspection:  "점검 필요",
	entities.EquipmentBroken:           "고장",
	entities.EquipmentUnderMaintenance: "정비중",
}

var workTypeLabels = map[string]string{
	entities.WorkTypeMechanical: "기계",
	entities.WorkTypeElectrical: "전기",
	entities.WorkTypeControl:    "제어",
}

// FileName names a download with the console's today, e.g. work_orders_2025-06-10.xlsx.
func (s *ExportService) FileName(format string) string {
	return fmt.Sprintf("work_orders_%s.%s", s.resolver.Today(), format)
}

// WriteWorkOrdersXLSX writes a workbook with a work order sheet and an equipment sheet.
func (s *ExportService) WriteWorkOrdersXLSX(ctx context.Context, filter dto.WorkOrderFilter, w io.Writer) error {
	orders := s.workOrders.GetWorkOrders(ctx, filter)
	rows := s.workOrderRows(orders)

	f := excelize.NewFile()
	defer f.Close()

	sheet := "작업지시"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	if err := writeSheet(f, sheet, workOrderHeaders, rows, style); err != nil {
		return err
	}
	_ = f.SetColWidth(sheet, "B", "B", 30)
	_ = f.SetColWidth(sheet, "J", "K", 40)
	_ = f.SetColWidth(sheet, "L", "M", 14)

	equipmentSheet := "설비"
	if _, err := f.NewSheet(equipmentSheet); err != nil {
		return err
	}
	if err := writeSheet(f, equipmentSheet, equipmentHeaders, s.equipmentRows(), style); err != nil {
		return err
	}
	_ = f.SetColWidth(equipmentSheet, "A", "F", 16)

	s.logger.Info("work orders exported", zap.String("format", "xlsx"), zap.Int("rows", len(rows)))
	return f.Write(w)
}

func (s *ExportService) WriteWorkOrdersCSV(ctx context.Context, filter dto.WorkOrderFilter, w io.Writer) error {
	orders := s.workOrders.GetWorkOrders(ctx, filter)

	// BOM so spreadsheet apps pick UTF-8 for the Korean headers.
	if _, err := io.WriteString(w, "\ufeff"); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(workOrderHeaders); err != nil {
		return err
	}
	for _, row := range s.workOrderRows(orders) {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = fmt.Sprint(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	s.logger.Info("work orders exported", zap.String("format", "csv"), zap.Int("rows", len(orders)))
	return nil
}

func (s *ExportService) workOrderRows(orders []entities.WorkOrder) [][]interface{} {
	equipment := s.repos.Equipment.All()
	allOrders := s.repos.WorkOrders.All()
	schedules := s.repos.Schedules.All()
	today := s.resolver.Today()

	rows := make([][]interface{}, 0, len(orders))
	for _, wo := range orders {
		key := keyForWorkOrder(wo, equipment)
		summary := maintenance.Summarize(key, allOrders, schedules, today)
		rows = append(rows, []interface{}{
			wo.ID, wo.Title, wo.Equipment, wo.EquipmentName,
			label(statusLabels, wo.Status), joinLabels(wo.Types), strings.Join(wo.Assignees, ", "),
			wo.RequestDate, wo.DueDate, wo.WorkResult, wo.CompletionNote,
			dateCell(summary.LastMaintenance), dateCell(summary.NextMaintenance),
		})
	}
	return rows
}

func (s *ExportService) equipmentRows() [][]interface{} {
	equipment := s.repos.Equipment.All()
	orders := s.repos.WorkOrders.All()
	schedules := s.repos.Schedules.All()
	today := s.resolver.Today()

	rows := make([][]interface{}, 0, len(equipment))
	for _, e := range equipment {
		summary := maintenance.Summarize(maintenance.KeyOf(e), orders, schedules, today)
		rows = append(rows, []interface{}{
			e.Name, e.Model, e.Manufacturer, label(equipmentStatusLabels, e.Status), e.Location, e.InstallDate,
			dateCell(summary.LastMaintenance), dateCell(summary.NextMaintenance),
		})
	}
	return rows
}

// keyForWorkOrder finds the registered unit the work order belongs to, falling
// back to the work order's own equipment fields.
func keyForWorkOrder(wo entities.WorkOrder, equipment []entities.Equipment) maintenance.EquipmentKey {
	for _, e := range equipment {
		key := maintenance.KeyOf(e)
		if key.MatchesWorkOrder(wo) {
			return key
		}
	}
	return maintenance.EquipmentKey{Name: wo.Equipment, Model: wo.EquipmentName}
}

func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]interface{}, headerStyle int) error {
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func dateCell(d maintenance.Date) string {
	if d.IsNone() {
		return "-"
	}
	return string(d)
}

func label[K comparable](labels map[K]string, k K) string {
	if l, ok := labels[k]; ok {
		return l
	}
	return fmt.Sprint(k)
}

func joinLabels(types []string) string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = label(workTypeLabels, t)
	}
	return strings.Join(out, ", ")
}
