package repositories

import (
	"context"

	"go.uber.org/zap"

	"facility-console/internal/entities"
	"facility-console/internal/store"
	"facility-console/pkg/metrics"
)

// Repositories bundles every collection the console keeps.
type Repositories struct {
	Personnel     *Collection[entities.Personnel]
	WorkOrders    *Collection[entities.WorkOrder]
	Schedules     *Collection[entities.Schedule]
	Equipment     *Collection[entities.Equipment]
	Announcements *Collection[entities.Announcement]
	Attendances   *Collection[entities.Attendance]
	DailyReports  *Collection[entities.DailyReport]
	Documents     *Collection[entities.Document]
	Sequences     *Collection[entities.Sequence]
}

func NewRepositories(ctx context.Context, st store.Store, logger *zap.Logger, m *metrics.Metrics) *Repositories {
	return &Repositories{
		Personnel:     NewCollection[entities.Personnel](ctx, store.KeyPersonnel, st, logger, m),
		WorkOrders:    NewCollection[entities.WorkOrder](ctx, store.KeyWorkOrders, st, logger, m),
		Schedules:     NewCollection[entities.Schedule](ctx, store.KeySchedules, st, logger, m),
		Equipment:     NewCollection[entities.Equipment](ctx, store.KeyEquipment, st, logger, m),
		Announcements: NewCollection[entities.Announcement](ctx, store.KeyAnnouncements, st, logger, m),
		Attendances:   NewCollection[entities.Attendance](ctx, store.KeyAttendances, st, logger, m),
		DailyReports:  NewCollection[entities.DailyReport](ctx, store.KeyDailyReports, st, logger, m),
		Documents:     NewCollection[entities.Document](ctx, store.KeyDocuments, st, logger, m),
		Sequences:     NewCollection[entities.Sequence](ctx, store.KeySequences, st, logger, m),
	}
}
