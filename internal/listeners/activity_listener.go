package listeners

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"facility-console/internal/events"
	"facility-console/pkg/eventbus"
	"facility-console/pkg/metrics"
)

// ActivityListener writes the work order lifecycle into the log and metrics.
type ActivityListener struct {
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func NewActivityListener(logger *zap.Logger, m *metrics.Metrics) *ActivityListener {
	return &ActivityListener{logger: logger.Named("activity"), metrics: m}
}

func (l *ActivityListener) Register(bus *eventbus.Bus) {
	for _, name := range events.AllWorkOrderEvents {
		bus.Subscribe(name, l.Handle)
	}
}

func (l *ActivityListener) Handle(_ context.Context, event eventbus.Event) error {
	e, ok := event.(events.WorkOrderEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}

	fields := []zap.Field{
		zap.String("work_order", e.WorkOrder.ID),
		zap.String("equipment", e.WorkOrder.Equipment),
		zap.String("status", string(e.WorkOrder.Status)),
		zap.Int("schedules_touched", e.SchedulesTouched),
	}
	if e.Kind == events.WorkOrderStatusChanged {
		fields = append(fields, zap.String("previous_status", string(e.PreviousStatus)))
	}
	l.logger.Info(e.Kind, fields...)

	if l.metrics != nil {
		l.metrics.WorkOrderEvents.WithLabelValues(e.Kind).Inc()
	}
	return nil
}
