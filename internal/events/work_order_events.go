package events

import "facility-console/internal/entities"

const (
	WorkOrderCreated       = "work_order.created"
	WorkOrderUpdated       = "work_order.updated"
	WorkOrderStatusChanged = "work_order.status_changed"
	WorkOrderDeleted       = "work_order.deleted"
)

// AllWorkOrderEvents lists every work order event name.
var AllWorkOrderEvents = []string{WorkOrderCreated, WorkOrderUpdated, WorkOrderStatusChanged, WorkOrderDeleted}

// WorkOrderEvent is published after a work order mutation has been applied.
type WorkOrderEvent struct {
	Kind           string
	WorkOrder      entities.WorkOrder
	PreviousStatus entities.WorkOrderStatus
	// SchedulesTouched is how many mirrored schedules changed with it.
	SchedulesTouched int
}

func (e WorkOrderEvent) Name() string { return e.Kind }
