package listeners

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"facility-console/internal/entities"
	"facility-console/internal/events"
	"facility-console/pkg/eventbus"
	"facility-console/pkg/telegram"
)

// StatusNotifier posts to a maintenance chat when a work order is finished or
// falls behind.
type StatusNotifier struct {
	sender telegram.ServiceInterface
	chatID int64
	logger *zap.Logger
}

func NewStatusNotifier(sender telegram.ServiceInterface, chatID int64, logger *zap.Logger) *StatusNotifier {
	return &StatusNotifier{sender: sender, chatID: chatID, logger: logger}
}

func (n *StatusNotifier) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.WorkOrderStatusChanged, n.Handle)
}

func (n *StatusNotifier) Handle(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.WorkOrderEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}
	text, notify := statusMessage(e.WorkOrder)
	if !notify {
		return nil
	}
	if err := n.sender.SendMessage(ctx, n.chatID, text); err != nil {
		return fmt.Errorf("notify %s: %w", e.WorkOrder.ID, err)
	}
	n.logger.Debug("status notification sent", zap.String("work_order", e.WorkOrder.ID))
	return nil
}

func statusMessage(wo entities.WorkOrder) (string, bool) {
	var b strings.Builder
	switch wo.Status {
	case entities.StatusDone:
		fmt.Fprintf(&b, "[완료] %s %s\n설비: %s\n결과: %s", wo.ID, wo.Title, wo.Equipment, wo.WorkResult)
	case entities.StatusDelayed:
		fmt.Fprintf(&b, "[지연] %s %s\n설비: %s\n예정일: %s", wo.ID, wo.Title, wo.Equipment, wo.DueDate)
	default:
		return "", false
	}
	if len(wo.Assignees) > 0 {
		b.WriteString("\n담당: " + strings.Join(wo.Assignees, ", "))
	}
	return b.String(), true
}
