package listeners

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"facility-console/internal/entities"
	"facility-console/internal/events"
	"facility-console/pkg/eventbus"
)

type recordingSender struct {
	mu       sync.Mutex
	messages []string
	chatIDs  []int64
}

func (r *recordingSender) SendMessage(_ context.Context, chatID int64, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.chatIDs = append(r.chatIDs, chatID)
	r.messages = append(r.messages, text)
	return nil
}

func TestStatusNotifier(t *testing.T) {
	sender := &recordingSender{}
	bus := eventbus.New(zap.NewNop())
	NewStatusNotifier(sender, -100, zap.NewNop()).Register(bus)

	bus.Publish(events.WorkOrderEvent{
		Kind: events.WorkOrderStatusChanged,
		WorkOrder: entities.WorkOrder{
			ID: "25-3", Title: "펌프 교체", Equipment: "급수펌프", Status: entities.StatusDone,
			WorkResult: "임펠러 교체", Assignees: []string{"김정비", "이전기"},
		},
		PreviousStatus: entities.StatusInProgress,
	})
	bus.Publish(events.WorkOrderEvent{
		Kind:      events.WorkOrderStatusChanged,
		WorkOrder: entities.WorkOrder{ID: "25-4", Status: entities.StatusInProgress},
	})
	// other events are not subscribed
	bus.Publish(events.WorkOrderEvent{
		Kind:      events.WorkOrderCreated,
		WorkOrder: entities.WorkOrder{ID: "25-5", Status: entities.StatusDone},
	})
	bus.Wait()

	sender.mu.Lock()
	defer sender.mu.Unlock()
	require.Len(t, sender.messages, 1)
	assert.Equal(t, int64(-100), sender.chatIDs[0])
	assert.Contains(t, sender.messages[0], "[완료] 25-3 펌프 교체")
	assert.Contains(t, sender.messages[0], "결과: 임펠러 교체")
	assert.Contains(t, sender.messages[0], "담당: 김정비, 이전기")
}

func TestStatusMessage_Delayed(t *testing.T) {
	text, ok := statusMessage(entities.WorkOrder{ID: "25-1", Title: "점검", Status: entities.StatusDelayed, DueDate: "2025-06-01"})
	require.True(t, ok)
	assert.Contains(t, text, "예정일: 2025-06-01")

	_, ok = statusMessage(entities.WorkOrder{Status: entities.StatusWaiting})
	assert.False(t, ok)
}
