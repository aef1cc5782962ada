package entities

import (
	"slices"
	"strings"
)

type WorkOrderStatus string

const (
	StatusWaiting    WorkOrderStatus = "waiting"
	StatusInProgress WorkOrderStatus = "in_progress"
	StatusDone       WorkOrderStatus = "done"
	StatusDelayed    WorkOrderStatus = "delayed"
)

func (s WorkOrderStatus) Valid() bool {
	switch s {
	case StatusWaiting, StatusInProgress, StatusDone, StatusDelayed:
		return true
	}
	return false
}

// Work types a work order or schedule can be tagged with.
const (
	WorkTypeMechanical = "mechanical"
	WorkTypeElectrical = "electrical"
	WorkTypeControl    = "control"
)

// WorkOrder is a maintenance task against one equipment unit. ID is the
// year-scoped code ("25-3"). DueDate doubles as the maintenance date.
type WorkOrder struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Equipment      string          `json:"equipment"`
	EquipmentName  string          `json:"equipment_name"`
	Description    string          `json:"description"`
	WorkResult     string          `json:"work_result"`
	RequestDate    string          `json:"request_date"`
	DueDate        string          `json:"due_date"`
	Status         WorkOrderStatus `json:"status"`
	Assignees      []string        `json:"assignees"`
	Types          []string        `json:"types"`
	CompletionNote string          `json:"completion_note"`
	Attachments    []string        `json:"attachments"`
}

// HasWorkResult reports whether a non-blank work result is recorded.
func (w WorkOrder) HasWorkResult() bool {
	return strings.TrimSpace(w.WorkResult) != ""
}

// Clone returns a copy that shares no slices with w.
func (w WorkOrder) Clone() WorkOrder {
	w.Assignees = slices.Clone(w.Assignees)
	w.Types = slices.Clone(w.Types)
	w.Attachments = slices.Clone(w.Attachments)
	return w
}
