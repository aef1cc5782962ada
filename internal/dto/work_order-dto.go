package dto

type CreateWorkOrderDTO struct {
	Title         string   `json:"title"          validate:"required,max=200"`
	Equipment     string   `json:"equipment"      validate:"required"`
	EquipmentName string   `json:"equipment_name"`
	Description   string   `json:"description"`
	RequestDate   string   `json:"request_date"   validate:"omitempty,iso_date"`
	DueDate       string   `json:"due_date"       validate:"required,iso_date"`
	Assignees     []string `json:"assignees"      validate:"required,min=1,dive,required"`
	Types         []string `json:"types"          validate:"required,min=1,dive,oneof=mechanical electrical control"`
}

// UpdateWorkOrderDTO is a partial update: nil fields stay as they are.
type UpdateWorkOrderDTO struct {
	Title          *string   `json:"title,omitempty"           validate:"omitempty,min=1,max=200"`
	Equipment      *string   `json:"equipment,omitempty"       validate:"omitempty,min=1"`
	EquipmentName  *string   `json:"equipment_name,omitempty"`
	Description    *string   `json:"description,omitempty"`
	RequestDate    *string   `json:"request_date,omitempty"    validate:"omitempty,iso_date"`
	DueDate        *string   `json:"due_date,omitempty"        validate:"omitempty,iso_date"`
	Status         *string   `json:"status,omitempty"          validate:"omitempty,oneof=waiting in_progress done delayed"`
	WorkResult     *string   `json:"work_result,omitempty"`
	CompletionNote *string   `json:"completion_note,omitempty"`
	Assignees      []string  `json:"assignees,omitempty"       validate:"omitempty,min=1,dive,required"`
	Types          []string  `json:"types,omitempty"           validate:"omitempty,min=1,dive,oneof=mechanical electrical control"`
	Attachments    *[]string `json:"attachments,omitempty"`
}

type ChangeStatusDTO struct {
	Status         string  `json:"status"                    validate:"required,oneof=waiting in_progress done delayed"`
	WorkResult     *string `json:"work_result,omitempty"`
	CompletionNote *string `json:"completion_note,omitempty"`
}

type WorkOrderFilter struct {
	Status    string
	Equipment string
	Assignee  string
	Type      string
	Search    string
}

type NextCodeDTO struct {
	Code string `json:"code"`
}
