package dto

type CreateScheduleDTO struct {
	ScheduleNumber string   `json:"schedule_number" validate:"required,year_code"`
	Title          string   `json:"title"           validate:"required,max=200"`
	Date           string   `json:"date"            validate:"required,iso_date"`
	Types          []string `json:"types"           validate:"omitempty,dive,oneof=mechanical electrical control"`
	Equipment      string   `json:"equipment"`
	EquipmentName  string   `json:"equipment_name"`
	Assignees      []string `json:"assignees"       validate:"omitempty,dive,required"`
	Description    string   `json:"description"`
}

type UpdateScheduleDTO struct {
	ScheduleNumber *string  `json:"schedule_number,omitempty" validate:"omitempty,year_code"`
	Title          *string  `json:"title,omitempty"           validate:"omitempty,min=1,max=200"`
	Date           *string  `json:"date,omitempty"            validate:"omitempty,iso_date"`
	Types          []string `json:"types,omitempty"           validate:"omitempty,dive,oneof=mechanical electrical control"`
	Equipment      *string  `json:"equipment,omitempty"`
	EquipmentName  *string  `json:"equipment_name,omitempty"`
	Assignees      []string `json:"assignees,omitempty"       validate:"omitempty,dive,required"`
	Description    *string  `json:"description,omitempty"`
}

type ScheduleFilter struct {
	From      string
	To        string
	Equipment string
}
