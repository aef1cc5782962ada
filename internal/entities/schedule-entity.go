package entities

import "slices"

// Schedule is a calendar entry. Mirrors of work orders carry the work order's
// code in ScheduleNumber.
type Schedule struct {
	ID             int      `json:"id"`
	ScheduleNumber string   `json:"schedule_number"`
	Title          string   `json:"title"`
	Date           string   `json:"date"`
	Types          []string `json:"types"`
	Equipment      string   `json:"equipment"`
	EquipmentName  string   `json:"equipment_name"`
	Assignees      []string `json:"assignees"`
	Description    string   `json:"description"`
}

func (s *Schedule) GetID() int   { return s.ID }
func (s *Schedule) SetID(id int) { s.ID = id }

func (s Schedule) Clone() Schedule {
	s.Types = slices.Clone(s.Types)
	s.Assignees = slices.Clone(s.Assignees)
	return s
}
