package entities

import "github.com/aarondl/null/v8"

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLeave   AttendanceStatus = "leave"
)

type Attendance struct {
	ID          int              `json:"id"`
	PersonnelID int              `json:"personnel_id"`
	Date        string           `json:"date"`
	Status      AttendanceStatus `json:"status"`
	CheckIn     null.String      `json:"check_in"`
	CheckOut    null.String      `json:"check_out"`
	Note        null.String      `json:"note"`
}

func (a *Attendance) GetID() int   { return a.ID }
func (a *Attendance) SetID(id int) { a.ID = id }
