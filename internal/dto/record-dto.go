package dto

import (
	"github.com/aarondl/null/v8"

	"facility-console/internal/entities"
)

// RecordInput is a create/replace payload for a flat record.
type RecordInput[T any] interface {
	ToEntity() T
}

type PersonnelDTO struct {
	Name       string `json:"name"       validate:"required,max=50"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Field      string `json:"field"      validate:"omitempty,oneof=mechanical electrical control"`
	Phone      string `json:"phone"      validate:"max=20"`
	Email      string `json:"email"      validate:"omitempty,email"`
	HireDate   string `json:"hire_date"  validate:"omitempty,iso_date"`
	Active     *bool  `json:"active"`
}

func (d PersonnelDTO) ToEntity() entities.Personnel {
	active := true
	if d.Active != nil {
		active = *d.Active
	}
	return entities.Personnel{
		Name:       d.Name,
		Position:   d.Position,
		Department: d.Department,
		Field:      d.Field,
		Phone:      d.Phone,
		Email:      d.Email,
		HireDate:   d.HireDate,
		Active:     active,
	}
}

type AnnouncementDTO struct {
	Title     string `json:"title"     validate:"required,max=200"`
	Content   string `json:"content"   validate:"required"`
	Author    string `json:"author"`
	Date      string `json:"date"      validate:"omitempty,iso_date"`
	Important bool   `json:"important"`
}

func (d AnnouncementDTO) ToEntity() entities.Announcement {
	return entities.Announcement{
		Title:     d.Title,
		Content:   d.Content,
		Author:    d.Author,
		Date:      d.Date,
		Important: d.Important,
	}
}

type AttendanceDTO struct {
	PersonnelID int         `json:"personnel_id" validate:"required,gt=0"`
	Date        string      `json:"date"         validate:"required,iso_date"`
	Status      string      `json:"status"       validate:"required,oneof=present late absent leave"`
	CheckIn     null.String `json:"check_in"     validate:"omitempty,clock"`
	CheckOut    null.String `json:"check_out"    validate:"omitempty,clock"`
	Note        null.String `json:"note"`
}

func (d AttendanceDTO) ToEntity() entities.Attendance {
	return entities.Attendance{
		PersonnelID: d.PersonnelID,
		Date:        d.Date,
		Status:      entities.AttendanceStatus(d.Status),
		CheckIn:     d.CheckIn,
		CheckOut:    d.CheckOut,
		Note:        d.Note,
	}
}

type DailyReportDTO struct {
	Date     string   `json:"date"     validate:"required,iso_date"`
	Shift    string   `json:"shift"    validate:"required,oneof=day night"`
	Author   string   `json:"author"   validate:"required"`
	Workers  []string `json:"workers"  validate:"omitempty,dive,required"`
	Content  string   `json:"content"  validate:"required"`
	Issues   string   `json:"issues"`
	Handover string   `json:"handover"`
}

func (d DailyReportDTO) ToEntity() entities.DailyReport {
	return entities.DailyReport{
		Date:     d.Date,
		Shift:    d.Shift,
		Author:   d.Author,
		Workers:  d.Workers,
		Content:  d.Content,
		Issues:   d.Issues,
		Handover: d.Handover,
	}
}
