package entities

import "slices"

type DailyReport struct {
	ID       int      `json:"id"`
	Date     string   `json:"date"`
	Shift    string   `json:"shift"` // day | night
	Author   string   `json:"author"`
	Workers  []string `json:"workers"`
	Content  string   `json:"content"`
	Issues   string   `json:"issues"`
	Handover string   `json:"handover"`
}

func (d *DailyReport) GetID() int   { return d.ID }
func (d *DailyReport) SetID(id int) { d.ID = id }

func (d DailyReport) Clone() DailyReport {
	d.Workers = slices.Clone(d.Workers)
	return d
}
