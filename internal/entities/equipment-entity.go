package entities

import "maps"

type EquipmentStatus string

const (
	EquipmentNormal           EquipmentStatus = "normal"
	EquipmentNeedsInspection  EquipmentStatus = "needs_inspection"
	EquipmentBroken           EquipmentStatus = "broken"
	EquipmentUnderMaintenance EquipmentStatus = "under_maintenance"
)

// Equipment is identified to work orders and schedules by Name or Model.
type Equipment struct {
	ID             int               `json:"id"`
	Name           string            `json:"name"`
	Model          string            `json:"model"`
	Manufacturer   string            `json:"manufacturer"`
	Status         EquipmentStatus   `json:"status"`
	Location       string            `json:"location"`
	InstallDate    string            `json:"install_date"`
	Specifications map[string]string `json:"specifications"`
}

func (e *Equipment) GetID() int   { return e.ID }
func (e *Equipment) SetID(id int) { e.ID = id }

func (e Equipment) Clone() Equipment {
	e.Specifications = maps.Clone(e.Specifications)
	return e
}
