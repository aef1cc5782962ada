package dto

import (
	"facility-console/internal/entities"
	"facility-console/internal/maintenance"
)

type CreateEquipmentDTO struct {
	Name           string            `json:"name"         validate:"required,max=100"`
	Model          string            `json:"model"        validate:"max=100"`
	Manufacturer   string            `json:"manufacturer"`
	Status         string            `json:"status"       validate:"omitempty,oneof=normal needs_inspection broken under_maintenance"`
	Location       string            `json:"location"`
	InstallDate    string            `json:"install_date" validate:"omitempty,iso_date"`
	Specifications map[string]string `json:"specifications"`
}

type UpdateEquipmentDTO struct {
	Name           *string           `json:"name,omitempty"         validate:"omitempty,min=1,max=100"`
	Model          *string           `json:"model,omitempty"        validate:"omitempty,max=100"`
	Manufacturer   *string           `json:"manufacturer,omitempty"`
	Status         *string           `json:"status,omitempty"       validate:"omitempty,oneof=normal needs_inspection broken under_maintenance"`
	Location       *string           `json:"location,omitempty"`
	InstallDate    *string           `json:"install_date,omitempty" validate:"omitempty,iso_date"`
	Specifications map[string]string `json:"specifications,omitempty"`
}

// EquipmentMaintenanceDTO is the equipment detail view: the unit plus its
// derived maintenance dates and history.
type EquipmentMaintenanceDTO struct {
	Equipment       entities.Equipment   `json:"equipment"`
	LastMaintenance maintenance.Date     `json:"last_maintenance"`
	NextMaintenance maintenance.Date     `json:"next_maintenance"`
	History         []entities.WorkOrder `json:"history,omitempty"`
}
