package maintenance

import "facility-console/internal/entities"

// EquipmentKey is the single place where the loose equipment join lives: a work
// order or schedule belongs to a unit when its equipment field equals the unit's
// Name or its equipment_name field equals the unit's Model. Blank key parts never
// match.
type EquipmentKey struct {
	Name  string `json:"name"`
	Model string `json:"model"`
}

func KeyOf(e entities.Equipment) EquipmentKey {
	return EquipmentKey{Name: e.Name, Model: e.Model}
}

func (k EquipmentKey) Matches(equipment, equipmentName string) bool {
	return (k.Name != "" && equipment == k.Name) || (k.Model != "" && equipmentName == k.Model)
}

func (k EquipmentKey) MatchesWorkOrder(w entities.WorkOrder) bool {
	return k.Matches(w.Equipment, w.EquipmentName)
}

func (k EquipmentKey) MatchesSchedule(s entities.Schedule) bool {
	return k.Matches(s.Equipment, s.EquipmentName)
}

func (k EquipmentKey) String() string {
	return k.Name + "|" + k.Model
}
