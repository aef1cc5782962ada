package maintenance

import (
	"sort"

	"facility-console/internal/entities"
	"facility-console/pkg/clock"
)

// Date is a YYYY-MM-DD string or NoRecord.
type Date string

// NoRecord is returned when no qualifying work order or schedule exists.
const NoRecord Date = "none"

func (d Date) IsNone() bool { return d == NoRecord }

// Summary is the maintenance view of one equipment unit.
type Summary struct {
	Equipment       EquipmentKey         `json:"equipment"`
	LastMaintenance Date                 `json:"last_maintenance"`
	NextMaintenance Date                 `json:"next_maintenance"`
	History         []entities.WorkOrder `json:"history"`
}

// Resolver derives maintenance dates relative to the clock's today.
type Resolver struct {
	clock clock.Clock
}

func NewResolver(c clock.Clock) *Resolver {
	return &Resolver{clock: c}
}

func (r *Resolver) Today() string { return r.clock.Today() }

func (r *Resolver) Resolve(key EquipmentKey, orders []entities.WorkOrder, schedules []entities.Schedule) Summary {
	return Summarize(key, orders, schedules, r.clock.Today())
}

func Summarize(key EquipmentKey, orders []entities.WorkOrder, schedules []entities.Schedule, today string) Summary {
	return Summary{
		Equipment:       key,
		LastMaintenance: LastMaintenance(key, orders, schedules, today),
		NextMaintenance: NextMaintenance(key, orders, schedules, today),
		History:         History(key, orders),
	}
}

// History returns the unit's work orders, newest due date first.
func History(key EquipmentKey, orders []entities.WorkOrder) []entities.WorkOrder {
	history := make([]entities.WorkOrder, 0)
	for _, w := range orders {
		if key.MatchesWorkOrder(w) {
			history = append(history, w)
		}
	}
	sort.SliceStable(history, func(i, j int) bool {
		if history[i].DueDate != history[j].DueDate {
			return history[i].DueDate > history[j].DueDate
		}
		return CompareCodes(history[i].ID, history[j].ID) > 0
	})
	return history
}

// LastMaintenance is the latest date strictly before today among completed work
// orders and standalone schedules of the unit. A schedule mirroring a work order
// defers to that work order, so an unfinished order never counts through its mirror.
func LastMaintenance(key EquipmentKey, orders []entities.WorkOrder, schedules []entities.Schedule, today string) Date {
	mirrored := make(map[string]struct{}, len(orders))
	for _, w := range orders {
		mirrored[w.ID] = struct{}{}
	}

	last := ""
	for _, w := range orders {
		if !key.MatchesWorkOrder(w) || w.Status != entities.StatusDone {
			continue
		}
		if w.DueDate != "" && w.DueDate < today && w.DueDate > last {
			last = w.DueDate
		}
	}
	for _, s := range schedules {
		if !key.MatchesSchedule(s) {
			continue
		}
		if _, ok := mirrored[s.ScheduleNumber]; ok {
			continue
		}
		if s.Date != "" && s.Date < today && s.Date > last {
			last = s.Date
		}
	}
	if last == "" {
		return NoRecord
	}
	return Date(last)
}

// NextMaintenance is the earliest date on or after today among all work orders
// and schedules of the unit, whatever their status.
func NextMaintenance(key EquipmentKey, orders []entities.WorkOrder, schedules []entities.Schedule, today string) Date {
	next := ""
	consider := func(date string) {
		if date != "" && date >= today && (next == "" || date < next) {
			next = date
		}
	}
	for _, w := range orders {
		if key.MatchesWorkOrder(w) {
			consider(w.DueDate)
		}
	}
	for _, s := range schedules {
		if key.MatchesSchedule(s) {
			consider(s.Date)
		}
	}
	if next == "" {
		return NoRecord
	}
	return Date(next)
}

// CompareCodes orders "YY-N" codes numerically; unparsable codes sort by string.
func CompareCodes(a, b string) int {
	ya, na, okA := ParseCode(a)
	yb, nb, okB := ParseCode(b)
	if !okA || !okB {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}
	if ya != yb {
		if ya < yb {
			return -1
		}
		return 1
	}
	return na - nb
}
