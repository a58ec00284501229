package domain

import "time"

const maintenanceSoonWindow = 7 * 24 * time.Hour

// Equipment is a rentable item with an hourly rate. MaintenanceDue is an
// epoch-millisecond timestamp, zero meaning no maintenance is scheduled.
type Equipment struct {
	ID             string  `json:"id"`
	Name           string  `json:"name" validate:"required"`
	Category       string  `json:"category"`
	Description    string  `json:"description"`
	PricePerHour   float64 `json:"price_per_hour" validate:"gte=0"`
	IsAvailable    bool    `json:"is_available"`
	MaintenanceDue int64   `json:"maintenance_due"`
}

// NeedsService reports whether the maintenance date has already passed.
func (e Equipment) NeedsService(now time.Time) bool {
	return e.MaintenanceDue > 0 && e.MaintenanceDue < now.UnixMilli()
}

// MaintenanceSoon reports whether maintenance is due within the next week,
// the warning threshold the catalog surfaces to staff.
func (e Equipment) MaintenanceSoon(now time.Time) bool {
	return e.MaintenanceDue > 0 && e.MaintenanceDue < now.Add(maintenanceSoonWindow).UnixMilli()
}
