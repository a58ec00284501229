package equipment

import "studiobook/internal/domain"

type CreateEquipmentRequest struct {
	Name           string  `json:"name" binding:"required"`
	Category       string  `json:"category"`
	Description    string  `json:"description"`
	PricePerHour   float64 `json:"price_per_hour" binding:"gte=0"`
	IsAvailable    bool    `json:"is_available"`
	MaintenanceDue int64   `json:"maintenance_due"`
}

type UpdateEquipmentRequest struct {
	Name           string  `json:"name" binding:"required"`
	Category       string  `json:"category"`
	Description    string  `json:"description"`
	PricePerHour   float64 `json:"price_per_hour" binding:"gte=0"`
	IsAvailable    bool    `json:"is_available"`
	MaintenanceDue int64   `json:"maintenance_due"`
}

type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

type SetMaintenanceRequest struct {
	MaintenanceDue int64 `json:"maintenance_due"`
}

// EquipmentView decorates a catalog item with the derived maintenance flags
// the staff catalog surfaces.
type EquipmentView struct {
	domain.Equipment
	NeedsService    bool `json:"needs_service"`
	MaintenanceSoon bool `json:"maintenance_soon"`
}
