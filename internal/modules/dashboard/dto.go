package dashboard

import (
	"studiobook/internal/domain"
	"studiobook/internal/modules/analytics"
	"studiobook/internal/modules/equipment"
)

// ClientDashboard is what a client sees on the home screen.
type ClientDashboard struct {
	UpcomingBookings []domain.Booking `json:"upcoming_bookings"`
	TotalSpent       float64          `json:"total_spent"`
	PendingPayments  int              `json:"pending_payments"`
}

// StaffDashboard is the operational view for staff.
type StaffDashboard struct {
	TodayBookings     []domain.Booking          `json:"today_bookings"`
	PendingCount      int64                     `json:"pending_count"`
	MaintenanceAlerts []equipment.EquipmentView `json:"maintenance_alerts"`
}

// AdminDashboard adds the business aggregates and user counts.
type AdminDashboard struct {
	Summary      *analytics.Summary `json:"summary"`
	TotalClients int64              `json:"total_clients"`
	TotalStaff   int64              `json:"total_staff"`
	TotalAdmins  int64              `json:"total_admins"`
}
