package domain

import "time"

// UserSettings holds the per-user preferences persisted in user_settings.
type UserSettings struct {
	UserID               string    `json:"user_id"`
	PreferredStudio      Studio    `json:"preferred_studio,omitempty"`
	NotificationsEnabled bool      `json:"notifications_enabled"`
	EmailNotifications   bool      `json:"email_notifications"`
	SMSNotifications     bool      `json:"sms_notifications"`
	MarketingEmails      bool      `json:"marketing_emails"`
	DarkMode             bool      `json:"dark_mode"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// DefaultUserSettings mirrors the defaults a fresh account starts with.
func DefaultUserSettings(userID string) UserSettings {
	return UserSettings{
		UserID:               userID,
		NotificationsEnabled: true,
		EmailNotifications:   true,
	}
}

// SystemConfig is the singleton operational configuration, persisted under the
// fixed key "main" in system_config.
type SystemConfig struct {
	StudioAEnabled bool   `json:"studio_a_enabled"`
	StudioBEnabled bool   `json:"studio_b_enabled"`
	StudioCEnabled bool   `json:"studio_c_enabled"`
	StudioDEnabled bool   `json:"studio_d_enabled"`
	OperatingHours string `json:"operating_hours"`

	MaxBookingHours      int  `json:"max_booking_hours"`
	AdvanceBookingDays   int  `json:"advance_booking_days"`
	AutoConfirmBookings  bool `json:"auto_confirm_bookings"`
	RequireStaffApproval bool `json:"require_staff_approval"`

	PaymentRequired    bool    `json:"payment_required"`
	SecurityDeposit    float64 `json:"security_deposit"`
	AcceptCards        bool    `json:"accept_cards"`
	AcceptBankTransfer bool    `json:"accept_bank_transfer"`
	AcceptCash         bool    `json:"accept_cash"`

	EmailNotifications bool `json:"email_notifications"`
	SMSAlerts          bool `json:"sms_alerts"`
	MaintenanceAlerts  bool `json:"maintenance_alerts"`
	BookingReminders   bool `json:"booking_reminders"`

	MaintenanceMode       bool `json:"maintenance_mode"`
	AllowNewRegistrations bool `json:"allow_new_registrations"`
}

// StudioEnabled reports whether bookings are accepted for the studio.
func (c SystemConfig) StudioEnabled(s Studio) bool {
	switch s {
	case StudioA:
		return c.StudioAEnabled
	case StudioB:
		return c.StudioBEnabled
	case StudioC:
		return c.StudioCEnabled
	case StudioD:
		return c.StudioDEnabled
	}
	return false
}

// DefaultSystemConfig returns the configuration used until an admin saves one.
func DefaultSystemConfig() SystemConfig {
	return SystemConfig{
		StudioAEnabled:        true,
		StudioBEnabled:        true,
		StudioCEnabled:        true,
		StudioDEnabled:        true,
		OperatingHours:        "9:00 AM - 10:00 PM",
		MaxBookingHours:       8,
		AdvanceBookingDays:    30,
		AutoConfirmBookings:   false,
		RequireStaffApproval:  true,
		PaymentRequired:       true,
		SecurityDeposit:       100.0,
		AcceptCards:           true,
		AcceptBankTransfer:    true,
		AcceptCash:            true,
		EmailNotifications:    true,
		SMSAlerts:             false,
		MaintenanceAlerts:     true,
		BookingReminders:      true,
		MaintenanceMode:       false,
		AllowNewRegistrations: true,
	}
}
