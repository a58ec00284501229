package settings

type UpdateUserSettingsRequest struct {
	PreferredStudio      string `json:"preferred_studio"`
	NotificationsEnabled *bool  `json:"notifications_enabled"`
	EmailNotifications   *bool  `json:"email_notifications"`
	SMSNotifications     *bool  `json:"sms_notifications"`
	MarketingEmails      *bool  `json:"marketing_emails"`
	DarkMode             *bool  `json:"dark_mode"`
}
