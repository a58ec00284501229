package booking

type CreateBookingRequest struct {
	Studio       string   `json:"studio" binding:"required"`
	Date         int64    `json:"date"`
	StartTime    string   `json:"start_time" binding:"required"`
	EndTime      string   `json:"end_time" binding:"required"`
	EquipmentIDs []string `json:"equipment_ids"`

	// ClientID is filled from the token for clients; staff may book on
	// behalf of another client.
	ClientID string `json:"client_id"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
