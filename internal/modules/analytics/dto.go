package analytics

// Summary is the admin dashboard aggregate over all bookings.
type Summary struct {
	TotalRevenue       float64 `json:"total_revenue"`
	MonthlyRevenue     float64 `json:"monthly_revenue"`
	AvgBookingValue    float64 `json:"avg_booking_value"`
	RevenueGrowth      float64 `json:"revenue_growth"`
	TotalBookings      int64   `json:"total_bookings"`
	CompletedThisMonth int64   `json:"completed_this_month"`
	CancellationRate   float64 `json:"cancellation_rate"`
	PeakHours          string  `json:"peak_hours"`
}

type BookingAnalytics struct {
	TotalBookings     int64   `json:"total_bookings"`
	CompletedBookings int64   `json:"completed_bookings"`
	CancellationRate  float64 `json:"cancellation_rate"`
	AvgBookingValue   float64 `json:"avg_booking_value"`
	PeakHours         string  `json:"peak_hours"`
}

type RevenueReport struct {
	TotalRevenue         float64 `json:"total_revenue"`
	RevenueGrowth        float64 `json:"revenue_growth"`
	AvgRevenuePerBooking float64 `json:"avg_revenue_per_booking"`
	MostProfitableStudio string  `json:"most_profitable_studio"`
	EquipmentRevenue     float64 `json:"equipment_revenue"`
}

type EquipmentUsage struct {
	MostUsedEquipment    string  `json:"most_used_equipment"`
	EquipmentUtilization int     `json:"equipment_utilization"`
	MaintenanceRequired  int     `json:"maintenance_required"`
	RevenuePerEquipment  float64 `json:"revenue_per_equipment"`
	AvailabilityRate     int     `json:"availability_rate"`
}

type ClientActivity struct {
	TotalClients         int64   `json:"total_clients"`
	ActiveClients        int64   `json:"active_clients"`
	NewClients           int64   `json:"new_clients"`
	RepeatClientRate     int     `json:"repeat_client_rate"`
	AvgBookingsPerClient float64 `json:"avg_bookings_per_client"`
}

type StaffPerformance struct {
	TotalStaff         int64   `json:"total_staff"`
	AvgBookingsHandled float64 `json:"avg_bookings_handled"`
	ResponseTime       string  `json:"response_time"`
	ClientSatisfaction int     `json:"client_satisfaction"`
	EfficiencyRating   int     `json:"efficiency_rating"`
}
