package response_models

type DashboardStats struct {
	ActiveClients       int     `json:"activeClients"`
	MonthlyRevenue      float64 `json:"monthlyRevenue"`
	TodayAppointments   int     `json:"todayAppointments"`
	ActiveSubscriptions int     `json:"activeSubscriptions"`
	SubscriptionRate    int     `json:"subscriptionRate"`
}

type ServiceAnalytics struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Bookings   int    `json:"bookings"`
	Percentage int    `json:"percentage"`
}

type DashboardReport struct {
	Stats            DashboardStats     `json:"stats"`
	ServiceAnalytics []ServiceAnalytics `json:"serviceAnalytics"`
	TodayBookings    []BookingResponse  `json:"todayBookings"`
}
