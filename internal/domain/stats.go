package domain

import "github.com/shopspring/decimal"

// DashboardSummary is the global, on-demand aggregate shown on the admin
// dashboard. Calendar windows (month, day) follow the database server clock.
type DashboardSummary struct {
	TotalCampaigns     int64           `json:"total_campaigns"`
	ActiveCampaigns    int64           `json:"active_campaigns"`
	TotalSubmissions   int64           `json:"total_submissions"`
	CompletedDonations int64           `json:"completed_donations"`
	PendingDonations   int64           `json:"pending_donations"`
	TotalRaised        decimal.Decimal `json:"total_raised"`
	MonthDonations     int64           `json:"month_donations"`
	MonthRaised        decimal.Decimal `json:"month_raised"`
	TodayDonations     int64           `json:"today_donations"`
	TodayAmount        decimal.Decimal `json:"today_amount"`
	WeekDonations      int64           `json:"week_donations"`
}
