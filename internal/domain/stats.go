package domain

import "github.com/shopspring/decimal"

type Stats struct {
	TotalEvents   int             `json:"total_events"`
	TotalBookings int             `json:"total_bookings"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}
