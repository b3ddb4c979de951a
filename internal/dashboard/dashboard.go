package dashboard

import "github.com/shopspring/decimal"

// Stats is the whole-table order aggregate shown on the dashboard. It is
// never scoped by the order list's period filter.
type Stats struct {
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	TotalOrders     int             `json:"totalOrders"`
	CompletedOrders int             `json:"completedOrders"`
	ConfirmedOrders int             `json:"confirmedOrders"`
	CancelledOrders int             `json:"cancelledOrders"`
}
