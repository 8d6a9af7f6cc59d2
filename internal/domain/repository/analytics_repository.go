package repository

import (
	"context"
	"time"
)

// DailySummaryResult is the revenue/volume summary for one calendar day.
// Money values are integer minor currency units.
type DailySummaryResult struct {
	Date      string `json:"date"` // YYYY-MM-DD, local calendar day
	Revenue   int64  `json:"revenue"`
	Discount  int64  `json:"discount"`
	ItemCount int64  `json:"item_count"`
	BillCount int64  `json:"bill_count"`
}

// ItemSalesResult is the accumulated sales for one menu item.
//
// Grouping is by display name, not menu item ID: two distinct items
// that share a name merge into one row. Kept as observed behavior
// pending a product decision on the intended key.
type ItemSalesResult struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
	Revenue  int64  `json:"revenue"`
}

// DateSalesResult is the per-calendar-date bill count and revenue.
type DateSalesResult struct {
	Date      string `json:"date"` // YYYY-MM-DD
	BillCount int64  `json:"bill_count"`
	Revenue   int64  `json:"revenue"`
}

// MonthSalesResult is the per-month revenue and order count.
type MonthSalesResult struct {
	Month      string `json:"month"` // YYYY-MM
	OrderCount int64  `json:"order_count"`
	Revenue    int64  `json:"revenue"`
}

// AnalyticsRepository is the SQL-side aggregation variant of the sales
// reports. The sales service is agnostic to whether aggregation runs
// here or in-process over the raw order list; outputs are equivalent.
type AnalyticsRepository interface {
	GetDailySummary(ctx context.Context, day time.Time) (*DailySummaryResult, error)
	GetItemWiseSales(ctx context.Context) ([]ItemSalesResult, error)
	GetDateWiseSales(ctx context.Context, ascending bool) ([]DateSalesResult, error)
	GetMonthlySales(ctx context.Context) ([]MonthSalesResult, error)
}
