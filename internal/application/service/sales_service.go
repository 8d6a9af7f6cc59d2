package service

import (
	"context"
	"sort"
	"time"

	"github.com/davidkuria/brewpos-api/internal/domain/entity"
	"github.com/davidkuria/brewpos-api/internal/domain/repository"
)

const (
	// ReportsSourceLocal aggregates in-process over all finalized orders.
	ReportsSourceLocal = "local"
	// ReportsSourceDatabase delegates aggregation to SQL.
	ReportsSourceDatabase = "database"
)

// SalesService produces report-ready groupings from finalized orders.
// Aggregation either runs locally over the raw order list or is pushed
// down to the analytics repository; the outputs are equivalent and
// callers cannot tell which path served them.
type SalesService struct {
	orderRepo     repository.OrderRepository
	analyticsRepo repository.AnalyticsRepository
	source        string
}

// NewSalesService creates a new sales service. source selects the
// aggregation path; anything other than "database" means local.
func NewSalesService(orderRepo repository.OrderRepository, analyticsRepo repository.AnalyticsRepository, source string) *SalesService {
	return &SalesService{
		orderRepo:     orderRepo,
		analyticsRepo: analyticsRepo,
		source:        source,
	}
}

func (s *SalesService) useDatabase() bool {
	return s.source == ReportsSourceDatabase && s.analyticsRepo != nil
}

// DailySummary returns revenue, discount and item count for the given
// local calendar day.
func (s *SalesService) DailySummary(ctx context.Context, day time.Time) (*repository.DailySummaryResult, error) {
	if s.useDatabase() {
		return s.analyticsRepo.GetDailySummary(ctx, day)
	}
	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return DailySummary(orders, day), nil
}

// PreviousDaySummary returns yesterday's summary, or nil when there
// were no sales yesterday. An empty previous day is a state, not an
// error.
func (s *SalesService) PreviousDaySummary(ctx context.Context) (*repository.DailySummaryResult, error) {
	yesterday := time.Now().AddDate(0, 0, -1)
	summary, err := s.DailySummary(ctx, yesterday)
	if err != nil {
		return nil, err
	}
	if summary == nil || summary.BillCount == 0 {
		return nil, nil
	}
	return summary, nil
}

// ItemWiseSales returns per-item quantity and revenue, sorted by
// quantity descending.
func (s *SalesService) ItemWiseSales(ctx context.Context) ([]repository.ItemSalesResult, error) {
	if s.useDatabase() {
		return s.analyticsRepo.GetItemWiseSales(ctx)
	}
	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return ItemWiseSales(orders), nil
}

// DateWiseSales returns per-date bill counts and revenue.
func (s *SalesService) DateWiseSales(ctx context.Context, ascending bool) ([]repository.DateSalesResult, error) {
	if s.useDatabase() {
		return s.analyticsRepo.GetDateWiseSales(ctx, ascending)
	}
	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return DateWiseSales(orders, ascending), nil
}

// MonthlySales returns per-month revenue and order counts, newest
// month first.
func (s *SalesService) MonthlySales(ctx context.Context) ([]repository.MonthSalesResult, error) {
	if s.useDatabase() {
		return s.analyticsRepo.GetMonthlySales(ctx)
	}
	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return MonthlySales(orders), nil
}

// --- pure aggregation over in-memory order lists ---

const dateLayout = "2006-01-02"

func orderDate(o *entity.Order) string {
	return o.Time().Format(dateLayout)
}

// DailySummary filters orders to the reference local calendar day and
// sums totals, discounts and line-item quantities. All sums are exact
// integer arithmetic on minor currency units.
func DailySummary(orders []entity.Order, day time.Time) *repository.DailySummaryResult {
	ref := day.Format(dateLayout)
	summary := &repository.DailySummaryResult{Date: ref}
	for i := range orders {
		o := &orders[i]
		if orderDate(o) != ref {
			continue
		}
		summary.Revenue += o.Total
		summary.Discount += o.Discount
		summary.BillCount++
		for _, item := range o.Items {
			summary.ItemCount += item.Quantity
		}
	}
	return summary
}

// ItemWiseSales groups lines by item name, accumulating quantity sold
// and revenue (price x quantity). Results sort by quantity descending;
// ties keep first-encounter order.
//
// Grouping by name rather than menu item ID merges distinct items that
// share a name. Deliberately kept as observed behavior.
func ItemWiseSales(orders []entity.Order) []repository.ItemSalesResult {
	index := make(map[string]int)
	results := make([]repository.ItemSalesResult, 0)
	for i := range orders {
		for _, item := range orders[i].Items {
			pos, ok := index[item.Name]
			if !ok {
				pos = len(results)
				index[item.Name] = pos
				results = append(results, repository.ItemSalesResult{Name: item.Name})
			}
			results[pos].Quantity += item.Quantity
			results[pos].Revenue += item.Price * item.Quantity
		}
	}
	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Quantity > results[b].Quantity
	})
	return results
}

// DateWiseSales groups orders by calendar date, accumulating bill
// count and revenue. Dates compare as plain strings, which for the
// YYYY-MM-DD layout is chronological.
func DateWiseSales(orders []entity.Order, ascending bool) []repository.DateSalesResult {
	index := make(map[string]int)
	results := make([]repository.DateSalesResult, 0)
	for i := range orders {
		o := &orders[i]
		date := orderDate(o)
		pos, ok := index[date]
		if !ok {
			pos = len(results)
			index[date] = pos
			results = append(results, repository.DateSalesResult{Date: date})
		}
		results[pos].BillCount++
		results[pos].Revenue += o.Total
	}
	sort.Slice(results, func(a, b int) bool {
		if ascending {
			return results[a].Date < results[b].Date
		}
		return results[a].Date > results[b].Date
	})
	return results
}

// MonthlySales groups orders by calendar month (YYYY-MM), accumulating
// revenue and order count, sorted descending by month key.
func MonthlySales(orders []entity.Order) []repository.MonthSalesResult {
	index := make(map[string]int)
	results := make([]repository.MonthSalesResult, 0)
	for i := range orders {
		o := &orders[i]
		month := o.Time().Format("2006-01")
		pos, ok := index[month]
		if !ok {
			pos = len(results)
			index[month] = pos
			results = append(results, repository.MonthSalesResult{Month: month})
		}
		results[pos].OrderCount++
		results[pos].Revenue += o.Total
	}
	sort.Slice(results, func(a, b int) bool {
		return results[a].Month > results[b].Month
	})
	return results
}
