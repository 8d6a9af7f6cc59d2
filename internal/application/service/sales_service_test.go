package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidkuria/brewpos-api/internal/domain/entity"
	"github.com/davidkuria/brewpos-api/internal/domain/repository"
)

type stubOrderRepo struct {
	orders []entity.Order
}

func (r *stubOrderRepo) Create(ctx context.Context, order *entity.Order) error { return nil }
func (r *stubOrderRepo) GetByID(ctx context.Context, id uint64) (*entity.Order, error) {
	return nil, nil
}
func (r *stubOrderRepo) Delete(ctx context.Context, id uint64) error { return nil }
func (r *stubOrderRepo) List(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	return r.orders, int64(len(r.orders)), nil
}
func (r *stubOrderRepo) ListAll(ctx context.Context) ([]entity.Order, error) {
	return r.orders, nil
}

func orderAt(ts time.Time, total, discount int64, items ...entity.OrderItem) entity.Order {
	return entity.Order{
		Total:     total,
		Discount:  discount,
		Timestamp: ts.UnixNano(),
		Finalized: true,
		Items:     items,
	}
}

func line(name string, qty, price int64) entity.OrderItem {
	return entity.OrderItem{Name: name, Quantity: qty, Price: price}
}

func TestDailySummary_FiltersToReferenceDay(t *testing.T) {
	day := time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local)
	orders := []entity.Order{
		orderAt(day, 10500, 500, line("Lemon Tea", 2, 2000), line("Black Coffee", 1, 4000)),
		orderAt(day.Add(5*time.Hour), 4000, 0, line("Black Coffee", 1, 4000)),
		orderAt(day.AddDate(0, 0, -1), 99999, 999, line("Veg Momos", 3, 8000)),
	}

	summary := DailySummary(orders, day)
	assert.Equal(t, "2026-03-14", summary.Date)
	assert.Equal(t, int64(14500), summary.Revenue)
	assert.Equal(t, int64(500), summary.Discount)
	assert.Equal(t, int64(4), summary.ItemCount)
	assert.Equal(t, int64(2), summary.BillCount)
}

func TestDailySummary_EmptyDay(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local)
	summary := DailySummary(nil, day)
	assert.Equal(t, int64(0), summary.Revenue)
	assert.Equal(t, int64(0), summary.BillCount)
}

func TestItemWiseSales_GroupsByNameAndSortsByQuantity(t *testing.T) {
	now := time.Now()
	orders := []entity.Order{
		orderAt(now, 0, 0, line("Lemon Tea", 2, 2000), line("Black Coffee", 1, 4000)),
		orderAt(now, 0, 0, line("Lemon Tea", 3, 2000)),
		orderAt(now, 0, 0, line("Veg Momos", 1, 8000)),
	}

	results := ItemWiseSales(orders)
	require.Len(t, results, 3)
	assert.Equal(t, "Lemon Tea", results[0].Name)
	assert.Equal(t, int64(5), results[0].Quantity)
	assert.Equal(t, int64(10000), results[0].Revenue)
	// Equal quantities keep first-encounter order
	assert.Equal(t, "Black Coffee", results[1].Name)
	assert.Equal(t, "Veg Momos", results[2].Name)
}

func TestItemWiseSales_SameNameDifferentOrdersMerges(t *testing.T) {
	now := time.Now()
	// Two lines with the same display name accumulate into one row even
	// when they came from different menu item IDs.
	orders := []entity.Order{
		orderAt(now, 0, 0, entity.OrderItem{MenuItemID: 1, Name: "Special", Quantity: 1, Price: 5000}),
		orderAt(now, 0, 0, entity.OrderItem{MenuItemID: 2, Name: "Special", Quantity: 2, Price: 3000}),
	}

	results := ItemWiseSales(orders)
	require.Len(t, results, 1)
	assert.Equal(t, int64(3), results[0].Quantity)
	assert.Equal(t, int64(11000), results[0].Revenue)
}

func TestDateWiseSales_SortsBothDirections(t *testing.T) {
	d1 := time.Date(2026, 3, 12, 10, 0, 0, 0, time.Local)
	d2 := time.Date(2026, 3, 14, 10, 0, 0, 0, time.Local)
	orders := []entity.Order{
		orderAt(d2, 4000, 0),
		orderAt(d1, 2000, 0),
		orderAt(d2, 6000, 0),
	}

	asc := DateWiseSales(orders, true)
	require.Len(t, asc, 2)
	assert.Equal(t, "2026-03-12", asc[0].Date)
	assert.Equal(t, int64(1), asc[0].BillCount)
	assert.Equal(t, "2026-03-14", asc[1].Date)
	assert.Equal(t, int64(2), asc[1].BillCount)
	assert.Equal(t, int64(10000), asc[1].Revenue)

	desc := DateWiseSales(orders, false)
	assert.Equal(t, "2026-03-14", desc[0].Date)
}

func TestMonthlySales_NewestMonthFirst(t *testing.T) {
	jan := time.Date(2026, 1, 10, 10, 0, 0, 0, time.Local)
	mar := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)
	orders := []entity.Order{
		orderAt(jan, 2000, 0),
		orderAt(mar, 4000, 0),
		orderAt(jan, 3000, 0),
	}

	results := MonthlySales(orders)
	require.Len(t, results, 2)
	assert.Equal(t, "2026-03", results[0].Month)
	assert.Equal(t, int64(1), results[0].OrderCount)
	assert.Equal(t, "2026-01", results[1].Month)
	assert.Equal(t, int64(5000), results[1].Revenue)
}

func TestPreviousDaySummary_EmptyDayIsNilNotError(t *testing.T) {
	svc := NewSalesService(&stubOrderRepo{}, nil, ReportsSourceLocal)

	summary, err := svc.PreviousDaySummary(context.Background())
	require.NoError(t, err)
	assert.Nil(t, summary)
}

func TestPreviousDaySummary_WithSales(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1)
	repo := &stubOrderRepo{orders: []entity.Order{
		orderAt(yesterday, 4000, 0, line("Black Coffee", 1, 4000)),
	}}
	svc := NewSalesService(repo, nil, ReportsSourceLocal)

	summary, err := svc.PreviousDaySummary(context.Background())
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, int64(4000), summary.Revenue)
	assert.Equal(t, int64(1), summary.BillCount)
}

func TestSalesService_FallsBackToLocalWithoutAnalyticsRepo(t *testing.T) {
	repo := &stubOrderRepo{orders: []entity.Order{
		orderAt(time.Now(), 2000, 0, line("Lemon Tea", 1, 2000)),
	}}
	svc := NewSalesService(repo, nil, ReportsSourceDatabase)

	results, err := svc.ItemWiseSales(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
}
