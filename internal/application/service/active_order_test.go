package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidkuria/brewpos-api/internal/domain/entity"
	"github.com/davidkuria/brewpos-api/internal/domain/enum"
)

func menuItem(id uint64, name string, price int64) *entity.MenuItem {
	return &entity.MenuItem{ID: id, Name: name, Price: price, Category: "Tea"}
}

func TestActiveOrder_AddItemIncrementsExistingLine(t *testing.T) {
	order := NewActiveOrder(0)
	tea := menuItem(1, "Lemon Tea", 2000)

	order.AddItem(tea)
	order.AddItem(tea)
	order.AddItem(menuItem(2, "Black Coffee", 4000))

	require.Len(t, order.Lines, 2)
	assert.Equal(t, int64(2), order.Lines[0].Quantity)
	assert.Equal(t, int64(1), order.Lines[1].Quantity)
	assert.Equal(t, int64(8000), order.SubTotal())
}

func TestActiveOrder_AddItemCapturesNameAndPrice(t *testing.T) {
	order := NewActiveOrder(0)
	tea := menuItem(1, "Lemon Tea", 2000)
	order.AddItem(tea)

	// A later menu edit must not change the open order.
	tea.Name = "Honey Lemon Tea"
	tea.Price = 2500

	assert.Equal(t, "Lemon Tea", order.Lines[0].Name)
	assert.Equal(t, int64(2000), order.Lines[0].Price)
}

func TestActiveOrder_UpdateQuantity(t *testing.T) {
	order := NewActiveOrder(0)
	order.AddItem(menuItem(1, "Lemon Tea", 2000))

	order.UpdateQuantity(1, 5)
	assert.Equal(t, int64(10000), order.SubTotal())

	// Unknown ID is a no-op
	order.UpdateQuantity(99, 3)
	require.Len(t, order.Lines, 1)

	// Zero or below removes the line
	order.UpdateQuantity(1, 0)
	assert.True(t, order.IsEmpty())

	order.AddItem(menuItem(1, "Lemon Tea", 2000))
	order.UpdateQuantity(1, -4)
	assert.True(t, order.IsEmpty())
}

func TestActiveOrder_RemoveItem(t *testing.T) {
	order := NewActiveOrder(0)
	order.AddItem(menuItem(1, "Lemon Tea", 2000))
	order.AddItem(menuItem(2, "Black Coffee", 4000))

	order.RemoveItem(1)
	require.Len(t, order.Lines, 1)
	assert.Equal(t, uint64(2), order.Lines[0].MenuItemID)

	// Removing an absent line is a no-op
	order.RemoveItem(1)
	require.Len(t, order.Lines, 1)
}

func TestActiveOrder_FlatDiscountClampedToSubtotal(t *testing.T) {
	order := NewActiveOrder(0)
	order.AddItem(menuItem(1, "Lemon Tea", 2000))
	order.SetDiscountType(enum.DiscountTypeFlat)
	order.SetDiscountValue(5000)

	totals := order.Totals()
	assert.Equal(t, int64(2000), totals.SubTotal)
	assert.Equal(t, int64(2000), totals.Discount)
	assert.Equal(t, int64(0), totals.Total)
}

func TestActiveOrder_NegativeDiscountClampsToZero(t *testing.T) {
	order := NewActiveOrder(0)
	order.AddItem(menuItem(1, "Lemon Tea", 2000))
	order.SetDiscountValue(-500)

	totals := order.Totals()
	assert.Equal(t, int64(0), totals.Discount)
	assert.Equal(t, int64(2000), totals.Total)
}

func TestActiveOrder_PercentageDiscountFloors(t *testing.T) {
	order := NewActiveOrder(0)
	order.AddItem(menuItem(1, "Masala Tea", 2500))
	order.SetDiscountType(enum.DiscountTypePercentage)
	order.SetDiscountValue(33)

	totals := order.Totals()
	// floor(2500 * 33 / 100) = 825, exact integer arithmetic
	assert.Equal(t, int64(825), totals.Discount)
	assert.Equal(t, int64(1675), totals.Total)
}

func TestActiveOrder_PercentageDiscountClampedTo100(t *testing.T) {
	order := NewActiveOrder(0)
	order.AddItem(menuItem(1, "Lemon Tea", 2000))
	order.SetDiscountType(enum.DiscountTypePercentage)
	order.SetDiscountValue(250)

	totals := order.Totals()
	assert.Equal(t, int64(2000), totals.Discount)
	assert.Equal(t, int64(0), totals.Total)
}

func TestActiveOrder_TaxAppliesToPreDiscountSubtotal(t *testing.T) {
	order := NewActiveOrder(5)
	order.AddItem(menuItem(1, "Veg Sandwich", 6000))
	order.SetDiscountType(enum.DiscountTypeFlat)
	order.SetDiscountValue(1000)

	totals := order.Totals()
	assert.Equal(t, int64(6000), totals.SubTotal)
	assert.Equal(t, int64(1000), totals.Discount)
	// Tax on the pre-tax subtotal, not the discounted amount
	assert.Equal(t, int64(300), totals.Tax)
	assert.Equal(t, int64(5300), totals.Total)
}

func TestActiveOrder_ZeroTaxRateDisablesTax(t *testing.T) {
	order := NewActiveOrder(0)
	order.AddItem(menuItem(1, "Veg Sandwich", 6000))

	totals := order.Totals()
	assert.Equal(t, int64(0), totals.Tax)
	assert.Equal(t, totals.SubTotal, totals.Total)
}

func TestActiveOrder_TotalsRecomputedPerCall(t *testing.T) {
	order := NewActiveOrder(0)
	order.AddItem(menuItem(1, "Lemon Tea", 2000))
	first := order.Totals()

	order.UpdateQuantity(1, 3)
	second := order.Totals()

	assert.Equal(t, int64(2000), first.SubTotal)
	assert.Equal(t, int64(6000), second.SubTotal)
}

func TestActiveOrder_ClearResetsDiscount(t *testing.T) {
	order := NewActiveOrder(0)
	order.AddItem(menuItem(1, "Lemon Tea", 2000))
	order.SetDiscountType(enum.DiscountTypePercentage)
	order.SetDiscountValue(10)

	order.Clear()

	assert.True(t, order.IsEmpty())
	assert.Equal(t, enum.DiscountTypeFlat, order.DiscountType)
	assert.Equal(t, int64(0), order.DiscountValue)
}

func TestActiveOrder_EmptyOrderTotalsAreZero(t *testing.T) {
	order := NewActiveOrder(5)
	order.SetDiscountType(enum.DiscountTypeFlat)
	order.SetDiscountValue(1000)

	totals := order.Totals()
	assert.Equal(t, OrderTotals{}, totals)
}
