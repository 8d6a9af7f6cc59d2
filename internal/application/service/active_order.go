package service

import (
	"github.com/davidkuria/brewpos-api/internal/domain/entity"
	"github.com/davidkuria/brewpos-api/internal/domain/enum"
)

// ActiveOrderLine is one in-progress order entry. Name and price are
// captured from the menu item at add-time so later menu edits do not
// change an open order.
type ActiveOrderLine struct {
	MenuItemID uint64 `json:"menu_item_id"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Quantity   int64  `json:"quantity"`
}

// OrderTotals holds the derived monetary totals of an active order.
type OrderTotals struct {
	SubTotal int64 `json:"subtotal"`
	Discount int64 `json:"discount"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
}

// ActiveOrder is an in-progress order: an ordered collection of lines
// keyed by menu item ID plus the discount configuration. At most one
// line exists per menu item; adding an already-present item increments
// its quantity. TaxRate of zero disables tax entirely (the
// discount-only schema variant).
//
// None of the mutating operations fail: out-of-range inputs are
// clamped or treated as no-ops.
type ActiveOrder struct {
	Lines         []ActiveOrderLine `json:"lines"`
	DiscountType  enum.DiscountType `json:"discount_type"`
	DiscountValue int64             `json:"discount_value"`
	TaxRate       int64             `json:"tax_rate"` // percent, 0 = disabled
}

// NewActiveOrder creates an empty order with the default discount
// configuration (flat, 0).
func NewActiveOrder(taxRate int64) *ActiveOrder {
	if taxRate < 0 {
		taxRate = 0
	}
	return &ActiveOrder{
		Lines:         []ActiveOrderLine{},
		DiscountType:  enum.DiscountTypeFlat,
		DiscountValue: 0,
		TaxRate:       taxRate,
	}
}

// AddItem adds one unit of the menu item. If a line for this menu item
// already exists its quantity is incremented instead of duplicating.
func (o *ActiveOrder) AddItem(item *entity.MenuItem) {
	for i := range o.Lines {
		if o.Lines[i].MenuItemID == item.ID {
			o.Lines[i].Quantity++
			return
		}
	}
	o.Lines = append(o.Lines, ActiveOrderLine{
		MenuItemID: item.ID,
		Name:       item.Name,
		Price:      item.Price,
		Quantity:   1,
	})
}

// UpdateQuantity sets the quantity of the line for menuItemID. A
// quantity of zero or below removes the line. Unknown IDs are a no-op.
func (o *ActiveOrder) UpdateQuantity(menuItemID uint64, quantity int64) {
	if quantity <= 0 {
		o.RemoveItem(menuItemID)
		return
	}
	for i := range o.Lines {
		if o.Lines[i].MenuItemID == menuItemID {
			o.Lines[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem removes the line for menuItemID if present.
func (o *ActiveOrder) RemoveItem(menuItemID uint64) {
	for i := range o.Lines {
		if o.Lines[i].MenuItemID == menuItemID {
			o.Lines = append(o.Lines[:i], o.Lines[i+1:]...)
			return
		}
	}
}

// SetDiscountType switches between flat and percentage discounts.
func (o *ActiveOrder) SetDiscountType(t enum.DiscountType) {
	o.DiscountType = t
}

// SetDiscountValue sets the discount value. Negative values clamp to
// zero; percentage values are clamped to [0,100] at read time.
func (o *ActiveOrder) SetDiscountValue(v int64) {
	if v < 0 {
		v = 0
	}
	o.DiscountValue = v
}

// Clear resets to the empty order and default discount configuration.
func (o *ActiveOrder) Clear() {
	o.Lines = []ActiveOrderLine{}
	o.DiscountType = enum.DiscountTypeFlat
	o.DiscountValue = 0
}

// IsEmpty reports whether the order has no lines.
func (o *ActiveOrder) IsEmpty() bool {
	return len(o.Lines) == 0
}

// SubTotal is the exact integer sum of price x quantity over all lines.
func (o *ActiveOrder) SubTotal() int64 {
	var sum int64
	for _, line := range o.Lines {
		sum += line.Price * line.Quantity
	}
	return sum
}

// Totals derives subtotal, discount, tax and total. Recomputed on
// every call, never cached.
//
// Flat discounts are clamped to the subtotal; percentage discounts
// clamp the rate to [0,100] and floor the amount. Tax applies to the
// pre-tax subtotal, independent of the discount: the discount does not
// reduce the taxable amount. Total never goes below zero.
func (o *ActiveOrder) Totals() OrderTotals {
	subtotal := o.SubTotal()

	var discount int64
	switch o.DiscountType {
	case enum.DiscountTypePercentage:
		pct := o.DiscountValue
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}
		discount = subtotal * pct / 100
	default:
		discount = o.DiscountValue
		if discount > subtotal {
			discount = subtotal
		}
		if discount < 0 {
			discount = 0
		}
	}

	var tax int64
	if o.TaxRate > 0 {
		tax = subtotal * o.TaxRate / 100
	}

	total := subtotal - discount + tax
	if total < 0 {
		total = 0
	}

	return OrderTotals{
		SubTotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Total:    total,
	}
}
