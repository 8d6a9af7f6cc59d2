package entity

import "github.com/davidkuria/brewpos-api/internal/domain/enum"

// BillItem is one printed line on a bill.
type BillItem struct {
	MenuItemID uint64 `json:"menuItemId"`
	Name       string `json:"name"`
	Quantity   int64  `json:"quantity"`
	Price      int64  `json:"price"`
}

// Bill is the session-scoped receipt record written at finalize time
// and consumed once by the bill view. It is a value object, not a
// database entity: it lives in the session bill store as JSON and is
// cleared when a new order starts.
//
// Money fields are integer minor units; Timestamp is a nanosecond
// epoch. Persisted reports whether the order made it to the database —
// a finalize that could not reach storage still produces a bill so the
// receipt flow is never blocked.
type Bill struct {
	ID            uint64             `json:"id"`
	Items         []BillItem         `json:"items"`
	SubTotal      int64              `json:"subtotal"`
	Discount      int64              `json:"discount"`
	DiscountType  *enum.DiscountType `json:"discountType,omitempty"`
	DiscountValue *int64             `json:"discountValue,omitempty"`
	Tax           int64              `json:"tax,omitempty"`
	Total         int64              `json:"total"`
	Timestamp     int64              `json:"timestamp"`
	Persisted     bool               `json:"persisted"`
}

// Valid reports whether the bill carries the fields the bill view
// needs. Malformed stored data surfaces as a "no bill" state, never a
// panic.
func (b *Bill) Valid() bool {
	if b == nil || b.ID == 0 || b.Items == nil {
		return false
	}
	if b.SubTotal < 0 || b.Discount < 0 || b.Total < 0 {
		return false
	}
	for _, item := range b.Items {
		if item.Name == "" || item.Quantity <= 0 || item.Price < 0 {
			return false
		}
	}
	return true
}

// BillFromOrder builds the bill record for a finalized order.
func BillFromOrder(o *Order, persisted bool) *Bill {
	items := make([]BillItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, BillItem{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			Quantity:   it.Quantity,
			Price:      it.Price,
		})
	}
	dt := o.DiscountType
	dv := o.DiscountValue
	return &Bill{
		ID:            o.ID,
		Items:         items,
		SubTotal:      o.SubTotal,
		Discount:      o.Discount,
		DiscountType:  &dt,
		DiscountValue: &dv,
		Tax:           o.Tax,
		Total:         o.Total,
		Timestamp:     o.Timestamp,
		Persisted:     persisted,
	}
}
