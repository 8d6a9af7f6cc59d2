package entity

import (
	"time"

	"github.com/davidkuria/brewpos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Order represents a finalized sales order. Once created it is
// immutable: the client only reads it back for reporting and bill
// rendering. All monetary fields are integer minor currency units.
type Order struct {
	ID            uint64            `gorm:"primaryKey;autoIncrement" json:"id"`
	SubTotal      int64             `gorm:"not null" json:"subtotal"`
	Discount      int64             `gorm:"not null" json:"discount"`
	DiscountType  enum.DiscountType `gorm:"default:0" json:"discount_type"`
	DiscountValue int64             `gorm:"default:0" json:"discount_value"`
	Tax           int64             `gorm:"default:0" json:"tax"`
	Total         int64             `gorm:"not null" json:"total"`
	Timestamp     int64             `gorm:"not null;index" json:"timestamp"` // nanosecond epoch
	Finalized     bool              `gorm:"default:true" json:"finalized"`
	CreatedAt     time.Time         `json:"created_at"`
	DeletedAt     gorm.DeletedAt    `gorm:"index" json:"-"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// Time returns the order timestamp as a time.Time in the local zone.
func (o *Order) Time() time.Time {
	return time.Unix(0, o.Timestamp)
}

// OrderItem is a snapshot line item of a finalized order. Name and
// price are denormalized at add-time so later menu edits do not
// retroactively change past orders.
type OrderItem struct {
	ID         uint64         `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID    uint64         `gorm:"not null;index" json:"-"`
	MenuItemID uint64         `gorm:"not null" json:"menu_item_id"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Quantity   int64          `gorm:"not null" json:"quantity"`
	Price      int64          `gorm:"not null" json:"price"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// LineTotal returns price x quantity for the line.
func (i *OrderItem) LineTotal() int64 {
	return i.Price * i.Quantity
}
