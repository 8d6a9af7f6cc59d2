package entity

import (
	"time"

	"gorm.io/gorm"
)

// MenuItem represents one item on the cafe menu. Price is stored in
// minor currency units (paise) and crosses the API boundary as an
// integer, never a float.
type MenuItem struct {
	ID        uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Category  string         `gorm:"size:100;not null;index" json:"category"`
	Price     int64          `gorm:"not null" json:"price"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the table name for the MenuItem model
func (MenuItem) TableName() string {
	return "menu_items"
}

// CategoryOrder is the canonical display order of menu categories.
// Categories not listed here sort after these, alphabetically.
var CategoryOrder = []string{
	"Tea",
	"Coffee",
	"Sandwich",
	"Toast",
	"Light Snacks",
	"Momos",
	"Burgers",
	"Starters",
	"Refreshers",
	"Beverages",
	"Combo",
}

// CategoryRank returns the sort rank of a category within CategoryOrder.
func CategoryRank(category string) int {
	for i, c := range CategoryOrder {
		if c == category {
			return i
		}
	}
	return len(CategoryOrder)
}

// CategoryGroup is a named group of menu items used by the grouped
// menu listing.
type CategoryGroup struct {
	Category string     `json:"category"`
	Items    []MenuItem `json:"items"`
}
