package entity

import (
	"time"
)

// OrderItem is one cart line snapshotted at checkout. Name and price are
// copied from the menu so later catalog edits don't rewrite order history.
type OrderItem struct {
	LineID    uint      `json:"-" gorm:"primarykey;column:id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
	OrderID   uint      `json:"-" gorm:"index"`

	ItemID  uint    `json:"id"` // catalog MenuItem id
	Name    string  `json:"name"`
	Price   int64   `json:"price"`
	Qty     int     `json:"qty"`
	Veg     bool    `json:"veg"`
	Counter Counter `json:"counter"`
}
