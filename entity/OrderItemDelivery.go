package entity

import (
	"time"
)

// OrderItemDelivery tracks hand-over of one order line at one counter.
// Delivered only ever flips false -> true.
type OrderItemDelivery struct {
	EntryID   uint      `json:"-" gorm:"primarykey;column:id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
	OrderID   uint      `json:"-" gorm:"index"`

	ItemID    uint    `json:"itemId"`
	Counter   Counter `json:"counter"`
	Delivered bool    `json:"delivered"`
}
