package entity

import (
	"time"
)

// Customer is a snapshot of the buyer's profile taken at checkout. It is
// immutable afterwards, so staff see the details as they were when paid.
type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Type  string `json:"type"` // student | teacher | user
	RefID string `json:"id"`   // admission number or teacher id
}

// Order ids come from the database sequence, so concurrent checkouts can
// never mint the same id. Orders are history: they are never deleted.
type Order struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	OrderCode     string      `json:"orderCode" gorm:"index"` // 4-digit pickup code
	Total         int64       `json:"total"`
	Status        OrderStatus `json:"status" gorm:"index"`
	CreatedAtMs   int64       `json:"createdAt"` // epoch millis, wire contract
	PaymentMethod string      `json:"paymentMethod"`

	UserID uint `json:"userId"`
	User   User `json:"-"` // preload only when customer detail is needed

	Customer Customer `json:"customer" gorm:"embedded;embeddedPrefix:customer_"`

	Items          []OrderItem         `json:"items" gorm:"constraint:OnDelete:CASCADE;"`
	DeliveryStatus []OrderItemDelivery `json:"itemDeliveryStatus" gorm:"constraint:OnDelete:CASCADE;"`

	// Legacy alt-path: counters the user revealed before per-token reveal
	// tracking existed. Kept for stored-data compatibility.
	RevealedCounters []string `json:"revealedCounters" gorm:"serializer:json"`
}

// AllDelivered reports whether every delivery entry has been handed over.
func (o *Order) AllDelivered() bool {
	if len(o.DeliveryStatus) == 0 {
		return false
	}
	for _, d := range o.DeliveryStatus {
		if !d.Delivered {
			return false
		}
	}
	return true
}
