package entity

import (
	"time"
)

// TokenItem is the name+qty view of an order line carried inside a scratch
// token. Only the lines for the token's own counter are included.
type TokenItem struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// ScratchToken is a per-counter, time-boxed proof of purchase. It is created
// in a batch alongside the order and mutated exactly once, on reveal.
type ScratchToken struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	OrderID uint    `json:"orderId" gorm:"index"`
	UserID  uint    `json:"userId"`
	Counter Counter `json:"counter"`
	Token   string  `json:"token"` // 6-digit code

	Used       bool       `json:"used"`
	ExpiresAt  time.Time  `json:"expiresAt"`
	RevealedAt *time.Time `json:"revealedAt"`

	Items []TokenItem `json:"items" gorm:"serializer:json"`
}
