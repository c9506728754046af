package entity

import (
	"gorm.io/gorm"
)

// Wallet holds the simulated payment balance for a user. No real gateway
// sits behind it; top-ups are trusted input.
type Wallet struct {
	gorm.Model
	UserID  uint  `json:"userId" gorm:"uniqueIndex"`
	Balance int64 `json:"balance"`
}
