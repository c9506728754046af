package entity

import (
	"gorm.io/gorm"
)

// CanteenStatus is a single-row flag the owner toggles to stop checkouts.
type CanteenStatus struct {
	gorm.Model
	Open bool `json:"open"`
}
