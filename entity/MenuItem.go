package entity

import (
	"time"
)

type MenuItem struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       int64   `json:"price"` // minor units, no decimals
	Veg         bool    `json:"veg"`
	Category    string  `json:"category"` // Snacks | Meals | Hot Beverages | Cold Beverages
	Counter     Counter `json:"counter"`
	Available   bool    `json:"available"`

	MadeWith string `json:"madeWith,omitempty"`
	Calories int    `json:"calories,omitempty"`
	Protein  int    `json:"protein,omitempty"`
	PrepTime int    `json:"prepTime,omitempty"` // minutes
	Quantity int    `json:"quantity,omitempty"` // serving size / stock
}
