package services

import "errors"

// Error kinds surfaced by the order core. Controllers map these onto HTTP
// statuses; everything else bubbles up as a store failure.
var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrItemNotFound        = errors.New("item not found in order")
	ErrTokenNotFound       = errors.New("scratch token not found")
	ErrTokenUsed           = errors.New("scratch token already used")
	ErrMenuItemNotFound    = errors.New("menu item not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
	ErrCanteenClosed       = errors.New("canteen is closed")
	ErrForbidden           = errors.New("forbidden")
)
