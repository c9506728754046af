// services/order_transitions.go
package services

import (
	"fmt"

	"github.com/Akhilus26/firebased-quickbite/entity"

	"gorm.io/gorm"
)

// ----- Staff actions -----

// UpdateStatus sets the order-level status directly. Staff may move an order
// to any known status; the only transition the system triggers on its own is
// auto-completion inside MarkItemDelivered.
func (s *OrderService) UpdateStatus(orderID uint, to entity.OrderStatus) error {
	if !to.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, to)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatus(tx, orderID, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrOrderNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	if o, err := s.Repo.GetOrder(s.DB, orderID); err == nil && o != nil {
		s.broadcast(FeedOrders, OrderEvent{Type: "order.updated", Order: o})
	}
	return nil
}

// MarkItemDelivered records that one item was handed over at its counter.
// Matching is by catalog item id: checkout merges duplicate lines, so at
// most one delivery entry exists per id. When the last entry flips, the
// order is forced to completed in the same transaction.
//
// Returns false without error when the order is already completed;
// completed orders are immutable from this operation's perspective.
// Re-marking a delivered item succeeds (idempotent for the caller).
func (s *OrderService) MarkItemDelivered(orderID, itemID uint) (bool, error) {
	var completedNow bool

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrder(tx, orderID)
		if err != nil {
			return err
		}
		if o == nil {
			return ErrOrderNotFound
		}
		if o.Status == entity.StatusCompleted {
			return errOrderCompleted
		}

		cnt, err := s.Repo.CountDeliveryEntries(tx, orderID, itemID)
		if err != nil {
			return err
		}
		if cnt == 0 {
			return ErrItemNotFound
		}

		if err := s.Repo.MarkDelivered(tx, orderID, itemID); err != nil {
			return err
		}

		remaining, err := s.Repo.CountUndelivered(tx, orderID)
		if err != nil {
			return err
		}
		if remaining == 0 {
			if _, err := s.Repo.UpdateStatus(tx, orderID, entity.StatusCompleted); err != nil {
				return err
			}
			completedNow = true
		}
		return nil
	})
	if err == errOrderCompleted {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if o, err := s.Repo.GetOrder(s.DB, orderID); err == nil && o != nil {
		event := "order.updated"
		if completedNow {
			event = "order.completed"
		}
		s.broadcast(FeedOrders, OrderEvent{Type: event, Order: o})
	}
	return true, nil
}

// errOrderCompleted is internal control flow for the completed-order no-op.
var errOrderCompleted = fmt.Errorf("order already completed")
