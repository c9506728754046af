package services

import (
	"testing"

	"github.com/Akhilus26/firebased-quickbite/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkoutTwoCounters(t *testing.T, svc *OrderService, userID uint) *entity.Order {
	t.Helper()
	order, err := svc.Create(userID, &CheckoutReq{
		Items: []CartLineIn{
			{ItemID: 2, Qty: 2}, // Meals
			{ItemID: 3, Qty: 1}, // Cold Beverages
		},
		PaymentMethod: "Cash on Delivery",
	})
	require.NoError(t, err)
	return order
}

func TestUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db)
	seedTestMenu(t, db)
	user := seedTestUser(t, db)
	order := checkoutTwoCounters(t, svc, user.ID)

	require.NoError(t, svc.UpdateStatus(order.ID, entity.StatusPreparing))
	require.NoError(t, svc.UpdateStatus(order.ID, entity.StatusReady))

	got, err := svc.Repo.GetOrder(db, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusReady, got.Status)

	// Unknown status is rejected before any write.
	err = svc.UpdateStatus(order.ID, entity.OrderStatus("shipped"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Missing orders surface NotFound instead of a silent no-op.
	err = svc.UpdateStatus(order.ID+100, entity.StatusReady)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestMarkItemDelivered_AutoCompletes(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db)
	seedTestMenu(t, db)
	user := seedTestUser(t, db)
	order := checkoutTwoCounters(t, svc, user.ID)

	// First item delivered: order stays put.
	ok, err := svc.MarkItemDelivered(order.ID, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := svc.Repo.GetOrder(db, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, got.Status)
	assert.False(t, got.AllDelivered())

	// Last item delivered: auto-completion fires regardless of prior status.
	ok, err = svc.MarkItemDelivered(order.ID, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err = svc.Repo.GetOrder(db, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, got.Status)
	assert.True(t, got.AllDelivered())
}

func TestMarkItemDelivered_OrderOfDeliveriesIrrelevant(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db)
	seedTestMenu(t, db)
	user := seedTestUser(t, db)
	order := checkoutTwoCounters(t, svc, user.ID)

	// Reverse order of counters.
	_, err := svc.MarkItemDelivered(order.ID, 3)
	require.NoError(t, err)
	_, err = svc.MarkItemDelivered(order.ID, 2)
	require.NoError(t, err)

	got, err := svc.Repo.GetOrder(db, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, got.Status)
}

func TestMarkItemDelivered_Idempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db)
	seedTestMenu(t, db)
	user := seedTestUser(t, db)
	order := checkoutTwoCounters(t, svc, user.ID)

	ok, err := svc.MarkItemDelivered(order.ID, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	// Same item again: same final state, still reported as success.
	ok, err = svc.MarkItemDelivered(order.ID, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := svc.Repo.GetOrder(db, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, got.Status)

	delivered := 0
	for _, d := range got.DeliveryStatus {
		if d.Delivered {
			delivered++
		}
	}
	assert.Equal(t, 1, delivered)
}

func TestMarkItemDelivered_CompletedOrderIsImmutable(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db)
	seedTestMenu(t, db)
	user := seedTestUser(t, db)
	order := checkoutTwoCounters(t, svc, user.ID)

	_, err := svc.MarkItemDelivered(order.ID, 2)
	require.NoError(t, err)
	_, err = svc.MarkItemDelivered(order.ID, 3)
	require.NoError(t, err)

	// Completed: the operation declines without error and without mutation.
	ok, err := svc.MarkItemDelivered(order.ID, 2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMarkItemDelivered_NotFoundKinds(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db)
	seedTestMenu(t, db)
	user := seedTestUser(t, db)
	order := checkoutTwoCounters(t, svc, user.ID)

	ok, err := svc.MarkItemDelivered(order.ID+100, 2)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	ok, err = svc.MarkItemDelivered(order.ID, 999)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrItemNotFound)
}
