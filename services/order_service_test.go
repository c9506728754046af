package services

import (
	"regexp"
	"testing"

	"github.com/Akhilus26/firebased-quickbite/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_TotalAndDeliveryPairing(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db)
	seedTestMenu(t, db)
	user := seedTestUser(t, db)

	// Cart: 2x Veg Thali (Meals, 50) + 1x Cold Coffee (Cold Beverages, 30).
	order, err := svc.Create(user.ID, &CheckoutReq{
		Items: []CartLineIn{
			{ItemID: 2, Qty: 2},
			{ItemID: 3, Qty: 1},
		},
		PaymentMethod: "Cash on Delivery",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(130), order.Total)
	assert.Equal(t, entity.StatusPending, order.Status)
	require.Len(t, order.Items, 2)
	require.Len(t, order.DeliveryStatus, len(order.Items))

	// Delivery entries pair with lines in order, undelivered.
	for i, d := range order.DeliveryStatus {
		assert.Equal(t, order.Items[i].ItemID, d.ItemID)
		assert.Equal(t, order.Items[i].Counter, d.Counter)
		assert.False(t, d.Delivered)
	}

	assert.Regexp(t, regexp.MustCompile(`^\d{4}$`), order.OrderCode)
	assert.NotZero(t, order.CreatedAtMs)
}

func TestCreate_OneTokenPerCounter(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db)
	seedTestMenu(t, db)
	user := seedTestUser(t, db)

	order, err := svc.Create(user.ID, &CheckoutReq{
		Items: []CartLineIn{
			{ItemID: 2, Qty: 2}, // Meals
			{ItemID: 3, Qty: 1}, // Cold Beverages
		},
		PaymentMethod: "Cash on Delivery",
	})
	require.NoError(t, err)

	tokens, err := svc.TokenRepo.ListByOrder(order.ID)
	require.NoError(t, err)
	require.Len(t, tokens, 2)

	byCounter := make(map[entity.Counter]entity.ScratchToken)
	for _, tok := range tokens {
		byCounter[tok.Counter] = tok
	}

	meals, ok := byCounter[entity.CounterMeals]
	require.True(t, ok)
	assert.Equal(t, []entity.TokenItem{{Name: "Veg Thali", Qty: 2}}, meals.Items)

	cold, ok := byCounter[entity.CounterColdBev]
	require.True(t, ok)
	assert.Equal(t, []entity.TokenItem{{Name: "Cold Coffee", Qty: 1}}, cold.Items)

	for _, tok := range tokens {
		assert.False(t, tok.Used)
		assert.Nil(t, tok.RevealedAt)
		assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), tok.Token)
		assert.Equal(t, user.ID, tok.UserID)
	}
}

func TestCreate_SharedCounterSharesOneToken(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db)
	seedTestMenu(t, db)
	user := seedTestUser(t, db)

	// Sandwich and Thali live on different counters, sandwich + samosa on
	// the same one; only distinct counters earn a token.
	order, err := svc.Create(user.ID, &CheckoutReq{
		Items: []CartLineIn{
			{ItemID: 1, Qty: 1}, // Snacks & Hot Beverages
			{ItemID: 2, Qty: 1}, // Meals
		},
		PaymentMethod: "Cash on Delivery",
	})
	require.NoError(t, err)

	tokens, err := svc.TokenRepo.ListByOrder(order.ID)
	require.NoError(t, err)
	assert.Len(t, tokens, 2)
}

func TestCreate_MergesDuplicateLines(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db)
	seedTestMenu(t, db)
	user := seedTestUser(t, db)

	order, err := svc.Create(user.ID, &CheckoutReq{
		Items: []CartLineIn{
			{ItemID: 1, Qty: 1},
			{ItemID: 1, Qty: 2},
		},
		PaymentMethod: "Cash on Delivery",
	})
	require.NoError(t, err)

	require.Len(t, order.Items, 1)
	assert.Equal(t, 3, order.Items[0].Qty)
	assert.Equal(t, int64(120), order.Total)
	require.Len(t, order.DeliveryStatus, 1)
}

func TestCreate_Validation(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db)
	seedTestMenu(t, db)
	user := seedTestUser(t, db)

	tests := []struct {
		name string
		req  CheckoutReq
		want error
	}{
		{
			name: "empty cart",
			req:  CheckoutReq{PaymentMethod: "UPI"},
			want: ErrInvalidInput,
		},
		{
			name: "unknown payment method",
			req: CheckoutReq{
				Items:         []CartLineIn{{ItemID: 1, Qty: 1}},
				PaymentMethod: "Cheque",
			},
			want: ErrInvalidInput,
		},
		{
			name: "zero quantity",
			req: CheckoutReq{
				Items:         []CartLineIn{{ItemID: 1, Qty: 0}},
				PaymentMethod: "Cash on Delivery",
			},
			want: ErrInvalidInput,
		},
		{
			name: "unknown menu item",
			req: CheckoutReq{
				Items:         []CartLineIn{{ItemID: 999, Qty: 1}},
				PaymentMethod: "Cash on Delivery",
			},
			want: ErrMenuItemNotFound,
		},
		{
			name: "unavailable item",
			req: CheckoutReq{
				Items:         []CartLineIn{{ItemID: 4, Qty: 1}},
				PaymentMethod: "Cash on Delivery",
			},
			want: ErrInvalidInput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(user.ID, &tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	// No half-written orders may survive a rejected checkout.
	var count int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreate_WalletPayment(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db)
	seedTestMenu(t, db)
	user := seedTestUser(t, db)

	// Insufficient funds: the whole checkout rolls back, tokens included.
	_, err := svc.Create(user.ID, &CheckoutReq{
		Items:         []CartLineIn{{ItemID: 2, Qty: 1}},
		PaymentMethod: "UPI",
	})
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	var tokenCount int64
	require.NoError(t, db.Model(&entity.ScratchToken{}).Count(&tokenCount).Error)
	assert.Zero(t, tokenCount)

	// With funds the debit lands in the same transaction.
	topUpWallet(t, svc, user.ID, 100)
	order, err := svc.Create(user.ID, &CheckoutReq{
		Items:         []CartLineIn{{ItemID: 2, Qty: 1}},
		PaymentMethod: "UPI",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(50), order.Total)

	w, err := svc.WalletRepo.GetOrCreate(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(50), w.Balance)
}

func TestCreate_CanteenClosed(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db)
	seedTestMenu(t, db)
	user := seedTestUser(t, db)

	require.NoError(t, svc.CanteenRepo.SetOpen(false))

	_, err := svc.Create(user.ID, &CheckoutReq{
		Items:         []CartLineIn{{ItemID: 1, Qty: 1}},
		PaymentMethod: "Cash on Delivery",
	})
	assert.ErrorIs(t, err, ErrCanteenClosed)
}

func TestCreate_CustomerSnapshot(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db)
	seedTestMenu(t, db)
	user := seedTestUser(t, db)

	order, err := svc.Create(user.ID, &CheckoutReq{
		Items:         []CartLineIn{{ItemID: 1, Qty: 1}},
		PaymentMethod: "Cash on Delivery",
	})
	require.NoError(t, err)

	assert.Equal(t, "Asha", order.Customer.Name)
	assert.Equal(t, "student", order.Customer.Type)
	assert.Equal(t, "ADM-1042", order.Customer.RefID)
}

func TestGetByCode_CompletedOrderIsDead(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db)
	seedTestMenu(t, db)
	user := seedTestUser(t, db)

	order, err := svc.Create(user.ID, &CheckoutReq{
		Items:         []CartLineIn{{ItemID: 1, Qty: 1}},
		PaymentMethod: "Cash on Delivery",
	})
	require.NoError(t, err)

	found, err := svc.GetByCode(order.OrderCode)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, order.ID, found.ID)

	require.NoError(t, svc.UpdateStatus(order.ID, entity.StatusCompleted))

	found, err = svc.GetByCode(order.OrderCode)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestPendingCountAndLists(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db)
	seedTestMenu(t, db)
	user := seedTestUser(t, db)

	for i := 0; i < 3; i++ {
		_, err := svc.Create(user.ID, &CheckoutReq{
			Items:         []CartLineIn{{ItemID: 1, Qty: 1}},
			PaymentMethod: "Cash on Delivery",
		})
		require.NoError(t, err)
	}

	count, err := svc.PendingCount()
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	active, err := svc.ListActive()
	require.NoError(t, err)
	require.Len(t, active, 3)

	require.NoError(t, svc.UpdateStatus(active[0].ID, entity.StatusCompleted))

	count, err = svc.PendingCount()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	completed, err := svc.ListCompleted()
	require.NoError(t, err)
	assert.Len(t, completed, 1)
}

func TestDetailForUser_Ownership(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(t, db)
	seedTestMenu(t, db)
	user := seedTestUser(t, db)

	order, err := svc.Create(user.ID, &CheckoutReq{
		Items:         []CartLineIn{{ItemID: 1, Qty: 1}},
		PaymentMethod: "Cash on Delivery",
	})
	require.NoError(t, err)

	_, err = svc.DetailForUser(user.ID+1, order.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.DetailForUser(user.ID, order.ID+100)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	got, err := svc.DetailForUser(user.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.OrderCode, got.OrderCode)
}
