package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Akhilus26/firebased-quickbite/entity"
	"github.com/Akhilus26/firebased-quickbite/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// One shared in-memory DB per test, named after the test so parallel
	// tests never collide.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Wallet{},
		&entity.MenuItem{}, &entity.CanteenStatus{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderItemDelivery{},
		&entity.ScratchToken{},
	))
	return db
}

func newOrderService(t *testing.T, db *gorm.DB) *OrderService {
	t.Helper()
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewTokenRepository(db),
		repository.NewMenuRepository(db),
		repository.NewUserRepository(db),
		repository.NewWalletRepository(db),
		repository.NewCanteenRepository(db),
	)
}

// seedTestMenu installs four catalog rows. IDs are sequential from 1.
func seedTestMenu(t *testing.T, db *gorm.DB) []entity.MenuItem {
	t.Helper()
	items := []entity.MenuItem{
		{Name: "Veg Sandwich", Price: 40, Veg: true, Category: "Snacks",
			Counter: entity.CounterSnacks, Available: true},
		{Name: "Veg Thali", Price: 50, Veg: true, Category: "Meals",
			Counter: entity.CounterMeals, Available: true},
		{Name: "Cold Coffee", Price: 30, Veg: true, Category: "Cold Beverages",
			Counter: entity.CounterColdBev, Available: true},
		{Name: "Stale Samosa", Price: 20, Veg: true, Category: "Snacks",
			Counter: entity.CounterSnacks, Available: false},
	}
	require.NoError(t, db.Create(&items).Error)
	return items
}

func seedTestUser(t *testing.T, db *gorm.DB) *entity.User {
	t.Helper()
	u := &entity.User{
		Email:           "asha@example.edu",
		DisplayName:     "Asha",
		Phone:           "9999900000",
		Role:            "user",
		UserType:        "student",
		AdmissionNumber: "ADM-1042",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func topUpWallet(t *testing.T, s *OrderService, userID uint, amount int64) {
	t.Helper()
	require.NoError(t, s.WalletRepo.TopUp(userID, amount))
}
