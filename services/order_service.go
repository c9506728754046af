package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Akhilus26/firebased-quickbite/entity"
	"github.com/Akhilus26/firebased-quickbite/repository"

	"gorm.io/gorm"
)

// Feed receives change events for live staff dashboards and the scratch-card
// screen. A nil feed disables broadcasting.
type Feed interface {
	Broadcast(channel string, event any)
}

// FeedOrders is the channel staff dashboards subscribe to.
const FeedOrders = "orders"

// FeedForOrder names the per-order channel carrying token events.
func FeedForOrder(orderID uint) string {
	return fmt.Sprintf("orders/%d", orderID)
}

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	TokenRepo   *repository.TokenRepository
	MenuRepo    *repository.MenuRepository
	UserRepo    *repository.UserRepository
	WalletRepo  *repository.WalletRepository
	CanteenRepo *repository.CanteenRepository
	Feed        Feed
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	tokenRepo *repository.TokenRepository,
	menuRepo *repository.MenuRepository,
	userRepo *repository.UserRepository,
	walletRepo *repository.WalletRepository,
	canteenRepo *repository.CanteenRepository,
) *OrderService {
	return &OrderService{
		DB:          db,
		Repo:        repo,
		TokenRepo:   tokenRepo,
		MenuRepo:    menuRepo,
		UserRepo:    userRepo,
		WalletRepo:  walletRepo,
		CanteenRepo: canteenRepo,
	}
}

func (s *OrderService) broadcast(channel string, event any) {
	if s.Feed != nil {
		s.Feed.Broadcast(channel, event)
	}
}

// ----- DTOs from Controller -----

type CartLineIn struct {
	ItemID uint `json:"id" binding:"required"`
	Qty    int  `json:"qty" binding:"required,min=1"`
}

type CheckoutReq struct {
	Items         []CartLineIn `json:"items" binding:"required,min=1"`
	PaymentMethod string       `json:"paymentMethod" binding:"required"`
}

const tokenTTL = 8 * time.Hour

func validPaymentMethod(m string) bool {
	switch m {
	case "UPI", "Cash on Delivery", "Wallet":
		return true
	}
	return false
}

// mergeLines collapses duplicate same-item lines into one line with the
// quantities summed, first-seen order preserved. The mobile cart already
// merges this way; enforcing it here keeps delivery matching by item id
// unambiguous (one delivery entry per item id).
func mergeLines(in []CartLineIn) []CartLineIn {
	idx := make(map[uint]int, len(in))
	out := make([]CartLineIn, 0, len(in))
	for _, l := range in {
		if i, ok := idx[l.ItemID]; ok {
			out[i].Qty += l.Qty
			continue
		}
		idx[l.ItemID] = len(out)
		out = append(out, l)
	}
	return out
}

// Create turns a cart into an Order aggregate: snapshots and prices the
// lines, builds one delivery entry per line, reserves a 4-digit pickup code
// and issues one scratch token per distinct counter. Everything is written
// in a single transaction, so a failed token batch rolls the order back too.
func (s *OrderService) Create(userID uint, req *CheckoutReq) (*entity.Order, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrInvalidInput)
	}
	if !validPaymentMethod(req.PaymentMethod) {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, req.PaymentMethod)
	}

	status, err := s.CanteenRepo.Status()
	if err != nil {
		return nil, err
	}
	if !status.Open {
		return nil, ErrCanteenClosed
	}

	lines := mergeLines(req.Items)

	// Snapshot and price every line from the catalog.
	var total int64
	items := make([]entity.OrderItem, 0, len(lines))
	deliveries := make([]entity.OrderItemDelivery, 0, len(lines))
	counters := make([]entity.Counter, 0, 3)
	seen := make(map[entity.Counter]bool, 3)

	for _, l := range lines {
		if l.Qty < 1 {
			return nil, fmt.Errorf("%w: qty must be at least 1", ErrInvalidInput)
		}
		m, err := s.MenuRepo.FindByID(l.ItemID)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, fmt.Errorf("%w: menu item %d", ErrMenuItemNotFound, l.ItemID)
		}
		if !m.Available {
			return nil, fmt.Errorf("%w: %q is unavailable", ErrInvalidInput, m.Name)
		}
		if m.Price < 0 {
			return nil, fmt.Errorf("%w: %q has a negative price", ErrInvalidInput, m.Name)
		}

		counter := m.Counter.OrDefault()
		total += m.Price * int64(l.Qty)
		items = append(items, entity.OrderItem{
			ItemID:  m.ID,
			Name:    m.Name,
			Price:   m.Price,
			Qty:     l.Qty,
			Veg:     m.Veg,
			Counter: counter,
		})
		deliveries = append(deliveries, entity.OrderItemDelivery{
			ItemID:    m.ID,
			Counter:   counter,
			Delivered: false,
		})
		if !seen[counter] {
			seen[counter] = true
			counters = append(counters, counter)
		}
	}

	// Customer snapshot is best-effort: a missing profile is tolerated.
	var customer entity.Customer
	if u, err := s.UserRepo.FindByID(userID); err == nil && u != nil {
		customer = entity.Customer{
			Name:  u.DisplayName,
			Phone: u.Phone,
			Type:  u.UserType,
			RefID: u.SnapshotRef(),
		}
	}

	now := time.Now()
	order := &entity.Order{
		Total:            total,
		Status:           entity.StatusPending,
		CreatedAtMs:      now.UnixMilli(),
		PaymentMethod:    req.PaymentMethod,
		UserID:           userID,
		Customer:         customer,
		Items:            items,
		DeliveryStatus:   deliveries,
		RevealedCounters: []string{},
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		code, err := generateOrderCode(tx, s.Repo)
		if err != nil {
			return err
		}
		order.OrderCode = code

		// Wallet-backed methods debit inside the same transaction;
		// Cash on Delivery settles at the counter.
		if req.PaymentMethod != "Cash on Delivery" {
			if _, err := s.WalletRepo.GetOrCreate(tx, userID); err != nil {
				return err
			}
			affected, err := s.WalletRepo.Debit(tx, userID, total)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrInsufficientBalance
			}
		}

		if err := s.Repo.CreateOrder(tx, order); err != nil {
			return err
		}

		// One scratch token per distinct counter, carrying only that
		// counter's lines.
		expiresAt := now.Add(tokenTTL)
		for _, counter := range counters {
			tokenItems := make([]entity.TokenItem, 0, len(items))
			for _, it := range items {
				if it.Counter == counter {
					tokenItems = append(tokenItems, entity.TokenItem{Name: it.Name, Qty: it.Qty})
				}
			}
			t := &entity.ScratchToken{
				OrderID:   order.ID,
				UserID:    userID,
				Counter:   counter,
				Token:     generateCounterToken(),
				Used:      false,
				ExpiresAt: expiresAt,
				Items:     tokenItems,
			}
			if err := s.TokenRepo.Create(tx, t); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.broadcast(FeedOrders, OrderEvent{Type: "order.created", Order: order})
	return order, nil
}

// OrderEvent is the payload pushed to feed subscribers.
type OrderEvent struct {
	Type  string        `json:"type"`
	Order *entity.Order `json:"order"`
}

// ----- Queries -----

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.ListForUser(userID)
}

func (s *OrderService) ListAll() ([]entity.Order, error) {
	return s.Repo.ListAll()
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(s.DB, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	if o.UserID != userID {
		return nil, ErrForbidden
	}
	return o, nil
}

func (s *OrderService) ListActive() ([]entity.Order, error) {
	return s.Repo.ListActive()
}

func (s *OrderService) ListCompleted() ([]entity.Order, error) {
	return s.Repo.ListCompleted()
}

// GetByCode resolves a staff lookup by 4-digit pickup code. Completed
// orders never match: their code is dead even if later reused.
func (s *OrderService) GetByCode(code string) (*entity.Order, error) {
	return s.Repo.GetByCode(code)
}

func (s *OrderService) PendingCount() (int64, error) {
	return s.Repo.CountActive()
}

// IsInvalidInput reports whether err belongs to the validation family.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
