package repository

import (
	"errors"

	"github.com/Akhilus26/firebased-quickbite/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// GetOrder loads an order with its line and delivery associations.
// Returns (nil, nil) when the order does not exist.
func (r *OrderRepository) GetOrder(db *gorm.DB, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := db.
		Preload("Items").
		Preload("DeliveryStatus").
		First(&o, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /orders (customer) → orders of one user, newest first
func (r *OrderRepository) ListForUser(userID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.
		Preload("Items").
		Preload("DeliveryStatus").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListAll() ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.
		Preload("Items").
		Preload("DeliveryStatus").
		Order("id DESC").
		Find(&out).Error
	return out, err
}

// ListActive returns every order that is not completed yet (staff dashboard).
func (r *OrderRepository) ListActive() ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.
		Preload("Items").
		Preload("DeliveryStatus").
		Where("status <> ?", entity.StatusCompleted).
		Order("id DESC").
		Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListCompleted() ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.
		Preload("Items").
		Preload("DeliveryStatus").
		Where("status = ?", entity.StatusCompleted).
		Order("id DESC").
		Find(&out).Error
	return out, err
}

// GetByCode looks an order up by its 4-digit pickup code. Completed orders
// are treated as dead: their code no longer resolves.
func (r *OrderRepository) GetByCode(code string) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("Items").
		Preload("DeliveryStatus").
		Where("order_code = ? AND status <> ?", code, entity.StatusCompleted).
		First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) CountActive() (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Order{}).
		Where("status <> ?", entity.StatusCompleted).
		Count(&cnt).Error
	return cnt, err
}

// CodeInUse checks a candidate pickup code against non-completed orders.
// Runs inside the creating transaction so the check and the insert are one
// unit against the store.
func (r *OrderRepository) CodeInUse(tx *gorm.DB, code string) (bool, error) {
	var cnt int64
	err := tx.Model(&entity.Order{}).
		Where("order_code = ? AND status <> ?", code, entity.StatusCompleted).
		Count(&cnt).Error
	return cnt > 0, err
}

// ---------------- Status ----------------

// UpdateStatus sets the order status directly. RowsAffected == 0 means the
// order does not exist.
func (r *OrderRepository) UpdateStatus(tx *gorm.DB, orderID uint, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// ---------------- Delivery entries ----------------

func (r *OrderRepository) CreateDeliveryEntry(tx *gorm.DB, d *entity.OrderItemDelivery) error {
	return tx.Create(d).Error
}

// CountDeliveryEntries reports how many delivery entries an order holds for
// a given catalog item id.
func (r *OrderRepository) CountDeliveryEntries(tx *gorm.DB, orderID, itemID uint) (int64, error) {
	var cnt int64
	err := tx.Model(&entity.OrderItemDelivery{}).
		Where("order_id = ? AND item_id = ?", orderID, itemID).
		Count(&cnt).Error
	return cnt, err
}

// MarkDelivered flips every delivery entry for (orderID, itemID) to
// delivered. Marking an already-delivered entry is a harmless no-op.
func (r *OrderRepository) MarkDelivered(tx *gorm.DB, orderID, itemID uint) error {
	return tx.Model(&entity.OrderItemDelivery{}).
		Where("order_id = ? AND item_id = ?", orderID, itemID).
		Update("delivered", true).Error
}

// CountUndelivered counts the entries still waiting at a counter.
func (r *OrderRepository) CountUndelivered(tx *gorm.DB, orderID uint) (int64, error) {
	var cnt int64
	err := tx.Model(&entity.OrderItemDelivery{}).
		Where("order_id = ? AND delivered = ?", orderID, false).
		Count(&cnt).Error
	return cnt, err
}
