package repository

import (
	"github.com/brunoquiroz/DEMO-Comida-Rapida/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Create (always inside a transaction) ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) CreateOrderItemExtra(tx *gorm.DB, ex *entity.OrderItemExtra) error {
	return tx.Create(ex).Error
}

// ---------------- Reads ----------------

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("Items").
		Preload("Items.Extras").
		First(&o, orderID).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("Items").
		Preload("Items.Extras").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListOrders returns orders newest first, optionally filtered by status.
func (r *OrderRepository) ListOrders(status string) ([]entity.Order, error) {
	db := r.DB.
		Preload("Items").
		Preload("Items.Extras").
		Order("created_at DESC")
	if status != "" {
		db = db.Where("status = ?", status)
	}
	var out []entity.Order
	err := db.Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListOrdersForUser(userID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.
		Preload("Items").
		Preload("Items.Extras").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// ---------------- Status ----------------

// UpdateStatus is last-write-wins: no optimistic lock, no transition guard.
func (r *OrderRepository) UpdateStatus(orderID uint, status string) error {
	return r.DB.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("status", status).Error
}
