package repository

import (
	"time"

	"github.com/brunoquiroz/DEMO-Comida-Rapida/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StatsRepository is the data-access surface of the dashboard reports.
// Whole-table aggregates are pushed down to SQL; the per-bucket series
// fetch the minimal window rows and are rolled up by the service.
type StatsRepository struct {
	DB *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{DB: db}
}

// OrderStatRow is the slice of an order the report series need.
type OrderStatRow struct {
	CreatedAt     time.Time
	Status        string
	TotalAmount   decimal.Decimal
	CustomerEmail string
	CustomerPhone string
}

func (r *StatsRepository) FindOrdersInRange(start, end time.Time) ([]OrderStatRow, error) {
	var out []OrderStatRow
	err := r.DB.Model(&entity.Order{}).
		Select("created_at, status, total_amount, customer_email, customer_phone").
		Where("created_at >= ? AND created_at <= ?", start, end).
		Order("created_at").
		Scan(&out).Error
	return out, err
}

// CountOrdersByStatus counts all orders grouped by status, unbounded by
// any window.
func (r *StatsRepository) CountOrdersByStatus() (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.DB.Model(&entity.Order{}).
		Select("status, COUNT(id) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}

type ProductQuantityRow struct {
	ProductName string `json:"product"`
	Quantity    int64  `json:"quantity"`
}

// TopProductsByQuantity sums item quantities for orders created inside the
// window, descending.
func (r *StatsRepository) TopProductsByQuantity(start, end time.Time, limit int) ([]ProductQuantityRow, error) {
	var out []ProductQuantityRow
	err := r.DB.Model(&entity.OrderItem{}).
		Select("order_items.product_name AS product_name, SUM(order_items.quantity) AS quantity").
		Joins("JOIN orders o ON o.id = order_items.order_id").
		Where("o.created_at >= ? AND o.created_at <= ?", start, end).
		Group("order_items.product_name").
		Order("quantity DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

// FindSignupsInRange returns account-creation timestamps inside the window.
func (r *StatsRepository) FindSignupsInRange(start, end time.Time) ([]time.Time, error) {
	var rows []struct {
		CreatedAt time.Time
	}
	err := r.DB.Model(&entity.User{}).
		Select("created_at").
		Where("created_at >= ? AND created_at <= ?", start, end).
		Order("created_at").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]time.Time, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.CreatedAt)
	}
	return out, nil
}
