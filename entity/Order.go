package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	OrderNumber string `gorm:"uniqueIndex;not null" json:"orderNumber"`
	Status      string `gorm:"not null;default:pending" json:"status"`

	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`

	DeliveryAddress string `json:"deliveryAddress"`
	DeliveryCity    string `json:"deliveryCity"`
	DeliveryNotes   string `json:"deliveryNotes"`

	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2)" json:"totalAmount"`

	// nil for anonymous checkout
	UserID *uint `json:"userId,omitempty"`
	User   *User `json:"-"`

	Items   []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`
	Reviews []Review    `json:"-"`
}
