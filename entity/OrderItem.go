package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem snapshots the product name/description/price at checkout so
// later catalog edits never change historical orders.
type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	ProductID uint    `json:"productId"`
	Product   Product `json:"-"`

	ProductName        string          `gorm:"not null" json:"productName"`
	ProductDescription string          `json:"productDescription"`
	Quantity           int             `gorm:"not null" json:"quantity"`
	UnitPrice          decimal.Decimal `gorm:"type:decimal(10,2)" json:"unitPrice"`
	TotalPrice         decimal.Decimal `gorm:"type:decimal(10,2)" json:"totalPrice"`

	Extras []OrderItemExtra `gorm:"constraint:OnDelete:CASCADE" json:"extras"`
}
