package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItemExtra is an ingredient added beyond the product's default set.
// Quantity always matches the parent item's quantity.
type OrderItemExtra struct {
	gorm.Model
	OrderItemID uint      `json:"orderItemId"`
	OrderItem   OrderItem `json:"-"`

	IngredientID uint       `json:"ingredientId"`
	Ingredient   Ingredient `json:"-"`

	IngredientName string          `gorm:"not null" json:"ingredientName"`
	Quantity       int             `gorm:"not null" json:"quantity"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(10,2)" json:"unitPrice"`
	TotalPrice     decimal.Decimal `gorm:"type:decimal(10,2)" json:"totalPrice"`
}
