package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Image       string          `json:"image"`
	IsActive    bool            `json:"isActive"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"`

	// per-product ingredient rules (default inclusion + extra cost)
	ProductIngredients []ProductIngredient `json:"productIngredients,omitempty"`
	OrderItems         []OrderItem         `json:"-"`
}
