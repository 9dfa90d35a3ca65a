package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductIngredient links a product to an ingredient. Rows with
// DefaultIncluded=false and IsActive=true are the chargeable extras.
type ProductIngredient struct {
	gorm.Model
	ProductID uint    `json:"productId"`
	Product   Product `json:"-"`

	IngredientID uint       `json:"ingredientId"`
	Ingredient   Ingredient `json:"ingredient"`

	DefaultIncluded bool            `json:"defaultIncluded"`
	ExtraCost       decimal.Decimal `gorm:"type:decimal(10,2)" json:"extraCost"`
	IsActive        bool            `json:"isActive"`
}
