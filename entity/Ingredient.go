package entity

import (
	"gorm.io/gorm"
)

type Ingredient struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`

	ProductIngredients []ProductIngredient `json:"-"`
}
