package entity

import (
	"gorm.io/gorm"
)

type FeaturedProduct struct {
	gorm.Model
	Tagline  string `json:"tagline"`
	IsActive bool   `json:"isActive"`

	ProductID uint    `json:"productId"`
	Product   Product `json:"product"`
}
