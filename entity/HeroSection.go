package entity

import (
	"gorm.io/gorm"
)

// At most one active record by convention; lookup takes the first match.
type HeroSection struct {
	gorm.Model
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	ButtonText string `json:"buttonText"`
	Image      string `json:"image"`
	IsActive   bool   `json:"isActive"`
}
