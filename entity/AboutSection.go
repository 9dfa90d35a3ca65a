package entity

import (
	"gorm.io/gorm"
)

type AboutSection struct {
	gorm.Model
	Title    string `json:"title"`
	Content  string `json:"content"`
	Image    string `json:"image"`
	IsActive bool   `json:"isActive"`
}
