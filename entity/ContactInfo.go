package entity

import (
	"gorm.io/gorm"
)

type ContactInfo struct {
	gorm.Model
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Schedule string `json:"schedule"`
	IsActive bool   `json:"isActive"`
}
