package entity

import (
	"gorm.io/gorm"
)

// Review carries two independent moderation flags: IsApproved marks it as
// legitimate feedback, IsVisible controls public display.
type Review struct {
	gorm.Model
	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `json:"comment"`

	IsApproved bool `json:"isApproved"`
	IsVisible  bool `json:"isVisible"`

	UserID uint `json:"userId"`
	User   User `json:"user"`

	// only set when the review is attached to an order the author owns
	OrderID *uint  `json:"orderId,omitempty"`
	Order   *Order `json:"-"`
}
