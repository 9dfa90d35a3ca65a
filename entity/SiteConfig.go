package entity

import (
	"gorm.io/gorm"
)

// SiteConfig is a singleton by the id=1 convention; reads get-or-create it.
type SiteConfig struct {
	gorm.Model
	SiteName     string `json:"siteName"`
	Logo         string `json:"logo"`
	PrimaryColor string `json:"primaryColor"`
	Currency     string `gorm:"default:CLP" json:"currency"`
}
