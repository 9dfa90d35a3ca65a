package configs

import (
	"github.com/brunoquiroz/DEMO-Comida-Rapida/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.Product{},
		&entity.Ingredient{}, &entity.ProductIngredient{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderItemExtra{},
		&entity.Review{},
		&entity.HeroSection{}, &entity.AboutSection{}, &entity.ContactInfo{},
		&entity.FeaturedProduct{}, &entity.SiteConfig{},
	)
}
