package services

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/brunoquiroz/DEMO-Comida-Rapida/entity"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory SQLite DB per test. The named
// shared-cache DSN keeps the database alive across pooled connections.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.Product{},
		&entity.Ingredient{}, &entity.ProductIngredient{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderItemExtra{},
		&entity.Review{},
		&entity.HeroSection{}, &entity.AboutSection{}, &entity.ContactInfo{},
		&entity.FeaturedProduct{}, &entity.SiteConfig{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// seedProduct creates an active product with its category.
func seedProduct(t *testing.T, db *gorm.DB, name string, price float64) *entity.Product {
	t.Helper()

	var cat entity.Category
	if err := db.FirstOrCreate(&cat, entity.Category{Name: "Test"}).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	p := entity.Product{
		Name:        name,
		Description: name + " description",
		Price:       decimal.NewFromFloat(price),
		IsActive:    true,
		CategoryID:  cat.ID,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return &p
}

// seedExtra attaches a chargeable extra (active, non-default) to a product.
func seedExtra(t *testing.T, db *gorm.DB, productID uint, name string, cost float64) *entity.Ingredient {
	t.Helper()

	ing := entity.Ingredient{Name: name, IsActive: true}
	if err := db.Create(&ing).Error; err != nil {
		t.Fatalf("seed ingredient: %v", err)
	}
	pi := entity.ProductIngredient{
		ProductID:       productID,
		IngredientID:    ing.ID,
		DefaultIncluded: false,
		ExtraCost:       decimal.NewFromFloat(cost),
		IsActive:        true,
	}
	if err := db.Create(&pi).Error; err != nil {
		t.Fatalf("seed association: %v", err)
	}
	return &ing
}

var orderSeq int64

// seedOrderAt inserts an order with a fixed creation timestamp, used by
// the report tests.
func seedOrderAt(t *testing.T, db *gorm.DB, createdAt time.Time, status string, total float64, email, phone string) *entity.Order {
	t.Helper()

	o := entity.Order{
		OrderNumber:   fmt.Sprintf("ORD-T%06d", atomic.AddInt64(&orderSeq, 1)),
		Status:        status,
		CustomerName:  "Test Customer",
		CustomerEmail: email,
		CustomerPhone: phone,
		TotalAmount:   decimal.NewFromFloat(total),
	}
	o.CreatedAt = createdAt
	if err := db.Create(&o).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return &o
}
