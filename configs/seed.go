package configs

import (
	"log"

	"github.com/brunoquiroz/DEMO-Comida-Rapida/entity"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the staff account from env on first boot.
func SeedAdmin(email, pass string) error {
	db := DB()
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// SeedContent makes sure the storefront always has something to render:
// one active record per editorial section and the SiteConfig row.
func SeedContent() error {
	db := DB()

	db.FirstOrCreate(&entity.HeroSection{}, entity.HeroSection{
		Title:      "Comida rápida a tu puerta",
		Subtitle:   "Pide online, paga al recibir",
		ButtonText: "Ver menú",
		IsActive:   true,
	})
	db.FirstOrCreate(&entity.AboutSection{}, entity.AboutSection{
		Title:    "Sobre nosotros",
		Content:  "Cocina casera, ingredientes frescos.",
		IsActive: true,
	})
	db.FirstOrCreate(&entity.ContactInfo{}, entity.ContactInfo{
		Email:    "contacto@example.com",
		Schedule: "Lun-Dom 12:00-23:00",
		IsActive: true,
	})

	var cfg entity.SiteConfig
	if err := db.FirstOrCreate(&cfg, map[string]any{"id": 1}).Error; err != nil {
		return err
	}

	log.Println("content singletons seeded")
	return nil
}

// SeedCatalog loads a small demo menu when the catalog is empty.
func SeedCatalog() error {
	db := DB()

	var count int64
	db.Model(&entity.Category{}).Count(&count)
	if count > 0 {
		return nil
	}

	burgers := entity.Category{Name: "Hamburguesas", Description: "Clásicas y especiales"}
	drinks := entity.Category{Name: "Bebidas"}
	if err := db.Create(&burgers).Error; err != nil {
		return err
	}
	if err := db.Create(&drinks).Error; err != nil {
		return err
	}

	cheese := entity.Ingredient{Name: "Queso extra", IsActive: true}
	bacon := entity.Ingredient{Name: "Tocino", IsActive: true}
	lettuce := entity.Ingredient{Name: "Lechuga", IsActive: true}
	db.Create(&cheese)
	db.Create(&bacon)
	db.Create(&lettuce)

	classic := entity.Product{
		Name:        "Hamburguesa Clásica",
		Description: "Carne, lechuga, tomate",
		Price:       decimal.NewFromFloat(5990),
		IsActive:    true,
		CategoryID:  burgers.ID,
	}
	if err := db.Create(&classic).Error; err != nil {
		return err
	}
	db.Create(&entity.ProductIngredient{
		ProductID: classic.ID, IngredientID: lettuce.ID,
		DefaultIncluded: true, IsActive: true,
	})
	db.Create(&entity.ProductIngredient{
		ProductID: classic.ID, IngredientID: cheese.ID,
		DefaultIncluded: false, ExtraCost: decimal.NewFromFloat(800), IsActive: true,
	})
	db.Create(&entity.ProductIngredient{
		ProductID: classic.ID, IngredientID: bacon.ID,
		DefaultIncluded: false, ExtraCost: decimal.NewFromFloat(1000), IsActive: true,
	})

	db.Create(&entity.Product{
		Name:       "Bebida 500ml",
		Price:      decimal.NewFromFloat(1500),
		IsActive:   true,
		CategoryID: drinks.ID,
	})

	log.Println("demo catalog seeded")
	return nil
}
