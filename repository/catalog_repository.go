package repository

import (
	"github.com/brunoquiroz/DEMO-Comida-Rapida/entity"

	"gorm.io/gorm"
)

type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// ---------------- Categories ----------------

func (r *CatalogRepository) ListCategories() ([]entity.Category, error) {
	var out []entity.Category
	err := r.DB.Order("name").Find(&out).Error
	return out, err
}

func (r *CatalogRepository) GetCategory(id uint) (*entity.Category, error) {
	var cat entity.Category
	if err := r.DB.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CatalogRepository) CreateCategory(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *CatalogRepository) UpdateCategory(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Category{}).Where("id = ?", id).Updates(updates).Error
}

func (r *CatalogRepository) DeleteCategory(id uint) error {
	return r.DB.Delete(&entity.Category{}, id).Error
}

// ---------------- Products ----------------

// ListProducts returns active products, optionally filtered by category
// name and a contains-match over name/description/category name.
func (r *CatalogRepository) ListProducts(category, search string) ([]entity.Product, error) {
	db := r.DB.Model(&entity.Product{}).
		Joins("JOIN categories c ON c.id = products.category_id").
		Where("products.is_active = ?", true)

	if category != "" && category != "all" {
		db = db.Where("c.name = ?", category)
	}
	if search != "" {
		like := "%" + search + "%"
		db = db.Where("products.name LIKE ? OR products.description LIKE ? OR c.name LIKE ?", like, like, like)
	}

	var out []entity.Product
	err := db.Order("products.id").Find(&out).Error
	return out, err
}

func (r *CatalogRepository) ListProductsByCategory(categoryID uint) ([]entity.Product, error) {
	var out []entity.Product
	err := r.DB.Where("category_id = ? AND is_active = ?", categoryID, true).Find(&out).Error
	return out, err
}

// FeaturedProducts returns the most recent active products.
func (r *CatalogRepository) FeaturedProducts(limit int) ([]entity.Product, error) {
	var out []entity.Product
	err := r.DB.Where("is_active = ?", true).
		Order("created_at DESC").Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *CatalogRepository) GetProduct(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// GetProductDetail preloads the ingredient associations for a detail view.
func (r *CatalogRepository) GetProductDetail(id uint) (*entity.Product, error) {
	var p entity.Product
	err := r.DB.
		Preload("ProductIngredients", "is_active = ?", true).
		Preload("ProductIngredients.Ingredient").
		First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CatalogRepository) CreateProduct(tx *gorm.DB, p *entity.Product) error {
	return tx.Create(p).Error
}

func (r *CatalogRepository) UpdateProduct(tx *gorm.DB, id uint, updates map[string]any) error {
	return tx.Model(&entity.Product{}).Where("id = ?", id).Updates(updates).Error
}

func (r *CatalogRepository) DeleteProduct(id uint) error {
	return r.DB.Delete(&entity.Product{}, id).Error
}

// ReplaceProductIngredients drops and recreates the association rows.
func (r *CatalogRepository) ReplaceProductIngredients(tx *gorm.DB, productID uint, rows []entity.ProductIngredient) error {
	if err := tx.Unscoped().Where("product_id = ?", productID).Delete(&entity.ProductIngredient{}).Error; err != nil {
		return err
	}
	for i := range rows {
		rows[i].ProductID = productID
		if err := tx.Create(&rows[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// ---------------- Ingredients ----------------

func (r *CatalogRepository) ListIngredients() ([]entity.Ingredient, error) {
	var out []entity.Ingredient
	err := r.DB.Order("name").Find(&out).Error
	return out, err
}

func (r *CatalogRepository) GetIngredient(id uint) (*entity.Ingredient, error) {
	var ing entity.Ingredient
	if err := r.DB.First(&ing, id).Error; err != nil {
		return nil, err
	}
	return &ing, nil
}

func (r *CatalogRepository) CreateIngredient(ing *entity.Ingredient) error {
	return r.DB.Create(ing).Error
}

func (r *CatalogRepository) UpdateIngredient(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Ingredient{}).Where("id = ?", id).Updates(updates).Error
}

func (r *CatalogRepository) DeleteIngredient(id uint) error {
	return r.DB.Delete(&entity.Ingredient{}, id).Error
}

// ChargeableExtras returns the active, non-default associations of a
// product whose ingredient id is in ids, keyed by ingredient id.
func (r *CatalogRepository) ChargeableExtras(productID uint, ids []uint) (map[uint]entity.ProductIngredient, error) {
	out := make(map[uint]entity.ProductIngredient)
	if len(ids) == 0 {
		return out, nil
	}
	var rows []entity.ProductIngredient
	err := r.DB.Preload("Ingredient").
		Where("product_id = ? AND default_included = ? AND is_active = ? AND ingredient_id IN ?",
			productID, false, true, ids).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, pi := range rows {
		out[pi.IngredientID] = pi
	}
	return out, nil
}
