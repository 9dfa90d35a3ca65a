package services

import (
	"errors"

	"github.com/brunoquiroz/DEMO-Comida-Rapida/entity"
	"github.com/brunoquiroz/DEMO-Comida-Rapida/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CatalogService struct {
	DB   *gorm.DB
	Repo *repository.CatalogRepository
}

func NewCatalogService(db *gorm.DB, repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{DB: db, Repo: repo}
}

// ----- Categories -----

func (s *CatalogService) Categories() ([]entity.Category, error) {
	return s.Repo.ListCategories()
}

func (s *CatalogService) CategoryProducts(categoryID uint) ([]entity.Product, error) {
	if _, err := s.Repo.GetCategory(categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Repo.ListProductsByCategory(categoryID)
}

func (s *CatalogService) CreateCategory(cat *entity.Category) error {
	return s.Repo.CreateCategory(cat)
}

func (s *CatalogService) UpdateCategory(id uint, updates map[string]any) error {
	if _, err := s.Repo.GetCategory(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.Repo.UpdateCategory(id, updates)
}

func (s *CatalogService) DeleteCategory(id uint) error {
	return s.Repo.DeleteCategory(id)
}

// ----- Products -----

func (s *CatalogService) Products(category, search string) ([]entity.Product, error) {
	return s.Repo.ListProducts(category, search)
}

func (s *CatalogService) Featured() ([]entity.Product, error) {
	return s.Repo.FeaturedProducts(6)
}

func (s *CatalogService) ProductDetail(id uint) (*entity.Product, error) {
	p, err := s.Repo.GetProductDetail(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

type ProductIngredientIn struct {
	IngredientID    uint            `json:"ingredientId" binding:"required"`
	DefaultIncluded bool            `json:"defaultIncluded"`
	ExtraCost       decimal.Decimal `json:"extraCost"`
	IsActive        bool            `json:"isActive"`
}

type ProductIn struct {
	Name        string                `json:"name" binding:"required"`
	Description string                `json:"description"`
	Price       decimal.Decimal       `json:"price"`
	Image       string                `json:"image"`
	IsActive    *bool                 `json:"isActive"`
	CategoryID  uint                  `json:"categoryId" binding:"required"`
	Ingredients []ProductIngredientIn `json:"ingredients"`
}

// CreateProduct persists the product and its ingredient rules atomically.
func (s *CatalogService) CreateProduct(in *ProductIn) (*entity.Product, error) {
	if _, err := s.Repo.GetCategory(in.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, validationErr("categoryId", "category does not exist")
		}
		return nil, err
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	p := entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		IsActive:    active,
		CategoryID:  in.CategoryID,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateProduct(tx, &p); err != nil {
			return err
		}
		return s.Repo.ReplaceProductIngredients(tx, p.ID, assocRows(in.Ingredients))
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.GetProductDetail(p.ID)
}

func (s *CatalogService) UpdateProduct(id uint, in *ProductIn) (*entity.Product, error) {
	if _, err := s.Repo.GetProduct(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates := map[string]any{
		"name":        in.Name,
		"description": in.Description,
		"price":       in.Price,
		"image":       in.Image,
		"category_id": in.CategoryID,
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.UpdateProduct(tx, id, updates); err != nil {
			return err
		}
		if in.Ingredients != nil {
			return s.Repo.ReplaceProductIngredients(tx, id, assocRows(in.Ingredients))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.GetProductDetail(id)
}

func (s *CatalogService) DeleteProduct(id uint) error {
	return s.Repo.DeleteProduct(id)
}

func assocRows(in []ProductIngredientIn) []entity.ProductIngredient {
	rows := make([]entity.ProductIngredient, 0, len(in))
	for _, pi := range in {
		rows = append(rows, entity.ProductIngredient{
			IngredientID:    pi.IngredientID,
			DefaultIncluded: pi.DefaultIncluded,
			ExtraCost:       pi.ExtraCost,
			IsActive:        pi.IsActive,
		})
	}
	return rows
}

// ----- Ingredients -----

func (s *CatalogService) Ingredients() ([]entity.Ingredient, error) {
	return s.Repo.ListIngredients()
}

func (s *CatalogService) CreateIngredient(ing *entity.Ingredient) error {
	return s.Repo.CreateIngredient(ing)
}

func (s *CatalogService) UpdateIngredient(id uint, updates map[string]any) (*entity.Ingredient, error) {
	if _, err := s.Repo.GetIngredient(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.Repo.UpdateIngredient(id, updates); err != nil {
		return nil, err
	}
	return s.Repo.GetIngredient(id)
}

func (s *CatalogService) DeleteIngredient(id uint) error {
	if _, err := s.Repo.GetIngredient(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.Repo.DeleteIngredient(id)
}
