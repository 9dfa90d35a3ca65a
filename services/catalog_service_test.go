package services

import (
	"errors"
	"testing"

	"github.com/brunoquiroz/DEMO-Comida-Rapida/entity"
	"github.com/brunoquiroz/DEMO-Comida-Rapida/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCatalogService(db *gorm.DB) *CatalogService {
	return NewCatalogService(db, repository.NewCatalogRepository(db))
}

func TestCreateProductWithIngredients(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogService(db)

	cat := entity.Category{Name: "Hamburguesas"}
	require.NoError(t, svc.CreateCategory(&cat))

	cheese := entity.Ingredient{Name: "Queso", IsActive: true}
	require.NoError(t, svc.CreateIngredient(&cheese))

	p, err := svc.CreateProduct(&ProductIn{
		Name:       "Clásica",
		Price:      decimal.NewFromFloat(5990),
		CategoryID: cat.ID,
		Ingredients: []ProductIngredientIn{
			{IngredientID: cheese.ID, ExtraCost: decimal.NewFromFloat(800), IsActive: true},
		},
	})
	require.NoError(t, err)

	assert.True(t, p.IsActive, "active by default")
	require.Len(t, p.ProductIngredients, 1)
	assert.Equal(t, cheese.ID, p.ProductIngredients[0].IngredientID)
	assert.False(t, p.ProductIngredients[0].DefaultIncluded)
}

func TestCreateProductUnknownCategory(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogService(db)

	_, err := svc.CreateProduct(&ProductIn{
		Name:       "Huérfana",
		CategoryID: 9999,
	})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "categoryId", verr.Field)
}

func TestUpdateProductReplacesIngredients(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogService(db)

	cat := entity.Category{Name: "Hamburguesas"}
	require.NoError(t, svc.CreateCategory(&cat))
	cheese := entity.Ingredient{Name: "Queso", IsActive: true}
	bacon := entity.Ingredient{Name: "Tocino", IsActive: true}
	require.NoError(t, svc.CreateIngredient(&cheese))
	require.NoError(t, svc.CreateIngredient(&bacon))

	p, err := svc.CreateProduct(&ProductIn{
		Name:       "Clásica",
		Price:      decimal.NewFromFloat(5990),
		CategoryID: cat.ID,
		Ingredients: []ProductIngredientIn{
			{IngredientID: cheese.ID, ExtraCost: decimal.NewFromFloat(800), IsActive: true},
		},
	})
	require.NoError(t, err)

	got, err := svc.UpdateProduct(p.ID, &ProductIn{
		Name:       "Clásica XL",
		Price:      decimal.NewFromFloat(6990),
		CategoryID: cat.ID,
		Ingredients: []ProductIngredientIn{
			{IngredientID: bacon.ID, ExtraCost: decimal.NewFromFloat(1000), IsActive: true},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Clásica XL", got.Name)
	require.Len(t, got.ProductIngredients, 1)
	assert.Equal(t, bacon.ID, got.ProductIngredients[0].IngredientID)
}

func TestProductsSearchAndCategoryFilter(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogService(db)

	burgers := entity.Category{Name: "Hamburguesas"}
	drinks := entity.Category{Name: "Bebidas"}
	require.NoError(t, svc.CreateCategory(&burgers))
	require.NoError(t, svc.CreateCategory(&drinks))

	active := true
	_, err := svc.CreateProduct(&ProductIn{
		Name: "Clásica", Price: decimal.NewFromFloat(5990),
		CategoryID: burgers.ID, IsActive: &active,
	})
	require.NoError(t, err)
	_, err = svc.CreateProduct(&ProductIn{
		Name: "Bebida 500ml", Price: decimal.NewFromFloat(1500),
		CategoryID: drinks.ID, IsActive: &active,
	})
	require.NoError(t, err)

	inactive := false
	_, err = svc.CreateProduct(&ProductIn{
		Name: "Clásica retirada", Price: decimal.NewFromFloat(100),
		CategoryID: burgers.ID, IsActive: &inactive,
	})
	require.NoError(t, err)

	all, err := svc.Products("", "")
	require.NoError(t, err)
	assert.Len(t, all, 2, "inactive products are hidden")

	onlyBurgers, err := svc.Products("Hamburguesas", "")
	require.NoError(t, err)
	require.Len(t, onlyBurgers, 1)
	assert.Equal(t, "Clásica", onlyBurgers[0].Name)

	found, err := svc.Products("", "bebida")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Bebida 500ml", found[0].Name)
}

func TestUpdateIngredient(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogService(db)

	ing := entity.Ingredient{Name: "Queso", IsActive: true}
	require.NoError(t, svc.CreateIngredient(&ing))

	got, err := svc.UpdateIngredient(ing.ID, map[string]any{
		"name":      "Queso cheddar",
		"is_active": false,
	})
	require.NoError(t, err)
	assert.Equal(t, "Queso cheddar", got.Name)
	assert.False(t, got.IsActive)

	_, err = svc.UpdateIngredient(9999, map[string]any{"name": "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteIngredient(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogService(db)

	ing := entity.Ingredient{Name: "Tocino", IsActive: true}
	require.NoError(t, svc.CreateIngredient(&ing))

	require.NoError(t, svc.DeleteIngredient(ing.ID))
	assert.ErrorIs(t, svc.DeleteIngredient(ing.ID), ErrNotFound)

	items, err := svc.Ingredients()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCategoryProductsUnknownCategory(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogService(db)

	_, err := svc.CategoryProducts(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductDetailPreloadsActiveAssociations(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogService(db)

	p := seedProduct(t, db, "Clásica", 5990)
	seedExtra(t, db, p.ID, "Queso extra", 800)

	// inactive association rows are excluded from the detail view
	off := entity.Ingredient{Name: "Descontinuado", IsActive: true}
	require.NoError(t, db.Create(&off).Error)
	require.NoError(t, db.Create(&entity.ProductIngredient{
		ProductID:    p.ID,
		IngredientID: off.ID,
		IsActive:     false,
	}).Error)

	got, err := svc.ProductDetail(p.ID)
	require.NoError(t, err)
	require.Len(t, got.ProductIngredients, 1)
	assert.Equal(t, "Queso extra", got.ProductIngredients[0].Ingredient.Name)

	_, err = svc.ProductDetail(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}
