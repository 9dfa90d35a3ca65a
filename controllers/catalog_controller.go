package controllers

import (
	"github.com/brunoquiroz/DEMO-Comida-Rapida/entity"
	"github.com/brunoquiroz/DEMO-Comida-Rapida/pkg/resp"
	"github.com/brunoquiroz/DEMO-Comida-Rapida/services"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	Service *services.CatalogService
	Orders  *services.OrderService
}

func NewCatalogController(service *services.CatalogService, orders *services.OrderService) *CatalogController {
	return &CatalogController{Service: service, Orders: orders}
}

// ----- Categories -----

// GET /categories
func (cc *CatalogController) Categories(c *gin.Context) {
	items, err := cc.Service.Categories()
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /categories/:id/products
func (cc *CatalogController) CategoryProducts(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	items, err := cc.Service.CategoryProducts(id)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, items)
}

type CategoryReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// POST /categories (admin)
func (cc *CatalogController) CreateCategory(c *gin.Context) {
	var req CategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat := entity.Category{Name: req.Name, Description: req.Description}
	if err := cc.Service.CreateCategory(&cat); err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, cat)
}

// PATCH /categories/:id (admin)
func (cc *CatalogController) UpdateCategory(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req CategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := cc.Service.UpdateCategory(id, map[string]any{
		"name":        req.Name,
		"description": req.Description,
	}); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}

// DELETE /categories/:id (admin)
func (cc *CatalogController) DeleteCategory(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := cc.Service.DeleteCategory(id); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}

// ----- Products -----

// GET /products?category=&search=
func (cc *CatalogController) Products(c *gin.Context) {
	items, err := cc.Service.Products(c.Query("category"), c.Query("search"))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /products/featured
func (cc *CatalogController) Featured(c *gin.Context) {
	items, err := cc.Service.Featured()
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /products/search?q=
func (cc *CatalogController) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		resp.BadRequest(c, "search term required")
		return
	}
	items, err := cc.Service.Products("", q)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /products/:id
func (cc *CatalogController) ProductDetail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	p, err := cc.Service.ProductDetail(id)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, p)
}

// POST /products (admin)
func (cc *CatalogController) CreateProduct(c *gin.Context) {
	var req services.ProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := cc.Service.CreateProduct(&req)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, p)
}

// PATCH /products/:id (admin)
func (cc *CatalogController) UpdateProduct(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req services.ProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := cc.Service.UpdateProduct(id, &req)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, p)
}

// DELETE /products/:id (admin)
func (cc *CatalogController) DeleteProduct(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := cc.Service.DeleteProduct(id); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}

type PriceReq struct {
	ExtraIDs []uint `json:"extra_ids"`
}

// POST /products/:id/calculate-price
// Lenient on unknown extras: they are dropped from the total, not rejected.
func (cc *CatalogController) CalculatePrice(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req PriceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "extra_ids must be a list of ids")
		return
	}
	preview, err := cc.Orders.PreviewPrice(id, req.ExtraIDs)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{
		"base_price":   preview.BasePrice,
		"extras_total": preview.ExtrasTotal,
		"total":        preview.Total,
		"extra_ids":    req.ExtraIDs,
	})
}

// ----- Ingredients -----

// GET /ingredients
func (cc *CatalogController) Ingredients(c *gin.Context) {
	items, err := cc.Service.Ingredients()
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, items)
}

type IngredientReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// POST /ingredients (admin)
func (cc *CatalogController) CreateIngredient(c *gin.Context) {
	var req IngredientReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ing := entity.Ingredient{Name: req.Name, Description: req.Description, IsActive: true}
	if err := cc.Service.CreateIngredient(&ing); err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, ing)
}

type IngredientUpdateReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// PATCH /ingredients/:id (admin) — partial update; deactivation keeps the
// row for historical associations.
func (cc *CatalogController) UpdateIngredient(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req IngredientUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	ing, err := cc.Service.UpdateIngredient(id, updates)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, ing)
}

// DELETE /ingredients/:id (admin)
func (cc *CatalogController) DeleteIngredient(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := cc.Service.DeleteIngredient(id); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}
