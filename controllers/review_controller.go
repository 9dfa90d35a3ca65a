package controllers

import (
	"github.com/brunoquiroz/DEMO-Comida-Rapida/pkg/resp"
	"github.com/brunoquiroz/DEMO-Comida-Rapida/services"
	"github.com/brunoquiroz/DEMO-Comida-Rapida/utils"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	Service *services.ReviewService
}

func NewReviewController(service *services.ReviewService) *ReviewController {
	return &ReviewController{Service: service}
}

type CreateReviewReq struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
	OrderID uint   `json:"orderId"`
}

// POST /reviews (authenticated) — auto-approved, auto-associated to the
// caller; the order link only sticks when the order is theirs.
func (rc *ReviewController) Create(c *gin.Context) {
	var req CreateReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rev, err := rc.Service.Create(utils.CurrentUserID(c), req.Rating, req.Comment, req.OrderID)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, rev)
}

// GET /reviews — public listing; staff can pass ?include_all=1
func (rc *ReviewController) List(c *gin.Context) {
	includeAll := false
	switch c.Query("include_all") {
	case "1", "true", "yes":
		includeAll = true
	}

	items, err := rc.Service.List(includeAll, utils.IsStaff(c))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, items)
}

type VisibilityReq struct {
	IsVisible *bool `json:"is_visible" binding:"required"`
}

// PATCH /reviews/:id/visibility (admin)
func (rc *ReviewController) SetVisibility(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req VisibilityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "is_visible is required")
		return
	}

	rev, err := rc.Service.SetVisibility(id, *req.IsVisible)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"id": rev.ID, "is_visible": rev.IsVisible})
}

// DELETE /reviews/:id (admin)
func (rc *ReviewController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := rc.Service.Delete(id); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}
