package controllers

import (
	"github.com/brunoquiroz/DEMO-Comida-Rapida/pkg/resp"
	"github.com/brunoquiroz/DEMO-Comida-Rapida/services"
	"github.com/brunoquiroz/DEMO-Comida-Rapida/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{Service: service}
}

// POST /orders — open to anyone; an authenticated caller gets the order
// attached to their account, anonymous checkout is always allowed.
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Service.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders?status= (admin)
func (oc *OrderController) List(c *gin.Context) {
	items, err := oc.Service.List(c.Query("status"))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /orders/:id (admin)
func (oc *OrderController) Detail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	order, err := oc.Service.Detail(id)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /orders/my/:id (authenticated) — a foreign order id yields the same
// 404 as a missing one.
func (oc *OrderController) DetailForMe(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	order, err := oc.Service.DetailForUser(utils.CurrentUserID(c), id)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /orders/my (authenticated)
func (oc *OrderController) ListForMe(c *gin.Context) {
	items, err := oc.Service.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, items)
}

type UpdateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /orders/:id/status (admin) — rejects values outside the known
// enumeration and leaves the order untouched in that case.
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Service.UpdateStatus(id, req.Status)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, order)
}
