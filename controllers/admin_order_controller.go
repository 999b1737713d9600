package controllers

import (
	"strconv"

	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/pkg/resp"
	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/services"
	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AdminOrderController exposes the workflow and editing surface reserved
// for administrators.
type AdminOrderController struct{ Svc *services.OrderService }

func NewAdminOrderController(s *services.OrderService) *AdminOrderController {
	return &AdminOrderController{Svc: s}
}

// GET /admin/orders?status=&page=&limit=
func (h *AdminOrderController) List(c *gin.Context) {
	var statusID *uint
	if raw := c.Query("status"); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 64); err == nil {
			id := uint(v)
			statusID = &id
		}
	}
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	out, err := h.Svc.ListAll(statusID, page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /admin/orders/:id
func (h *AdminOrderController) Detail(c *gin.Context) {
	orderID := parseID(c, "id")
	if orderID == 0 {
		return
	}
	detail, err := h.Svc.Detail(orderID)
	if err != nil {
		mapOrderError(c, err)
		return
	}
	resp.OK(c, detail)
}

// PATCH /admin/orders/:id/status
func (h *AdminOrderController) Transition(c *gin.Context) {
	orderID := parseID(c, "id")
	if orderID == 0 {
		return
	}
	var req struct {
		Status      string `json:"status" binding:"required"`
		DelivererID *uint  `json:"delivererId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.Transition(orderID, req.Status, req.DelivererID)
	if err != nil {
		mapOrderError(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /admin/orders/:id/cancel
func (h *AdminOrderController) Cancel(c *gin.Context) {
	orderID := parseID(c, "id")
	if orderID == 0 {
		return
	}
	order, err := h.Svc.Cancel(orderID, utils.CurrentUserID(c), utils.CurrentRole(c))
	if err != nil {
		mapOrderError(c, err)
		return
	}
	resp.OK(c, order)
}

// PATCH /admin/orders/:id/total
func (h *AdminOrderController) OverrideTotal(c *gin.Context) {
	orderID := parseID(c, "id")
	if orderID == 0 {
		return
	}
	var req struct {
		Total decimal.Decimal `json:"total" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.OverrideTotal(orderID, req.Total)
	if err != nil {
		mapOrderError(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /admin/orders/:id/items
func (h *AdminOrderController) AddItem(c *gin.Context) {
	orderID := parseID(c, "id")
	if orderID == 0 {
		return
	}
	var req services.AddItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.AddItem(orderID, &req)
	if err != nil {
		mapOrderError(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /admin/orders/:id/items/:itemId
func (h *AdminOrderController) RemoveItem(c *gin.Context) {
	orderID := parseID(c, "id")
	if orderID == 0 {
		return
	}
	itemID := parseID(c, "itemId")
	if itemID == 0 {
		return
	}

	order, err := h.Svc.RemoveItem(orderID, itemID)
	if err != nil {
		mapOrderError(c, err)
		return
	}
	resp.OK(c, order)
}
