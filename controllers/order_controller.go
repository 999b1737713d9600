package controllers

import (
	"errors"
	"strconv"

	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/pkg/resp"
	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/services"
	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

func parseID(c *gin.Context, name string) uint {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid "+name)
		return 0
	}
	return uint(id)
}

// mapOrderError translates core failures to HTTP responses.
func mapOrderError(c *gin.Context, err error) {
	var noAddr *services.NoAddressError
	switch {
	case errors.Is(err, services.ErrEmptyCart):
		resp.UnprocessableEntity(c, gin.H{"error": err.Error()})
	case errors.As(err, &noAddr):
		resp.UnprocessableEntity(c, gin.H{"error": noAddr.Error(), "hint": noAddr.Hint})
	case errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrAlreadyCanceled),
		errors.Is(err, services.ErrCancelClosed),
		errors.Is(err, services.ErrLastItem):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrDelivererUnavailable),
		errors.Is(err, services.ErrInvalidTotal):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrItemNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrPermissionDenied):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "order not found")
	default:
		resp.ServerError(c, err)
	}
}

// POST /orders/checkout
func (h *OrderController) Checkout(c *gin.Context) {
	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.Checkout(utils.CurrentUserID(c), &req)
	if err != nil {
		mapOrderError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders
func (h *OrderController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	items, err := h.Svc.ListForUser(utils.CurrentUserID(c), limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	orderID := parseID(c, "id")
	if orderID == 0 {
		return
	}
	detail, err := h.Svc.DetailForUser(utils.CurrentUserID(c), orderID)
	if err != nil {
		mapOrderError(c, err)
		return
	}
	resp.OK(c, detail)
}

// POST /orders/:id/cancel
func (h *OrderController) Cancel(c *gin.Context) {
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
