package controllers

import (
	"errors"

	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/entity"
	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/pkg/resp"
	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DelivererController struct{ Repo *repository.DelivererRepository }

func NewDelivererController(r *repository.DelivererRepository) *DelivererController {
	return &DelivererController{Repo: r}
}

// GET /admin/deliverers?active=1
func (h *DelivererController) List(c *gin.Context) {
	onlyActive := c.Query("active") == "1"
	out, err := h.Repo.List(onlyActive)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /admin/deliverers
func (h *DelivererController) Create(c *gin.Context) {
	var req struct {
		Name         string `json:"name" binding:"required"`
		PhoneNumber  string `json:"phoneNumber"`
		VehiclePlate string `json:"vehiclePlate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	d := entity.Deliverer{
		Name:         req.Name,
		PhoneNumber:  req.PhoneNumber,
		VehiclePlate: req.VehiclePlate,
		IsActive:     true,
	}
	if err := h.Repo.Create(&d); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, d)
}

// PATCH /admin/deliverers/:id
func (h *DelivererController) Update(c *gin.Context) {
	id := parseID(c, "id")
	if id == 0 {
		return
	}
	var req struct {
		Name         *string `json:"name"`
		PhoneNumber  *string `json:"phoneNumber"`
		VehiclePlate *string `json:"vehiclePlate"`
		IsActive     *bool   `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}
	if req.VehiclePlate != nil {
		updates["vehicle_plate"] = *req.VehiclePlate
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	if err := h.Repo.Update(id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "deliverer not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// DELETE /admin/deliverers/:id
func (h *DelivererController) Delete(c *gin.Context) {
	id := parseID(c, "id")
	if id == 0 {
		return
	}
	if err := h.Repo.Delete(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
