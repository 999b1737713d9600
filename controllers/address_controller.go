package controllers

import (
	"errors"

	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/entity"
	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/pkg/resp"
	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/repository"
	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddressController struct{ Repo *repository.AddressRepository }

func NewAddressController(r *repository.AddressRepository) *AddressController {
	return &AddressController{Repo: r}
}

// GET /addresses
func (h *AddressController) List(c *gin.Context) {
	out, err := h.Repo.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /addresses
func (h *AddressController) Create(c *gin.Context) {
	var req struct {
		Street       string `json:"street" binding:"required"`
		Number       string `json:"number" binding:"required"`
		Complement   string `json:"complement"`
		Neighborhood string `json:"neighborhood" binding:"required"`
		IsDefault    bool   `json:"isDefault"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	a := entity.Address{
		Street:       req.Street,
		Number:       req.Number,
		Complement:   req.Complement,
		Neighborhood: req.Neighborhood,
		UserID:       utils.CurrentUserID(c),
	}
	if err := h.Repo.Create(&a); err != nil {
		resp.ServerError(c, err)
		return
	}
	if req.IsDefault {
		if err := h.Repo.SetDefault(a.UserID, a.ID); err != nil {
			resp.ServerError(c, err)
			return
		}
		a.IsDefault = true
	}
	resp.Created(c, a)
}

// PATCH /addresses/:id
func (h *AddressController) Update(c *gin.Context) {
	addressID := parseID(c, "id")
	if addressID == 0 {
		return
	}
	var req struct {
		Street       *string `json:"street"`
		Number       *string `json:"number"`
		Complement   *string `json:"complement"`
		Neighborhood *string `json:"neighborhood"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Street != nil {
		updates["street"] = *req.Street
	}
	if req.Number != nil {
		updates["number"] = *req.Number
	}
	if req.Complement != nil {
		updates["complement"] = *req.Complement
	}
	if req.Neighborhood != nil {
		updates["neighborhood"] = *req.Neighborhood
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	if err := h.Repo.Update(utils.CurrentUserID(c), addressID, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "address not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// PATCH /addresses/:id/default
func (h *AddressController) SetDefault(c *gin.Context) {
	addressID := parseID(c, "id")
	if addressID == 0 {
		return
	}
	if err := h.Repo.SetDefault(utils.CurrentUserID(c), addressID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "address not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// DELETE /addresses/:id
func (h *AddressController) Delete(c *gin.Context) {
	addressID := parseID(c, "id")
	if addressID == 0 {
		return
	}
	if err := h.Repo.Delete(utils.CurrentUserID(c), addressID); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
