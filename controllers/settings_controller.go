package controllers

import (
	"encoding/json"

	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/pkg/resp"
	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/repository"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type SettingsController struct{ Repo *repository.SettingsRepository }

func NewSettingsController(r *repository.SettingsRepository) *SettingsController {
	return &SettingsController{Repo: r}
}

// GET /settings (public: opening hours, fee, promotion)
func (h *SettingsController) Get(c *gin.Context) {
	s, err := h.Repo.Get()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, s)
}

// PATCH /admin/settings
func (h *SettingsController) Update(c *gin.Context) {
	var req struct {
		OpeningHours            *string          `json:"openingHours"`
		StoreAddress            *string          `json:"storeAddress"`
		StorePhone              *string          `json:"storePhone"`
		DeliveryFee             *decimal.Decimal `json:"deliveryFee"`
		FreeDeliveryActive      *bool            `json:"freeDeliveryActive"`
		FreeDeliveryMinSubtotal *decimal.Decimal `json:"freeDeliveryMinSubtotal"`
		FreeDeliveryWeekdays    *[]int           `json:"freeDeliveryWeekdays"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.OpeningHours != nil {
		updates["opening_hours"] = *req.OpeningHours
	}
	if req.StoreAddress != nil {
		updates["store_address"] = *req.StoreAddress
	}
	if req.StorePhone != nil {
		updates["store_phone"] = *req.StorePhone
	}
	if req.DeliveryFee != nil {
		updates["delivery_fee"] = *req.DeliveryFee
	}
	if req.FreeDeliveryActive != nil {
		updates["free_delivery_active"] = *req.FreeDeliveryActive
	}
	if req.FreeDeliveryMinSubtotal != nil {
		updates["free_delivery_min_subtotal"] = *req.FreeDeliveryMinSubtotal
	}
	if req.FreeDeliveryWeekdays != nil {
		raw, err := json.Marshal(*req.FreeDeliveryWeekdays)
		if err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
		updates["free_delivery_weekdays"] = datatypes.JSON(raw)
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	s, err := h.Repo.Update(updates)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, s)
}
