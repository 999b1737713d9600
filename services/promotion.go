package services

import (
	"encoding/json"
	"time"

	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/entity"
	"github.com/shopspring/decimal"
)

// EffectiveDeliveryFee returns the fee to charge at order creation. Pickup
// orders never pay a fee. Delivery orders pay the nominal fee unless the
// free-delivery promotion applies: active, today's weekday in the configured
// set and subtotal at or above the minimum. Evaluated once, at creation —
// later edits never re-run this.
func EffectiveDeliveryFee(subtotal decimal.Decimal, deliveryType string, now time.Time, settings *entity.StoreSettings) decimal.Decimal {
	if deliveryType != entity.DeliveryTypeDelivery {
		return decimal.Zero
	}
	if settings.FreeDeliveryActive &&
		weekdayActive(settings, now.Weekday()) &&
		subtotal.GreaterThanOrEqual(settings.FreeDeliveryMinSubtotal) {
		return decimal.Zero
	}
	return settings.DeliveryFee
}

func weekdayActive(settings *entity.StoreSettings, wd time.Weekday) bool {
	if len(settings.FreeDeliveryWeekdays) == 0 {
		return false
	}
	var days []int
	if err := json.Unmarshal(settings.FreeDeliveryWeekdays, &days); err != nil {
		return false
	}
	for _, d := range days {
		if d == int(wd) {
			return true
		}
	}
	return false
}
