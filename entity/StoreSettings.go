package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StoreSettings is a singleton row (id 1) holding store configuration:
// opening hours, nominal delivery fee and the free-delivery promotion rule.
type StoreSettings struct {
	gorm.Model
	OpeningHours string `json:"openingHours"`
	StoreAddress string `json:"storeAddress"`
	StorePhone   string `json:"storePhone"`

	DeliveryFee decimal.Decimal `gorm:"type:decimal(10,2)" json:"deliveryFee"`

	FreeDeliveryActive      bool            `json:"freeDeliveryActive"`
	FreeDeliveryMinSubtotal decimal.Decimal `gorm:"type:decimal(10,2)" json:"freeDeliveryMinSubtotal"`
	// JSON array of weekdays, 0=Sunday .. 6=Saturday.
	FreeDeliveryWeekdays datatypes.JSON `json:"freeDeliveryWeekdays"`
}
