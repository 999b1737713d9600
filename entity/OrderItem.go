package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	ProductID uint    `json:"productId"`
	Product   Product `json:"-"`

	Quantity int `json:"quantity"`

	// Frozen unit price at creation; the catalog price may drift later.
	PriceAtOrder decimal.Decimal `gorm:"type:decimal(10,2)" json:"priceAtOrder"`

	// Frozen copy of any custom-pricing blob from the cart item.
	SelectedOptionsSnapshot datatypes.JSON `json:"selectedOptionsSnapshot,omitempty"`

	Complements []Complement `gorm:"many2many:order_item_complements;" json:"complements"`
}
