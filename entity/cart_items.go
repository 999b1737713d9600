package entity

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	ProductID uint    `json:"productId"`
	Product   Product `json:"-"`

	Quantity int `json:"quantity"`

	// SelectedOptions may carry a custom-pricing blob (build-your-own bowl).
	SelectedOptions datatypes.JSON `json:"selectedOptions,omitempty"`

	Complements []Complement `gorm:"many2many:cart_item_complements;" json:"complements"`
}
