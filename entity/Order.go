package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	DeliveryTypeDelivery = "delivery"
	DeliveryTypePickup   = "pickup"
)

type Order struct {
	gorm.Model
	Code string `gorm:"size:36;uniqueIndex" json:"code"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	OrderStatusID uint        `json:"orderStatusId"`
	OrderStatus   OrderStatus `json:"orderStatus"`

	// Fixed at creation, never changes.
	DeliveryType string `gorm:"size:20;not null" json:"deliveryType"`

	PaymentMethodID uint          `json:"paymentMethodId"`
	PaymentMethod   PaymentMethod `json:"-"`

	TotalPrice  decimal.Decimal `gorm:"type:decimal(10,2)" json:"totalPrice"`
	DeliveryFee decimal.Decimal `gorm:"type:decimal(10,2)" json:"deliveryFee"`

	// Shipping snapshot, copied from the chosen address at checkout.
	// The order never references the address row itself.
	ShippingStreet       string `json:"shippingStreet"`
	ShippingNumber       string `json:"shippingNumber"`
	ShippingComplement   string `json:"shippingComplement"`
	ShippingNeighborhood string `json:"shippingNeighborhood"`

	DelivererID *uint      `json:"delivererId,omitempty"`
	Deliverer   *Deliverer `json:"-"`

	// Only meaningful for cash on delivery.
	NeedsChange  bool            `json:"needsChange"`
	ChangeAmount decimal.Decimal `gorm:"type:decimal(10,2)" json:"changeAmount"`

	Notes string `json:"notes"`

	OrderItems []OrderItem `json:"-"`
	Payment    *Payment    `json:"-"`
}
