package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Payment struct {
	gorm.Model
	// Mirrors Order.TotalPrice at all times.
	Amount decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`

	// PIX transaction reference.
	TxRef string `gorm:"size:36" json:"txRef"`

	OrderID uint  `gorm:"uniqueIndex" json:"orderId"`
	Order   Order `json:"-"`

	PaymentStatusID uint          `json:"paymentStatusId"`
	PaymentStatus   PaymentStatus `json:"-"`
}
