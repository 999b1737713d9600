package entity

import (
	"gorm.io/gorm"
)

const (
	PaymentMethodPix            = "PIX"
	PaymentMethodCreditCard     = "CREDIT_CARD"
	PaymentMethodCashOnDelivery = "CASH_ON_DELIVERY"
)

type PaymentMethod struct {
	gorm.Model
	MethodName string `gorm:"size:100;uniqueIndex;not null" json:"methodName"`

	Orders []Order `json:"-"`
}
