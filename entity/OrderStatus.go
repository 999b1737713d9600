package entity

import (
	"gorm.io/gorm"
)

// Order status names. The lookup rows are seeded at startup and resolved
// into ids once per process (services.StatusIDs).
const (
	StatusPendingPayment = "pending_payment"
	StatusBeingPrepared  = "being_prepared"
	StatusReadyForPickup = "ready_for_pickup"
	StatusOnTheWay       = "on_the_way"
	StatusDelivered      = "delivered"
	StatusCanceled       = "canceled"
)

type OrderStatus struct {
	gorm.Model
	StatusName string `gorm:"size:100;uniqueIndex;not null" json:"statusName"`

	Orders []Order `json:"-"`
}
