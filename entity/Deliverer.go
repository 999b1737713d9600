package entity

import (
	"gorm.io/gorm"
)

type Deliverer struct {
	gorm.Model
	Name         string `gorm:"not null" json:"name"`
	PhoneNumber  string `json:"phoneNumber"`
	VehiclePlate string `json:"vehiclePlate"`
	IsActive     bool   `gorm:"default:true" json:"isActive"`

	Orders []Order `json:"-"`
}
