package entity

import (
	"gorm.io/gorm"
)

type Address struct {
	gorm.Model
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	IsDefault    bool   `json:"isDefault"`

	UserID uint `json:"userId"`
	User   User `json:"-"`
}
