package entity

import (
	"gorm.io/gorm"
)

// Complement is a named add-on (granola, condensed milk, ...) attachable
// to products, cart items and order items.
type Complement struct {
	gorm.Model
	Name string `gorm:"not null" json:"name"`
}
