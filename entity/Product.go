package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Category    string          `json:"category"`
	Active      bool            `gorm:"default:true" json:"active"`

	Complements []Complement `gorm:"many2many:product_complements;" json:"-"`
	OrderItems  []OrderItem  `json:"-"`
}
