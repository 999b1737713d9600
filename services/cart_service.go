package services

import (
	"encoding/json"
	"errors"

	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/entity"
	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/repository"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	ProductRepo *repository.ProductRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, pr *repository.ProductRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, ProductRepo: pr}
}

type AddToCartIn struct {
	ProductID     uint           `json:"productId" binding:"required"`
	Quantity      int            `json:"quantity" binding:"min=1"`
	ComplementIDs []uint         `json:"complementIds"`
	CustomPricing *CustomPricing `json:"customPricing"`
}

// Get returns the cart plus a running subtotal computed with the same
// pricing rules checkout will apply.
func (s *CartService) Get(userID uint) (*entity.Cart, decimal.Decimal, error) {
	c, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	subtotal := decimal.Zero
	for _, it := range c.Items {
		unit := ResolveUnitPrice(it.Product.Price, it.SelectedOptions)
		subtotal = subtotal.Add(unit.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return c, subtotal, nil
}

func (s *CartService) Add(userID uint, in *AddToCartIn) error {
	if in.Quantity <= 0 {
		in.Quantity = 1
	}

	c, err := s.CartRepo.GetOrCreateCart(userID)
	if err != nil {
		return err
	}

	p, err := s.ProductRepo.GetBasics(in.ProductID)
	if err != nil {
		return errors.New("product not found")
	}

	complements, err := s.ProductRepo.GetComplementsByIDs(in.ComplementIDs)
	if err != nil {
		return err
	}
	if len(complements) != len(in.ComplementIDs) {
		return errors.New("invalid complements")
	}

	var blob datatypes.JSON
	if in.CustomPricing != nil {
		if !in.CustomPricing.Price.IsPositive() {
			return errors.New("custom price must be greater than zero")
		}
		raw, err := json.Marshal(in.CustomPricing)
		if err != nil {
			return err
		}
		blob = datatypes.JSON(raw)
	}

	line := &entity.CartItem{
		CartID:          c.ID,
		ProductID:       p.ID,
		Quantity:        in.Quantity,
		SelectedOptions: blob,
		Complements:     complements,
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.AddItem(tx, line)
	})
}

func (s *CartService) UpdateQty(userID, itemID uint, qty int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateQty(tx, userID, itemID, qty)
	})
}

func (s *CartService) RemoveItem(userID, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, userID, itemID)
	})
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
}
