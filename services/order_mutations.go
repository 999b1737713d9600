package services

import (
	"errors"

	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/entity"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Post-creation order editing (admin-only, enforced at the route). Every
// operation re-reads the order inside its transaction and adjusts the
// current total additively, so an earlier manual override survives later
// item edits instead of being silently recomputed away.

// retryOnce re-runs the read-modify-write once on a persistence failure
// (deadlock, constraint hiccup) before giving up with ErrPersistence.
// Business failures pass through untouched.
func retryOnce(fn func() error) error {
	err := fn()
	if err == nil || isBusinessError(err) {
		return err
	}
	if err = fn(); err == nil || isBusinessError(err) {
		return err
	}
	return ErrPersistence
}

func isBusinessError(err error) bool {
	return errors.Is(err, ErrItemNotFound) ||
		errors.Is(err, ErrLastItem) ||
		errors.Is(err, ErrInvalidTotal) ||
		errors.Is(err, gorm.ErrRecordNotFound)
}

var ErrInvalidTotal = errors.New("total must be greater than zero")

// OverrideTotal sets the order total directly, suspending the additive
// invariant until the next recompute. Payment.Amount mirrors the change.
func (s *OrderService) OverrideTotal(orderID uint, newTotal decimal.Decimal) (*entity.Order, error) {
	if !newTotal.IsPositive() {
		return nil, ErrInvalidTotal
	}

	var oldTotal decimal.Decimal
	err := retryOnce(func() error {
		return s.DB.Transaction(func(tx *gorm.DB) error {
			o, err := s.Repo.GetOrderTx(tx, orderID)
			if err != nil {
				return err
			}
			oldTotal = o.TotalPrice
			if err := s.Repo.UpdateTotal(tx, o.ID, newTotal); err != nil {
				return err
			}
			return s.Repo.UpdatePaymentAmount(tx, o.ID, newTotal)
		})
	})
	if err != nil {
		return nil, err
	}

	fresh, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if !newTotal.Equal(oldTotal) {
		if customer, err := s.UserRepo.FindByID(fresh.UserID); err == nil {
			s.Notifier.TotalAdjusted(fresh, customer.PhoneNumber, oldTotal, newTotal)
		}
	}
	return fresh, nil
}

type AddItemReq struct {
	ProductID     uint             `json:"productId" binding:"required"`
	Quantity      int              `json:"quantity" binding:"required,min=1"`
	ComplementIDs []uint           `json:"complementIds"`
	PriceOverride *decimal.Decimal `json:"priceOverride"`
}

// AddItem appends an item to an existing order and adds its value to the
// current total (additive on purpose, see package comment).
func (s *OrderService) AddItem(orderID uint, req *AddItemReq) (*entity.Order, error) {
	product, err := s.ProductRepo.GetBasics(req.ProductID)
	if err != nil {
		return nil, err
	}
	unit := product.Price
	if req.PriceOverride != nil {
		unit = *req.PriceOverride
	}

	complements, err := s.ProductRepo.GetComplementsByIDs(req.ComplementIDs)
	if err != nil {
		return nil, err
	}

	var newTotal decimal.Decimal
	err = retryOnce(func() error {
		return s.DB.Transaction(func(tx *gorm.DB) error {
			o, err := s.Repo.GetOrderTx(tx, orderID)
			if err != nil {
				return err
			}

			oi := entity.OrderItem{
				OrderID:      o.ID,
				ProductID:    product.ID,
				Quantity:     req.Quantity,
				PriceAtOrder: unit,
				Complements:  complements,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}

			newTotal = o.TotalPrice.Add(unit.Mul(decimal.NewFromInt(int64(req.Quantity))))
			if err := s.Repo.UpdateTotal(tx, o.ID, newTotal); err != nil {
				return err
			}
			return s.Repo.UpdatePaymentAmount(tx, o.ID, newTotal)
		})
	})
	if err != nil {
		return nil, err
	}

	fresh, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if customer, err := s.UserRepo.FindByID(fresh.UserID); err == nil {
		s.Notifier.ItemAdded(fresh, customer.PhoneNumber, product.Name, req.Quantity, newTotal)
	}
	return fresh, nil
}

// RemoveItem deletes an item (complement links first) and subtracts its
// frozen value from the current total.
func (s *OrderService) RemoveItem(orderID, itemID uint) (*entity.Order, error) {
	var (
		newTotal  decimal.Decimal
		productID uint
	)
	err := retryOnce(func() error {
		return s.DB.Transaction(func(tx *gorm.DB) error {
			o, err := s.Repo.GetOrderTx(tx, orderID)
			if err != nil {
				return err
			}

			oi, err := s.Repo.GetOrderItemTx(tx, o.ID, itemID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrItemNotFound
				}
				return err
			}
			productID = oi.ProductID

			// An order never drops to zero items.
			count, err := s.Repo.CountOrderItemsTx(tx, o.ID)
			if err != nil {
				return err
			}
			if count <= 1 {
				return ErrLastItem
			}

			if err := s.Repo.DeleteOrderItem(tx, oi); err != nil {
				return err
			}

			newTotal = o.TotalPrice.Sub(oi.PriceAtOrder.Mul(decimal.NewFromInt(int64(oi.Quantity))))
			if err := s.Repo.UpdateTotal(tx, o.ID, newTotal); err != nil {
				return err
			}
			return s.Repo.UpdatePaymentAmount(tx, o.ID, newTotal)
		})
	})
	if err != nil {
		return nil, err
	}

	fresh, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	productName := ""
	if p, err := s.ProductRepo.GetBasics(productID); err == nil {
		productName = p.Name
	}
	if customer, err := s.UserRepo.FindByID(fresh.UserID); err == nil {
		s.Notifier.ItemRemoved(fresh, customer.PhoneNumber, productName, newTotal)
	}
	return fresh, nil
}
