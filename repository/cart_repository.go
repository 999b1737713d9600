package repository

import (
	"errors"

	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/entity"
	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetCartWithItems returns the user's cart with items preloaded. A user
// without a cart gets an empty one back without error.
func (r *CartRepository) GetCartWithItems(userID uint) (*entity.Cart, error) {
	return r.GetCartWithItemsTx(r.DB, userID)
}

// GetCartWithItemsTx is the transaction-scoped variant; checkout reads the
// cart inside its transaction so the snapshot it prices is the one it later
// clears.
func (r *CartRepository) GetCartWithItemsTx(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Complements").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID}, nil
	}
	return &c, err
}

// GetOrCreateCart lazily creates the cart row on first add-to-cart.
func (r *CartRepository) GetOrCreateCart(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

func (r *CartRepository) AddItem(tx *gorm.DB, row *entity.CartItem) error {
	return tx.Create(row).Error
}

func (r *CartRepository) UpdateQty(tx *gorm.DB, userID, itemID uint, qty int) error {
	if qty <= 0 {
		return r.RemoveItem(tx, userID, itemID)
	}
	// ensure the item belongs to the user's cart
	return tx.Exec(`
		UPDATE cart_items
		   SET quantity = ?
		 WHERE id = ?
		   AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)
	`, qty, itemID, userID).Error
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, userID, itemID uint) error {
	var item entity.CartItem
	err := tx.Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("cart_items.id = ? AND carts.user_id = ?", itemID, userID).
		First(&item).Error
	if err != nil {
		return err
	}
	if err := tx.Model(&item).Association("Complements").Clear(); err != nil {
		return err
	}
	return tx.Delete(&item).Error
}

// RemoveItems deletes exactly the given cart items (and their complement
// links). Checkout uses this with the ids it snapshotted, so an item added
// to the cart mid-checkout survives instead of being wiped unordered.
func (r *CartRepository) RemoveItems(tx *gorm.DB, items []entity.CartItem) error {
	ids := make([]uint, 0, len(items))
	for i := range items {
		if err := tx.Model(&items[i]).Association("Complements").Clear(); err != nil {
			return err
		}
		ids = append(ids, items[i].ID)
	}
	if len(ids) == 0 {
		return nil
	}
	return tx.Where("id IN ?", ids).Delete(&entity.CartItem{}).Error
}

// ClearCart removes every item (and its complement links); the cart row
// itself survives for reuse.
func (r *CartRepository) ClearCart(tx *gorm.DB, userID uint) error {
	var c entity.Cart
	if err := tx.Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	var items []entity.CartItem
	if err := tx.Where("cart_id = ?", c.ID).Find(&items).Error; err != nil {
		return err
	}
	for i := range items {
		if err := tx.Model(&items[i]).Association("Complements").Clear(); err != nil {
			return err
		}
	}
	return tx.Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error
}
