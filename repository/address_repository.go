package repository

import (
	"errors"

	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/entity"
	"gorm.io/gorm"
)

type AddressRepository struct {
	DB *gorm.DB
}

func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{DB: db}
}

func (r *AddressRepository) ListForUser(userID uint) ([]entity.Address, error) {
	var out []entity.Address
	err := r.DB.Where("user_id = ?", userID).Order("is_default DESC, id").Find(&out).Error
	return out, err
}

func (r *AddressRepository) GetForUser(userID, addressID uint) (*entity.Address, error) {
	var a entity.Address
	if err := r.DB.Where("id = ? AND user_id = ?", addressID, userID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AddressRepository) Create(a *entity.Address) error {
	return r.DB.Create(a).Error
}

func (r *AddressRepository) Update(userID, addressID uint, updates map[string]any) error {
	res := r.DB.Model(&entity.Address{}).
		Where("id = ? AND user_id = ?", addressID, userID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *AddressRepository) Delete(userID, addressID uint) error {
	return r.DB.Where("id = ? AND user_id = ?", addressID, userID).
		Delete(&entity.Address{}).Error
}

// SetDefault makes addressID the user's only default address.
func (r *AddressRepository) SetDefault(userID, addressID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.Address{}).
			Where("user_id = ?", userID).
			Update("is_default", false).Error; err != nil {
			return err
		}
		res := tx.Model(&entity.Address{}).
			Where("id = ? AND user_id = ?", addressID, userID).
			Update("is_default", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ResolveShipping picks the address to snapshot onto a delivery order:
// the explicit id when given (must belong to the user), else the default
// address, else the first address on file. Nil when the user has none.
func (r *AddressRepository) ResolveShipping(userID uint, addressID *uint) (*entity.Address, error) {
	if addressID != nil && *addressID != 0 {
		return r.GetForUser(userID, *addressID)
	}

	var a entity.Address
	err := r.DB.Where("user_id = ? AND is_default = ?", userID, true).First(&a).Error
	if err == nil {
		return &a, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = r.DB.Where("user_id = ?", userID).Order("id").First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
