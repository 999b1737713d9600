package repository

import (
	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/entity"
	"gorm.io/gorm"
)

type DelivererRepository struct {
	DB *gorm.DB
}

func NewDelivererRepository(db *gorm.DB) *DelivererRepository {
	return &DelivererRepository{DB: db}
}

func (r *DelivererRepository) List(onlyActive bool) ([]entity.Deliverer, error) {
	var out []entity.Deliverer
	q := r.DB.Order("id")
	if onlyActive {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&out).Error
	return out, err
}

func (r *DelivererRepository) Get(id uint) (*entity.Deliverer, error) {
	var d entity.Deliverer
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// GetActive returns the deliverer only if it exists and is active.
func (r *DelivererRepository) GetActive(id uint) (*entity.Deliverer, error) {
	var d entity.Deliverer
	err := r.DB.Where("id = ? AND is_active = ?", id, true).First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DelivererRepository) Create(d *entity.Deliverer) error {
	return r.DB.Create(d).Error
}

func (r *DelivererRepository) Update(id uint, updates map[string]any) error {
	res := r.DB.Model(&entity.Deliverer{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DelivererRepository) SetActive(id uint, active bool) error {
	return r.Update(id, map[string]any{"is_active": active})
}

func (r *DelivererRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Deliverer{}, id).Error
}
