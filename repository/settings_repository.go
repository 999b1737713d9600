package repository

import (
	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/entity"
	"gorm.io/gorm"
)

type SettingsRepository struct {
	DB *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

// Get returns the settings singleton, creating it empty when missing.
func (r *SettingsRepository) Get() (*entity.StoreSettings, error) {
	var s entity.StoreSettings
	if err := r.DB.FirstOrCreate(&s, entity.StoreSettings{Model: gorm.Model{ID: 1}}).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepository) Update(updates map[string]any) (*entity.StoreSettings, error) {
	s, err := r.Get()
	if err != nil {
		return nil, err
	}
	if err := r.DB.Model(s).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.Get()
}
