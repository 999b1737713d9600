package repository

import (
	"github.com/KaioAlixandre/Site-AcaiDicasa-sub001/entity"
	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) List(onlyActive bool) ([]entity.Product, error) {
	var out []entity.Product
	q := r.DB.Order("id")
	if onlyActive {
		q = q.Where("active = ?", true)
	}
	err := q.Find(&out).Error
	return out, err
}

func (r *ProductRepository) Get(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.Preload("Complements").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// GetBasics fetches only what pricing needs (id, name, price).
func (r *ProductRepository) GetBasics(id uint) (entity.Product, error) {
	var p entity.Product
	err := r.DB.Select("id, name, price").First(&p, id).Error
	return p, err
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *ProductRepository) Update(id uint, updates map[string]any) error {
	res := r.DB.Model(&entity.Product{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Product{}, id).Error
}

// ---------------- Complements ----------------

func (r *ProductRepository) ListComplements() ([]entity.Complement, error) {
	var out []entity.Complement
	err := r.DB.Order("id").Find(&out).Error
	return out, err
}

func (r *ProductRepository) GetComplementsByIDs(ids []uint) ([]entity.Complement, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []entity.Complement
	err := r.DB.Where("id IN ?", ids).Find(&out).Error
	return out, err
}

func (r *ProductRepository) CreateComplement(c *entity.Complement) error {
	return r.DB.Create(c).Error
}

func (r *ProductRepository) DeleteComplement(id uint) error {
	return r.DB.Delete(&entity.Complement{}, id).Error
}
