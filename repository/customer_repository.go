package repository

import (
	"github.com/Avi1top/carvango-backend-sub000/entity"

	"gorm.io/gorm"
)

// CustomerRepository รับผิดชอบการคุยกับตาราง customers ใน DB เท่านั้น
type CustomerRepository struct {
	DB *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

// หาลูกค้าจาก email
func (r *CustomerRepository) FindByEmail(email string) (*entity.Customer, error) {
	var cust entity.Customer
	if err := r.DB.Where("email = ?", email).First(&cust).Error; err != nil {
		return nil, err
	}
	return &cust, nil
}

// นับจำนวนลูกค้าที่มี email ซ้ำ
func (r *CustomerRepository) CountByEmail(email string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.Customer{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CustomerRepository) Create(cust *entity.Customer) error {
	return r.DB.Create(cust).Error
}

func (r *CustomerRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Customer{}).Where("id = ?", id).Updates(updates).Error
}

func (r *CustomerRepository) FindByID(id uint) (*entity.Customer, error) {
	var cust entity.Customer
	if err := r.DB.First(&cust, id).Error; err != nil {
		return nil, err
	}
	return &cust, nil
}

func (r *CustomerRepository) List(page, limit int) ([]entity.Customer, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}

	var total int64
	if err := r.DB.Model(&entity.Customer{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Customer
	err := r.DB.Model(&entity.Customer{}).
		Order("id DESC").Limit(limit).Offset((page - 1) * limit).
		Find(&out).Error
	return out, total, err
}

func (r *CustomerRepository) Count() (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Customer{}).Count(&cnt).Error
	return cnt, err
}
