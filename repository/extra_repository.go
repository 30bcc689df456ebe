package repository

import (
	"github.com/Avi1top/carvango-backend-sub000/entity"

	"gorm.io/gorm"
)

type ExtraRepository struct {
	DB *gorm.DB
}

func NewExtraRepository(db *gorm.DB) *ExtraRepository {
	return &ExtraRepository{DB: db}
}

func (r *ExtraRepository) Create(e *entity.Extra) error {
	return r.DB.Create(e).Error
}

func (r *ExtraRepository) ListPublic() ([]entity.Extra, error) {
	var out []entity.Extra
	err := r.DB.Model(&entity.Extra{}).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&out).Error
	return out, err
}

func (r *ExtraRepository) ListAdmin() ([]entity.Extra, error) {
	var out []entity.Extra
	err := r.DB.Order("id DESC").Find(&out).Error
	return out, err
}

func (r *ExtraRepository) FindByID(id uint) (*entity.Extra, error) {
	var e entity.Extra
	if err := r.DB.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// extra พร้อมวัตถุดิบที่ผูกอยู่ (ใช้ตอนคิด stock)
// ถ้าไม่มีแถววัตถุดิบจริง Preload จะได้ Ingredient ว่าง
// ฝั่ง order service เช็ค Ingredient.ID == 0 แล้วถือว่า data พัง
func (r *ExtraRepository) GetWithIngredient(tx *gorm.DB, id uint) (*entity.Extra, error) {
	var e entity.Extra
	if err := tx.Preload("Ingredient").First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *ExtraRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Extra{}).Where("id = ?", id).Updates(updates).Error
}

func (r *ExtraRepository) Deactivate(id uint) error {
	return r.DB.Model(&entity.Extra{}).Where("id = ?", id).Update("is_active", false).Error
}
