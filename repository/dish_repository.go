package repository

import (
	"github.com/Avi1top/carvango-backend-sub000/entity"

	"gorm.io/gorm"
)

type DishRepository struct {
	DB *gorm.DB
}

func NewDishRepository(db *gorm.DB) *DishRepository {
	return &DishRepository{DB: db}
}

func (r *DishRepository) Create(tx *gorm.DB, d *entity.Dish) error {
	return tx.Create(d).Error
}

// เมนูสำหรับหน้าเว็บ (active และยังไม่ archive, ไม่แนบสูตร)
func (r *DishRepository) ListPublic() ([]entity.Dish, error) {
	var out []entity.Dish
	err := r.DB.Model(&entity.Dish{}).
		Where("is_active = ? AND archived = ?", true, false).
		Order("name ASC").
		Find(&out).Error
	return out, err
}

// สำหรับหลังบ้าน เห็นทุกจาน (รวม archived) พร้อมสูตร
func (r *DishRepository) ListAdmin() ([]entity.Dish, error) {
	var out []entity.Dish
	err := r.DB.Preload("Recipe").Order("id DESC").Find(&out).Error
	return out, err
}

func (r *DishRepository) FindByID(id uint) (*entity.Dish, error) {
	var d entity.Dish
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// จานพร้อมสูตร + วัตถุดิบของแต่ละแถว (ใช้ตอนคิด stock)
func (r *DishRepository) GetWithRecipe(tx *gorm.DB, id uint) (*entity.Dish, error) {
	var d entity.Dish
	if err := tx.Preload("Recipe").Preload("Recipe.Ingredient").First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DishRepository) Update(tx *gorm.DB, id uint, updates map[string]any) error {
	return tx.Model(&entity.Dish{}).Where("id = ?", id).Updates(updates).Error
}

// แทนที่สูตรทั้งชุด
func (r *DishRepository) ReplaceRecipe(tx *gorm.DB, dishID uint, rows []entity.DishIngredient) error {
	if err := tx.Where("dish_id = ?", dishID).Delete(&entity.DishIngredient{}).Error; err != nil {
		return err
	}
	for i := range rows {
		rows[i].DishID = dishID
		if err := tx.Create(&rows[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *DishRepository) Archive(id uint) error {
	return r.DB.Model(&entity.Dish{}).Where("id = ?", id).Update("archived", true).Error
}

func (r *DishRepository) CountActive() (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Dish{}).
		Where("is_active = ? AND archived = ?", true, false).
		Count(&cnt).Error
	return cnt, err
}
