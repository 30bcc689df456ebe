package repository

import (
	"github.com/Avi1top/carvango-backend-sub000/entity"

	"gorm.io/gorm"
)

type IngredientRepository struct {
	DB *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{DB: db}
}

func (r *IngredientRepository) Create(ing *entity.Ingredient) error {
	return r.DB.Create(ing).Error
}

func (r *IngredientRepository) FindByID(id uint) (*entity.Ingredient, error) {
	var ing entity.Ingredient
	if err := r.DB.First(&ing, id).Error; err != nil {
		return nil, err
	}
	return &ing, nil
}

func (r *IngredientRepository) List(activeOnly bool) ([]entity.Ingredient, error) {
	var out []entity.Ingredient
	q := r.DB.Model(&entity.Ingredient{}).Order("name ASC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&out).Error
	return out, err
}

func (r *IngredientRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Ingredient{}).Where("id = ?", id).Updates(updates).Error
}

func (r *IngredientRepository) Deactivate(id uint) error {
	return r.DB.Model(&entity.Ingredient{}).Where("id = ?", id).Update("is_active", false).Error
}

// อ่าน stock ปัจจุบันทีละตัว (ใช้ใน checker)
func (r *IngredientRepository) CurrentStock(tx *gorm.DB, id uint) (float64, string, error) {
	var row struct {
		Stock float64
		Name  string
	}
	err := tx.Model(&entity.Ingredient{}).
		Select("stock, name").Where("id = ?", id).First(&row).Error
	return row.Stock, row.Name, err
}

// ตัด stock แบบ guarded: UPDATE ... WHERE id = ? AND stock >= ?
// ถ้า RowsAffected == 0 แปลว่าโดนออเดอร์อื่นตัดหน้า (หรือของไม่พอจริง)
func (r *IngredientRepository) DeductStockGuard(tx *gorm.DB, id uint, need float64) (bool, error) {
	res := tx.Model(&entity.Ingredient{}).
		Where("id = ? AND stock >= ?", id, need).
		Update("stock", gorm.Expr("stock - ?", need))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// นับวัตถุดิบที่ stock ต่ำ (ใช้ใน dashboard)
func (r *IngredientRepository) CountLowStock(threshold float64) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Ingredient{}).
		Where("is_active = ? AND stock < ?", true, threshold).
		Count(&cnt).Error
	return cnt, err
}
