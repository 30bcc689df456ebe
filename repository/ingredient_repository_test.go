package repository_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Avi1top/carvango-backend-sub000/entity"
	"github.com/Avi1top/carvango-backend-sub000/repository"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newIngredientDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entity.Ingredient{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// guard: UPDATE ... WHERE id = ? AND stock >= ? — ตัดได้เฉพาะตอนของพอจริง
func TestDeductStockGuard(t *testing.T) {
	db := newIngredientDB(t)
	repo := repository.NewIngredientRepository(db)

	ing := entity.Ingredient{Name: "Pita", Stock: 10, Unit: "piece", IsActive: true}
	assert.NoError(t, db.Create(&ing).Error)

	ok, err := repo.DeductStockGuard(db, ing.ID, 4)
	assert.NoError(t, err)
	assert.True(t, ok)

	stock, _, err := repo.CurrentStock(db, ing.ID)
	assert.NoError(t, err)
	assert.InDelta(t, 6, stock, 1e-9)

	// เหลือ 6 ขอ 7 → RowsAffected 0, stock ห้ามขยับ
	ok, err = repo.DeductStockGuard(db, ing.ID, 7)
	assert.NoError(t, err)
	assert.False(t, ok)

	stock, _, err = repo.CurrentStock(db, ing.ID)
	assert.NoError(t, err)
	assert.InDelta(t, 6, stock, 1e-9)

	// ขอเท่าที่เหลือพอดี ต้องผ่าน
	ok, err = repo.DeductStockGuard(db, ing.ID, 6)
	assert.NoError(t, err)
	assert.True(t, ok)

	stock, _, err = repo.CurrentStock(db, ing.ID)
	assert.NoError(t, err)
	assert.InDelta(t, 0, stock, 1e-9)

	// id ไม่มีจริง → ไม่ตัดอะไร
	ok, err = repo.DeductStockGuard(db, 9999, 1)
	assert.NoError(t, err)
	assert.False(t, ok)
}
