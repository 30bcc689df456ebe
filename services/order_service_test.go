package services_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/Avi1top/carvango-backend-sub000/entity"
	"github.com/Avi1top/carvango-backend-sub000/repository"
	"github.com/Avi1top/carvango-backend-sub000/services"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- Helpers ---

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// in-memory DB ต่อเทสต์ แต่ shared cache เพราะ gorm เปิดหลาย connection
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.Customer{},
		&entity.Ingredient{},
		&entity.Dish{}, &entity.DishIngredient{},
		&entity.Extra{},
		&entity.OrderStatus{}, &entity.Order{}, &entity.OrderItem{}, &entity.OrderItemExtra{},
		&entity.OrderCustomer{},
		&entity.Schedule{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "Completed"})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "Cancelled"})
	return db
}

func newOrderService(db *gorm.DB) *services.OrderService {
	return services.NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewDishRepository(db),
		repository.NewExtraRepository(db),
		repository.NewIngredientRepository(db),
		zap.NewNop(),
	)
}

func seedIngredient(t *testing.T, db *gorm.DB, name string, stock float64, unit string) *entity.Ingredient {
	t.Helper()
	ing := entity.Ingredient{Name: name, Stock: stock, Unit: unit, IsActive: true}
	if err := db.Create(&ing).Error; err != nil {
		t.Fatalf("seed ingredient %s: %v", name, err)
	}
	return &ing
}

func seedDish(t *testing.T, db *gorm.DB, name string, price float64, recipe []entity.DishIngredient) *entity.Dish {
	t.Helper()
	d := entity.Dish{Name: name, Price: price, IsActive: true, Recipe: recipe}
	if err := db.Create(&d).Error; err != nil {
		t.Fatalf("seed dish %s: %v", name, err)
	}
	return &d
}

func seedExtra(t *testing.T, db *gorm.DB, name string, ingID uint, qty float64, unit string) *entity.Extra {
	t.Helper()
	e := entity.Extra{Name: name, Price: 2, IsActive: true, IngredientID: ingID, Quantity: qty, Unit: unit}
	if err := db.Create(&e).Error; err != nil {
		t.Fatalf("seed extra %s: %v", name, err)
	}
	return &e
}

func currentStock(t *testing.T, db *gorm.DB, id uint) float64 {
	t.Helper()
	var ing entity.Ingredient
	if err := db.First(&ing, id).Error; err != nil {
		t.Fatalf("reload ingredient %d: %v", id, err)
	}
	return ing.Stock
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var cnt int64
	if err := db.Model(model).Count(&cnt).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return cnt
}

// --- Tests ---

// Pita 10 ชิ้น, Falafel Wrap ใช้ 1 ชิ้น, สั่ง 3 → เหลือ 7
func TestCreateOrder_DeductsStock(t *testing.T) {
	db := newTestDB(t)
	pita := seedIngredient(t, db, "Pita", 10, "piece")
	wrap := seedDish(t, db, "Falafel Wrap", 12, []entity.DishIngredient{
		{IngredientID: pita.ID, Quantity: 1, Unit: "piece"},
	})
	svc := newOrderService(db)

	res, err := svc.Create(&services.CreateOrderReq{
		Total:    36,
		Customer: services.OrderCustomerIn{Email: "sam@example.com", Address: "14 Dock Rd"},
		Items:    []services.OrderItemIn{{DishID: wrap.ID, Qty: 3}},
	})
	assert.NoError(t, err)
	assert.NotNil(t, res)
	assert.NotZero(t, res.OrderID)
	assert.NotEmpty(t, res.Reference)

	assert.InDelta(t, 7, currentStock(t, db, pita.ID), 1e-9)
	assert.EqualValues(t, 1, countRows(t, db, &entity.Order{}))
	assert.EqualValues(t, 1, countRows(t, db, &entity.OrderItem{}))

	// มีแถว link ไปลูกค้า
	var link entity.OrderCustomer
	assert.NoError(t, db.Where("order_id = ?", res.OrderID).First(&link).Error)
	assert.Equal(t, "sam@example.com", link.Email)
}

// Tahini 200 G, Wrap ใช้ 50 G + extra 30 G, สั่ง 5 + extra 5 → ต้องการ 400
// → ไม่พอ → rollback หมด stock คงเดิม
func TestCreateOrder_InsufficientStock_RollsBack(t *testing.T) {
	db := newTestDB(t)
	tahini := seedIngredient(t, db, "Tahini", 200, "G")
	wrap := seedDish(t, db, "Falafel Wrap", 12, []entity.DishIngredient{
		{IngredientID: tahini.ID, Quantity: 50, Unit: "G"},
	})
	extra := seedExtra(t, db, "Extra Tahini", tahini.ID, 30, "G")
	svc := newOrderService(db)

	_, err := svc.Create(&services.CreateOrderReq{
		Customer: services.OrderCustomerIn{Email: "sam@example.com"},
		Items: []services.OrderItemIn{{
			DishID: wrap.ID, Qty: 5,
			Extras: []services.OrderExtraIn{{ExtraID: extra.ID, Qty: 1}},
		}},
	})

	var shortErr *services.ShortageError
	assert.ErrorAs(t, err, &shortErr)
	assert.Contains(t, shortErr.IngredientIDs(), tahini.ID)
	assert.Len(t, shortErr.Short, 1)
	assert.InDelta(t, 400, shortErr.Short[0].Required, 1e-9)
	assert.InDelta(t, 200, shortErr.Short[0].Available, 1e-9)

	// ไม่มีออเดอร์ค้างครึ่งเดียว
	assert.InDelta(t, 200, currentStock(t, db, tahini.ID), 1e-9)
	assert.EqualValues(t, 0, countRows(t, db, &entity.Order{}))
	assert.EqualValues(t, 0, countRows(t, db, &entity.OrderItem{}))
	assert.EqualValues(t, 0, countRows(t, db, &entity.OrderItemExtra{}))
	assert.EqualValues(t, 0, countRows(t, db, &entity.OrderCustomer{}))
}

// extra ระบุ 0.5 KG แต่ stock เก็บเป็น gram → ตัด 500 gram
func TestCreateOrder_ConvertsExtraUnits(t *testing.T) {
	db := newTestDB(t)
	tahini := seedIngredient(t, db, "Tahini", 600, "gram")
	wrap := seedDish(t, db, "Falafel Wrap", 12, nil)
	extra := seedExtra(t, db, "Tahini Tub", tahini.ID, 0.5, "KG")
	svc := newOrderService(db)

	_, err := svc.Create(&services.CreateOrderReq{
		Customer: services.OrderCustomerIn{Email: "sam@example.com"},
		Items: []services.OrderItemIn{{
			DishID: wrap.ID, Qty: 1,
			Extras: []services.OrderExtraIn{{ExtraID: extra.ID, Qty: 1}},
		}},
	})
	assert.NoError(t, err)
	assert.InDelta(t, 100, currentStock(t, db, tahini.ID), 1e-9)
}

// วัตถุดิบที่ออเดอร์ไม่แตะ ต้องไม่ขยับ
func TestCreateOrder_LeavesUntouchedIngredientsAlone(t *testing.T) {
	db := newTestDB(t)
	pita := seedIngredient(t, db, "Pita", 10, "piece")
	hummus := seedIngredient(t, db, "Hummus", 500, "G")
	wrap := seedDish(t, db, "Falafel Wrap", 12, []entity.DishIngredient{
		{IngredientID: pita.ID, Quantity: 1, Unit: "piece"},
	})
	svc := newOrderService(db)

	_, err := svc.Create(&services.CreateOrderReq{
		Customer: services.OrderCustomerIn{Email: "sam@example.com"},
		Items:    []services.OrderItemIn{{DishID: wrap.ID, Qty: 2}},
	})
	assert.NoError(t, err)
	assert.InDelta(t, 8, currentStock(t, db, pita.ID), 1e-9)
	assert.InDelta(t, 500, currentStock(t, db, hummus.ID), 1e-9)
}

func TestCreateOrder_RequiresCustomerEmail(t *testing.T) {
	db := newTestDB(t)
	pita := seedIngredient(t, db, "Pita", 10, "piece")
	wrap := seedDish(t, db, "Falafel Wrap", 12, []entity.DishIngredient{
		{IngredientID: pita.ID, Quantity: 1, Unit: "piece"},
	})
	svc := newOrderService(db)

	_, err := svc.Create(&services.CreateOrderReq{
		Customer: services.OrderCustomerIn{Email: "   "},
		Items:    []services.OrderItemIn{{DishID: wrap.ID, Qty: 1}},
	})
	assert.ErrorIs(t, err, services.ErrCustomerEmailRequired)
	assert.EqualValues(t, 0, countRows(t, db, &entity.Order{}))
}

// extra ชี้ไปวัตถุดิบที่ไม่มีจริง = data พัง → ล้มทั้งออเดอร์
func TestCreateOrder_ExtraWithoutIngredientFails(t *testing.T) {
	db := newTestDB(t)
	wrap := seedDish(t, db, "Falafel Wrap", 12, nil)
	broken := seedExtra(t, db, "Ghost Sauce", 9999, 10, "G")
	svc := newOrderService(db)

	_, err := svc.Create(&services.CreateOrderReq{
		Customer: services.OrderCustomerIn{Email: "sam@example.com"},
		Items: []services.OrderItemIn{{
			DishID: wrap.ID, Qty: 1,
			Extras: []services.OrderExtraIn{{ExtraID: broken.ID, Qty: 1}},
		}},
	})
	assert.ErrorIs(t, err, services.ErrExtraIntegrity)
	assert.EqualValues(t, 0, countRows(t, db, &entity.Order{}))
	assert.EqualValues(t, 0, countRows(t, db, &entity.OrderItem{}))
}

func TestCreateOrder_UnknownDish(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	_, err := svc.Create(&services.CreateOrderReq{
		Customer: services.OrderCustomerIn{Email: "sam@example.com"},
		Items:    []services.OrderItemIn{{DishID: 42, Qty: 1}},
	})
	assert.ErrorIs(t, err, services.ErrDishNotFound)
	assert.EqualValues(t, 0, countRows(t, db, &entity.Order{}))
}

func TestCreateOrder_ArchivedDishRejected(t *testing.T) {
	db := newTestDB(t)
	pita := seedIngredient(t, db, "Pita", 10, "piece")
	wrap := seedDish(t, db, "Falafel Wrap", 12, []entity.DishIngredient{
		{IngredientID: pita.ID, Quantity: 1, Unit: "piece"},
	})
	db.Model(wrap).Update("archived", true)
	svc := newOrderService(db)

	_, err := svc.Create(&services.CreateOrderReq{
		Customer: services.OrderCustomerIn{Email: "sam@example.com"},
		Items:    []services.OrderItemIn{{DishID: wrap.ID, Qty: 1}},
	})
	assert.ErrorIs(t, err, services.ErrDishUnavailable)
	assert.InDelta(t, 10, currentStock(t, db, pita.ID), 1e-9)
}

// สองจานใช้วัตถุดิบเดียวกัน → ความต้องการรวมกัน
func TestCreateOrder_AggregatesAcrossItems(t *testing.T) {
	db := newTestDB(t)
	rice := seedIngredient(t, db, "Rice", 1000, "G")
	bowlA := seedDish(t, db, "Chicken Bowl", 15, []entity.DishIngredient{
		{IngredientID: rice.ID, Quantity: 150, Unit: "G"},
	})
	bowlB := seedDish(t, db, "Veggie Bowl", 13, []entity.DishIngredient{
		{IngredientID: rice.ID, Quantity: 120, Unit: "G"},
	})
	svc := newOrderService(db)

	_, err := svc.Create(&services.CreateOrderReq{
		Customer: services.OrderCustomerIn{Email: "sam@example.com"},
		Items: []services.OrderItemIn{
			{DishID: bowlA.ID, Qty: 2}, // 300
			{DishID: bowlB.ID, Qty: 1}, // 120
		},
	})
	assert.NoError(t, err)
	assert.InDelta(t, 580, currentStock(t, db, rice.ID), 1e-9)
}

// จำลองออเดอร์อื่นตัด stock แทรกระหว่าง checker กับ UPDATE ของเรา:
// checker เห็น 10 ชิ้น แต่พอถึงคิวตัดเหลือ 2 → guard ไม่ผ่าน
// → ShortageError เหมือนของไม่พอปกติ และ rollback ทั้งออเดอร์
func TestCreateOrder_GuardedDeductLosesRace(t *testing.T) {
	db := newTestDB(t)
	pita := seedIngredient(t, db, "Pita", 10, "piece")
	wrap := seedDish(t, db, "Falafel Wrap", 12, []entity.DishIngredient{
		{IngredientID: pita.ID, Quantity: 1, Unit: "piece"},
	})
	svc := newOrderService(db)

	fired := false
	err := db.Callback().Update().Before("gorm:update").Register("competing_deduct", func(tx *gorm.DB) {
		if fired || tx.Statement.Table != "ingredients" {
			return
		}
		fired = true
		tx.Session(&gorm.Session{NewDB: true}).
			Exec("UPDATE ingredients SET stock = 2 WHERE id = ?", pita.ID)
	})
	assert.NoError(t, err)
	defer db.Callback().Update().Remove("competing_deduct")

	_, err = svc.Create(&services.CreateOrderReq{
		Customer: services.OrderCustomerIn{Email: "sam@example.com"},
		Items:    []services.OrderItemIn{{DishID: wrap.ID, Qty: 5}},
	})

	var shortErr *services.ShortageError
	assert.ErrorAs(t, err, &shortErr)
	assert.True(t, fired)
	assert.Len(t, shortErr.Short, 1)
	assert.InDelta(t, 5, shortErr.Short[0].Required, 1e-9)
	assert.InDelta(t, 2, shortErr.Short[0].Available, 1e-9)

	// rollback ทั้ง tx รวมถึงการตัดแทรกที่จำลองไว้
	assert.InDelta(t, 10, currentStock(t, db, pita.ID), 1e-9)
	assert.EqualValues(t, 0, countRows(t, db, &entity.Order{}))
	assert.EqualValues(t, 0, countRows(t, db, &entity.OrderItem{}))
}

// ----- Admin edit -----

func TestUpdateAdmin_OnlyStatusDiscountTotal(t *testing.T) {
	db := newTestDB(t)
	pita := seedIngredient(t, db, "Pita", 10, "piece")
	wrap := seedDish(t, db, "Falafel Wrap", 12, []entity.DishIngredient{
		{IngredientID: pita.ID, Quantity: 1, Unit: "piece"},
	})
	svc := newOrderService(db)

	res, err := svc.Create(&services.CreateOrderReq{
		Total:    12,
		Customer: services.OrderCustomerIn{Email: "sam@example.com"},
		Items:    []services.OrderItemIn{{DishID: wrap.ID, Qty: 1}},
	})
	assert.NoError(t, err)

	cancelled := svc.Status.Cancelled
	discount := 5.0
	err = svc.UpdateAdmin(res.OrderID, &services.UpdateOrderReq{
		OrderStatusID: &cancelled,
		Discount:      &discount,
	})
	assert.NoError(t, err)

	detail, err := svc.Detail(res.OrderID)
	assert.NoError(t, err)
	assert.Equal(t, cancelled, detail.Order.OrderStatusID)
	assert.InDelta(t, 5.0, detail.Order.Discount, 1e-9)
	assert.Equal(t, "sam@example.com", detail.CustomerEmail)
}

func TestUpdateAdmin_RejectsUnknownStatus(t *testing.T) {
	db := newTestDB(t)
	pita := seedIngredient(t, db, "Pita", 10, "piece")
	wrap := seedDish(t, db, "Falafel Wrap", 12, []entity.DishIngredient{
		{IngredientID: pita.ID, Quantity: 1, Unit: "piece"},
	})
	svc := newOrderService(db)

	res, err := svc.Create(&services.CreateOrderReq{
		Customer: services.OrderCustomerIn{Email: "sam@example.com"},
		Items:    []services.OrderItemIn{{DishID: wrap.ID, Qty: 1}},
	})
	assert.NoError(t, err)

	bogus := uint(99)
	err = svc.UpdateAdmin(res.OrderID, &services.UpdateOrderReq{OrderStatusID: &bogus})
	assert.ErrorIs(t, err, services.ErrBadStatus)
}

func TestUpdateAdmin_OrderNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	discount := 1.0
	err := svc.UpdateAdmin(12345, &services.UpdateOrderReq{Discount: &discount})
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
