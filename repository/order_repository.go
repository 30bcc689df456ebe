package repository

import (
	"time"

	"github.com/Avi1top/carvango-backend-sub000/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) LinkCustomer(tx *gorm.DB, orderID uint, email string) error {
	return tx.Create(&entity.OrderCustomer{OrderID: orderID, Email: email}).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("OrderStatus").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /admin/orders → รายการ order พร้อม email ลูกค้า
type AdminOrderSummary struct {
	ID            uint      `json:"id"`
	Reference     string    `json:"reference"`
	CustomerEmail string    `json:"customerEmail"`
	Total         float64   `json:"total"`
	Discount      float64   `json:"discount"`
	OrderStatusID uint      `json:"orderStatusId"`
	OrderDate     time.Time `json:"orderDate"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListOrders(statusID *uint, page, limit int) ([]AdminOrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	dbCount := r.DB.Table("orders AS o").Where("o.deleted_at IS NULL")
	if statusID != nil && *statusID != 0 {
		dbCount = dbCount.Where("o.order_status_id = ?", *statusID)
	}
	if err := dbCount.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// join ตาราง link → เอา email ลูกค้า
	var rows []AdminOrderSummary
	db := r.DB.Table("orders AS o").
		Select("o.id, o.reference, oc.email AS customer_email, o.total, o.discount, o.order_status_id, o.order_date, o.created_at").
		Joins("LEFT JOIN order_customers oc ON oc.order_id = o.id").
		Where("o.deleted_at IS NULL")
	if statusID != nil && *statusID != 0 {
		db = db.Where("o.order_status_id = ?", *statusID)
	}
	if err := db.Order("o.id DESC").Limit(limit).Offset(offset).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// ออเดอร์ของลูกค้าคนหนึ่ง (ผูกด้วย email)
func (r *OrderRepository) ListOrdersForEmail(email string, limit int) ([]AdminOrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var rows []AdminOrderSummary
	err := r.DB.Table("orders AS o").
		Select("o.id, o.reference, oc.email AS customer_email, o.total, o.discount, o.order_status_id, o.order_date, o.created_at").
		Joins("JOIN order_customers oc ON oc.order_id = o.id").
		Where("oc.email = ? AND o.deleted_at IS NULL", email).
		Order("o.id DESC").Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// PATCH /admin/orders/:id → แก้ได้แค่ status/discount/total เท่านั้น
func (r *OrderRepository) UpdateOrderAdmin(orderID uint, updates map[string]any) (int64, error) {
	res := r.DB.Model(&entity.Order{}).Where("id = ?", orderID).Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) CountOrdersSince(t time.Time) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Order{}).Where("created_at >= ?", t).Count(&cnt).Error
	return cnt, err
}

// ---------------- Order Items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) CreateOrderItemExtra(tx *gorm.DB, oie *entity.OrderItemExtra) error {
	return tx.Create(oie).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Model(&entity.OrderItem{}).
		Preload("Extras").
		Where("order_id = ?", orderID).
		Find(&items).Error
	return items, err
}

func (r *OrderRepository) GetCustomerEmail(orderID uint) (string, error) {
	var row struct{ Email string }
	err := r.DB.Model(&entity.OrderCustomer{}).
		Select("email").Where("order_id = ?", orderID).First(&row).Error
	return row.Email, err
}

// ---------------- Lookups ----------------

func (r *OrderRepository) GetStatusIDByName(name string) (uint, error) {
	var row struct{ ID uint }
	err := r.DB.Model(&entity.OrderStatus{}).
		Select("id").Where("status_name = ?", name).First(&row).Error
	return row.ID, err
}
