package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Avi1top/carvango-backend-sub000/entity"
	"github.com/Avi1top/carvango-backend-sub000/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type StatusIDs struct {
	Completed uint
	Cancelled uint
}

type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	DishRepo  *repository.DishRepository
	ExtraRepo *repository.ExtraRepository
	IngRepo   *repository.IngredientRepository

	Log    *zap.Logger
	Status StatusIDs
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	dishRepo *repository.DishRepository,
	extraRepo *repository.ExtraRepository,
	ingRepo *repository.IngredientRepository,
	log *zap.Logger,
) *OrderService {
	s := &OrderService{DB: db, Repo: repo, DishRepo: dishRepo, ExtraRepo: extraRepo, IngRepo: ingRepo, Log: log}

	if id, err := repo.GetStatusIDByName("Completed"); err == nil {
		s.Status.Completed = id
	}
	if id, err := repo.GetStatusIDByName("Cancelled"); err == nil {
		s.Status.Cancelled = id
	}

	return s
}

// ----- Errors -----

var (
	ErrCustomerEmailRequired = errors.New("customer email is required")
	ErrNoItems               = errors.New("items is required")
	ErrDishNotFound          = errors.New("dish not found")
	ErrDishUnavailable       = errors.New("dish not available")
	ErrExtraNotFound         = errors.New("extra not found")

	// extra ชี้ไปวัตถุดิบที่ไม่มีแถวจริง = data พัง ไม่ใช่เคสปกติ
	ErrExtraIntegrity = errors.New("extra has no backing ingredient")
)

type Shortage struct {
	IngredientID uint    `json:"ingredientId"`
	Name         string  `json:"name"`
	Required     float64 `json:"required"`
	Available    float64 `json:"available"`
}

// ShortageError คือเคสเดียวที่ถือว่า "expected": ของไม่พอ → 400 พร้อมรายละเอียด
type ShortageError struct {
	Short []Shortage
}

func (e *ShortageError) Error() string {
	names := make([]string, 0, len(e.Short))
	for _, s := range e.Short {
		names = append(names, s.Name)
	}
	return "insufficient stock: " + strings.Join(names, ", ")
}

func (e *ShortageError) IngredientIDs() []uint {
	ids := make([]uint, 0, len(e.Short))
	for _, s := range e.Short {
		ids = append(ids, s.IngredientID)
	}
	return ids
}

// ----- DTOs from Controller -----

type OrderExtraIn struct {
	ExtraID uint `json:"extraId" binding:"required"`
	Qty     int  `json:"quantity" binding:"required,min=1"`
}
type OrderItemIn struct {
	DishID uint           `json:"dishId" binding:"required"`
	Qty    int            `json:"quantity" binding:"required,min=1"`
	Extras []OrderExtraIn `json:"extras"`
}
type OrderCustomerIn struct {
	Email   string `json:"email"`
	Address string `json:"address"`
}
type CreateOrderReq struct {
	Discounts float64         `json:"discounts"`
	Total     float64         `json:"total"`
	Date      string          `json:"date"` // RFC3339 หรือ "2006-01-02"; ว่าง = ตอนนี้
	Customer  OrderCustomerIn `json:"customer"`
	Items     []OrderItemIn   `json:"items" binding:"required,min=1"`
}

type CreateOrderRes struct {
	OrderID   uint   `json:"orderId"`
	Reference string `json:"reference"`
}

// ----- Create -----

// Create ทำทั้ง flow ใน transaction เดียว ตามลำดับนี้เป๊ะ ๆ:
// header → link ลูกค้า → line items (พร้อมรวมความต้องการวัตถุดิบ)
// → เช็ค stock → ตัด stock แบบ guarded → commit
// อะไรพังระหว่างทาง rollback หมด ไม่มีออเดอร์ค้างครึ่งเดียว
func (s *OrderService) Create(req *CreateOrderReq) (*CreateOrderRes, error) {
	email := strings.ToLower(strings.TrimSpace(req.Customer.Email))
	if email == "" {
		return nil, ErrCustomerEmailRequired
	}
	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}

	orderDate := time.Now()
	if req.Date != "" {
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, req.Date); err == nil {
				orderDate = t
				break
			}
		}
	}

	var out CreateOrderRes
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			Reference:       uuid.NewString(),
			Discount:        req.Discounts,
			Total:           req.Total,
			OrderDate:       orderDate,
			ShippingAddress: strings.TrimSpace(req.Customer.Address),
			OrderStatusID:   s.Status.Completed,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		if err := s.Repo.LinkCustomer(tx, order.ID, email); err != nil {
			return err
		}

		// ยอดรวมความต้องการต่อวัตถุดิบ (หน่วย = หน่วย stock ของวัตถุดิบนั้น)
		required := make(map[uint]float64)

		for _, it := range req.Items {
			dish, err := s.DishRepo.GetWithRecipe(tx, it.DishID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: id %d", ErrDishNotFound, it.DishID)
				}
				return err
			}
			if !dish.IsActive || dish.Archived {
				return fmt.Errorf("%w: %s", ErrDishUnavailable, dish.Name)
			}

			oi := entity.OrderItem{OrderID: order.ID, DishID: dish.ID, Qty: it.Qty, UnitPrice: dish.Price}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}

			for _, row := range dish.Recipe {
				need := ConvertUnit(row.Quantity, row.Unit, row.Ingredient.Unit) * float64(it.Qty)
				required[row.IngredientID] += need
			}

			for _, ex := range it.Extras {
				extra, err := s.ExtraRepo.GetWithIngredient(tx, ex.ExtraID)
				if err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return fmt.Errorf("%w: id %d", ErrExtraNotFound, ex.ExtraID)
					}
					return err
				}
				if extra.IngredientID == 0 || extra.Ingredient.ID == 0 {
					return fmt.Errorf("%w: extra %q", ErrExtraIntegrity, extra.Name)
				}

				oie := entity.OrderItemExtra{OrderItemID: oi.ID, ExtraID: extra.ID, Qty: ex.Qty}
				if err := s.Repo.CreateOrderItemExtra(tx, &oie); err != nil {
					return err
				}

				need := ConvertUnit(extra.Quantity, extra.Unit, extra.Ingredient.Unit) *
					float64(ex.Qty) * float64(it.Qty)
				required[extra.IngredientID] += need
			}
		}

		// เช็ค stock ทีละวัตถุดิบ — ครบทุกตัวก่อนค่อยตัด
		var short []Shortage
		for id, need := range required {
			stock, name, err := s.IngRepo.CurrentStock(tx, id)
			if err != nil {
				return err
			}
			if stock < need {
				short = append(short, Shortage{IngredientID: id, Name: name, Required: need, Available: stock})
			}
		}
		if len(short) > 0 {
			return &ShortageError{Short: short}
		}

		// ตัด stock แบบ guarded — RowsAffected == 0 แปลว่าโดนออเดอร์อื่น
		// ที่เข้ามาพร้อมกันตัดหน้า ก็ rollback เหมือนของไม่พอปกติ
		for id, need := range required {
			ok, err := s.IngRepo.DeductStockGuard(tx, id, need)
			if err != nil {
				return err
			}
			if !ok {
				stock, name, _ := s.IngRepo.CurrentStock(tx, id)
				return &ShortageError{Short: []Shortage{{IngredientID: id, Name: name, Required: need, Available: stock}}}
			}
		}

		out = CreateOrderRes{OrderID: order.ID, Reference: order.Reference}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("order created",
		zap.Uint("orderId", out.OrderID),
		zap.String("reference", out.Reference),
		zap.Float64("total", req.Total))
	return &out, nil
}

// ----- List & Detail (admin) -----

type AdminOrderListOut struct {
	Items []repository.AdminOrderSummary `json:"items"`
	Total int64                          `json:"total"`
	Page  int                            `json:"page"`
	Limit int                            `json:"limit"`
}

func (s *OrderService) List(statusID *uint, page, limit int) (*AdminOrderListOut, error) {
	items, total, err := s.Repo.ListOrders(statusID, page, limit)
	if err != nil {
		return nil, err
	}
	return &AdminOrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *OrderService) ListForEmail(email string, limit int) ([]repository.AdminOrderSummary, error) {
	return s.Repo.ListOrdersForEmail(email, limit)
}

type OrderDetail struct {
	Order         entity.Order       `json:"order"`
	Items         []entity.OrderItem `json:"items"`
	CustomerEmail string             `json:"customerEmail"`
}

func (s *OrderService) Detail(orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	email, err := s.Repo.GetCustomerEmail(o.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items, CustomerEmail: email}, nil
}

// ----- Admin edit -----

var ErrBadStatus = errors.New("unknown order status")

type UpdateOrderReq struct {
	OrderStatusID *uint    `json:"orderStatusId"`
	Discount      *float64 `json:"discount"`
	Total         *float64 `json:"total"`
}

// ออเดอร์สร้างแล้วแก้ได้แค่ status/discount/total เท่านั้น
func (s *OrderService) UpdateAdmin(orderID uint, req *UpdateOrderReq) error {
	updates := map[string]any{}
	if req.OrderStatusID != nil {
		if *req.OrderStatusID != s.Status.Completed && *req.OrderStatusID != s.Status.Cancelled {
			return ErrBadStatus
		}
		updates["order_status_id"] = *req.OrderStatusID
	}
	if req.Discount != nil {
		updates["discount"] = *req.Discount
	}
	if req.Total != nil {
		updates["total"] = *req.Total
	}
	if len(updates) == 0 {
		return nil
	}

	rows, err := s.Repo.UpdateOrderAdmin(orderID, updates)
	if err != nil {
		return err
	}
	if rows == 0 {
		return gorm.ErrRecordNotFound
	}
	s.Log.Info("order updated", zap.Uint("orderId", orderID))
	return nil
}
