package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unitPrice"` // snapshot ราคา ณ ตอนสั่ง

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	DishID uint `json:"dishId"`
	Dish   Dish `json:"-"` // preload เฉพาะตอนต้องการชื่อเมนู

	Extras []OrderItemExtra `json:"extras,omitempty"`
}
