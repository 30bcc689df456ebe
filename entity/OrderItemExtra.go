package entity

import (
	"gorm.io/gorm"
)

type OrderItemExtra struct {
	gorm.Model
	OrderItemID uint      `json:"orderItemId"`
	OrderItem   OrderItem `json:"-"` // ไม่ serialize กลับ เพื่อเลี่ยง loop

	ExtraID uint  `json:"extraId"`
	Extra   Extra `json:"-"`

	Qty int `json:"qty"`
}
