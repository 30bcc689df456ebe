package entity

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model

	// public reference สำหรับลูกค้า (uuid)
	Reference string `gorm:"uniqueIndex" json:"reference"`

	Discount        float64   `json:"discount"`
	Total           float64   `json:"total"`
	OrderDate       time.Time `json:"orderDate"`
	ShippingAddress string    `json:"shippingAddress"`

	OrderStatusID uint        `json:"orderStatusId"`
	OrderStatus   OrderStatus `json:"orderStatus"`

	// preload แค่ตอน detail
	Items []OrderItem `json:"-"`
}
