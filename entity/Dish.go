package entity

import (
	"gorm.io/gorm"
)

type Dish struct {
	gorm.Model
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`

	// ส่วนลดเป็นเปอร์เซ็นต์ (0-100)
	DiscountPercent float64 `json:"discountPercent"`

	IsActive bool `gorm:"default:true" json:"isActive"`
	Archived bool `gorm:"default:false" json:"archived"` // soft delete ฝั่ง product

	// สูตรคงที่ของเมนู — preload ตอนคิด stock เท่านั้น
	Recipe []DishIngredient `json:"recipe,omitempty"`

	OrderItems []OrderItem `json:"-"`
}
