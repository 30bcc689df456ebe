package entity

import (
	"gorm.io/gorm"
)

// Extra ผูกกับวัตถุดิบเดียวเสมอ (exactly one backing ingredient)
type Extra struct {
	gorm.Model
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DiscountPercent float64 `json:"discountPercent"`
	IsActive        bool    `gorm:"default:true" json:"isActive"`

	IngredientID uint       `json:"ingredientId"`
	Ingredient   Ingredient `json:"-"` // preload ตอนแปลงหน่วย

	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`

	OrderItemExtras []OrderItemExtra `json:"-"`
}
