package entity

import (
	"gorm.io/gorm"
)

type Ingredient struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	// stock เก็บในหน่วยของวัตถุดิบเอง (stock-keeping unit)
	Stock    float64 `json:"stock"`
	Unit     string  `gorm:"not null" json:"unit"` // KG, G, gram, L, ML, M/L, piece
	IsActive bool    `gorm:"default:true" json:"isActive"`

	// preload เฉพาะตอนต้องการ
	RecipeRows []DishIngredient `json:"-"`
	Extras     []Extra          `json:"-"`
}
