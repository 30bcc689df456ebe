package entity

import (
	"gorm.io/gorm"
)

// หนึ่งแถวของสูตร: เมนูนี้ใช้วัตถุดิบอะไร เท่าไหร่ หน่วยไหน
type DishIngredient struct {
	gorm.Model
	DishID uint `json:"dishId"`
	Dish   Dish `json:"-"`

	IngredientID uint       `json:"ingredientId"`
	Ingredient   Ingredient `json:"-"` // preload ตอนแปลงหน่วย

	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"` // หน่วยของสูตร อาจต่างจากหน่วย stock
}
