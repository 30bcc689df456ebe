package entity

import (
	"gorm.io/gorm"
)

// แถว link ระหว่าง order กับลูกค้า (ผูกด้วย email ซึ่งเป็น natural key)
type OrderCustomer struct {
	gorm.Model
	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	Email string `gorm:"index;not null" json:"email"`
}
