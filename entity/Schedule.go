package entity

import (
	"time"

	"gorm.io/gorm"
)

// ตารางจอดรถขายของแต่ละวัน
type Schedule struct {
	gorm.Model
	Day          time.Time `json:"day"`
	LocationName string    `json:"locationName"`
	Address      string    `json:"address"`
	StartTime    string    `json:"startTime"` // "10:00"
	EndTime      string    `json:"endTime"`   // "20:00"
	Notes        string    `json:"notes"`
}
