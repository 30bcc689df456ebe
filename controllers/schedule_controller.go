package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Avi1top/carvango-backend-sub000/entity"
	"github.com/Avi1top/carvango-backend-sub000/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ตาราง schedule เป็น CRUD ตรง ๆ เลยคุย DB ใน controller
type ScheduleController struct {
	DB *gorm.DB
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db}
}

// GET /schedules?from=2026-09-01
func (sc *ScheduleController) List(c *gin.Context) {
	q := sc.DB.Model(&entity.Schedule{}).Order("day ASC")
	if from := c.Query("from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			q = q.Where("day >= ?", t)
		}
	}

	var items []entity.Schedule
	if err := q.Find(&items).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type scheduleReq struct {
	Day          string `json:"day" binding:"required"` // "2006-01-02"
	LocationName string `json:"locationName" binding:"required"`
	Address      string `json:"address"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Notes        string `json:"notes"`
}

// POST /admin/schedules
func (sc *ScheduleController) Create(c *gin.Context) {
	var req scheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	day, err := time.Parse("2006-01-02", req.Day)
	if err != nil {
		resp.BadRequest(c, "day must be YYYY-MM-DD")
		return
	}

	s := entity.Schedule{
		Day:          day,
		LocationName: req.LocationName,
		Address:      req.Address,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Notes:        req.Notes,
	}
	if err := sc.DB.Create(&s).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, s)
}

// PATCH /admin/schedules/:id
func (sc *ScheduleController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var s entity.Schedule
	if err := sc.DB.First(&s, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "schedule not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	var req map[string]any
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if v, ok := req["day"].(string); ok {
		day, err := time.Parse("2006-01-02", v)
		if err != nil {
			resp.BadRequest(c, "day must be YYYY-MM-DD")
			return
		}
		updates["day"] = day
	}
	for jsonKey, col := range map[string]string{
		"locationName": "location_name",
		"address":      "address",
		"startTime":    "start_time",
		"endTime":      "end_time",
		"notes":        "notes",
	} {
		if v, ok := req[jsonKey].(string); ok {
			updates[col] = v
		}
	}

	if len(updates) > 0 {
		if err := sc.DB.Model(&s).Updates(updates).Error; err != nil {
			resp.ServerError(c, err)
			return
		}
	}
	resp.OK(c, s)
}

// DELETE /admin/schedules/:id
func (sc *ScheduleController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := sc.DB.Delete(&entity.Schedule{}, uint(id)).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}
