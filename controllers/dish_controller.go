package controllers

import (
	"errors"
	"strconv"

	"github.com/Avi1top/carvango-backend-sub000/pkg/resp"
	"github.com/Avi1top/carvango-backend-sub000/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DishController struct {
	Service *services.DishService
}

func NewDishController(svc *services.DishService) *DishController {
	return &DishController{Service: svc}
}

// GET /dishes — หน้าเว็บ เห็นเฉพาะ active และยังไม่ archive
func (dc *DishController) ListPublic(c *gin.Context) {
	items, err := dc.Service.ListPublic()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /dishes/:id
func (dc *DishController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	dish, err := dc.Service.Detail(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "dish not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, dish)
}

// GET /admin/dishes — เห็นทุกจานรวม archived
func (dc *DishController) ListAdmin(c *gin.Context) {
	items, err := dc.Service.ListAdmin()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /admin/dishes
func (dc *DishController) Create(c *gin.Context) {
	var req services.CreateDishReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	dish, err := dc.Service.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrIngredientNotFound) || errors.Is(err, services.ErrUnitMismatch) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, dish)
}

// PATCH /admin/dishes/:id
func (dc *DishController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.UpdateDishReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	dish, err := dc.Service.Update(uint(id), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "dish not found")
			return
		}
		if errors.Is(err, services.ErrIngredientNotFound) || errors.Is(err, services.ErrUnitMismatch) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, dish)
}

// DELETE /admin/dishes/:id — archive (soft delete)
func (dc *DishController) Archive(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := dc.Service.Archive(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "dish not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "archived": true})
}
