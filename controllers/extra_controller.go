package controllers

import (
	"errors"
	"strconv"

	"github.com/Avi1top/carvango-backend-sub000/pkg/resp"
	"github.com/Avi1top/carvango-backend-sub000/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ExtraController struct {
	Service *services.ExtraService
}

func NewExtraController(svc *services.ExtraService) *ExtraController {
	return &ExtraController{Service: svc}
}

// GET /extras
func (ec *ExtraController) ListPublic(c *gin.Context) {
	items, err := ec.Service.ListPublic()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /admin/extras
func (ec *ExtraController) ListAdmin(c *gin.Context) {
	items, err := ec.Service.ListAdmin()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// POST /admin/extras
func (ec *ExtraController) Create(c *gin.Context) {
	var req services.CreateExtraReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	extra, err := ec.Service.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrIngredientNotFound) || errors.Is(err, services.ErrUnitMismatch) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, extra)
}

// PATCH /admin/extras/:id
func (ec *ExtraController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.UpdateExtraReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	extra, err := ec.Service.Update(uint(id), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "extra not found")
			return
		}
		if errors.Is(err, services.ErrIngredientNotFound) || errors.Is(err, services.ErrUnitMismatch) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, extra)
}

// DELETE /admin/extras/:id — deactivate
func (ec *ExtraController) Deactivate(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ec.Service.Deactivate(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "extra not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "isActive": false})
}
