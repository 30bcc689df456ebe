package controllers

import (
	"errors"
	"strconv"

	"github.com/Avi1top/carvango-backend-sub000/entity"
	"github.com/Avi1top/carvango-backend-sub000/pkg/resp"
	"github.com/Avi1top/carvango-backend-sub000/repository"
	"github.com/Avi1top/carvango-backend-sub000/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type IngredientController struct {
	Repo *repository.IngredientRepository
}

func NewIngredientController(repo *repository.IngredientRepository) *IngredientController {
	return &IngredientController{Repo: repo}
}

// GET /admin/ingredients?active=true
func (ic *IngredientController) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	items, err := ic.Repo.List(activeOnly)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

type createIngredientReq struct {
	Name  string  `json:"name" binding:"required"`
	Stock float64 `json:"stock" binding:"gte=0"`
	Unit  string  `json:"unit" binding:"required"`
}

// POST /admin/ingredients
func (ic *IngredientController) Create(c *gin.Context) {
	var req createIngredientReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !services.KnownUnit(req.Unit) {
		resp.BadRequest(c, "unknown unit: "+req.Unit)
		return
	}

	ing := entity.Ingredient{Name: req.Name, Stock: req.Stock, Unit: req.Unit, IsActive: true}
	if err := ic.Repo.Create(&ing); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, ing)
}

type updateIngredientReq struct {
	Name     *string  `json:"name"`
	Stock    *float64 `json:"stock"`
	Unit     *string  `json:"unit"`
	IsActive *bool    `json:"isActive"`
}

// PATCH /admin/ingredients/:id
func (ic *IngredientController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req updateIngredientReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if _, err := ic.Repo.FindByID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "ingredient not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			resp.BadRequest(c, "stock cannot be negative")
			return
		}
		updates["stock"] = *req.Stock
	}
	if req.Unit != nil {
		if !services.KnownUnit(*req.Unit) {
			resp.BadRequest(c, "unknown unit: "+*req.Unit)
			return
		}
		updates["unit"] = *req.Unit
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := ic.Repo.Update(uint(id), updates); err != nil {
			resp.ServerError(c, err)
			return
		}
	}

	ing, err := ic.Repo.FindByID(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, ing)
}

// DELETE /admin/ingredients/:id — แค่ deactivate ไม่ลบจริง
func (ic *IngredientController) Deactivate(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if _, err := ic.Repo.FindByID(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "ingredient not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	if err := ic.Repo.Deactivate(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "isActive": false})
}
