package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Avi1top/carvango-backend-sub000/pkg/resp"
	"github.com/Avi1top/carvango-backend-sub000/services"
	"github.com/Avi1top/carvango-backend-sub000/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct {
	Service *services.OrderService
	Feed    *ws.OrderFeed
}

func NewOrderController(svc *services.OrderService, feed *ws.OrderFeed) *OrderController {
	return &OrderController{Service: svc, Feed: feed}
}

// ===== Create Order =====

// POST /orders/add-order
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	res, err := oc.Service.Create(&req)
	if err != nil {
		// ของไม่พอ = เคสปกติ ตอบ 400 พร้อมบอกว่าวัตถุดิบไหนขาด
		var shortErr *services.ShortageError
		if errors.As(err, &shortErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message":    shortErr.Error(),
				"items":      req.Items,
				"outOfStock": shortErr.IngredientIDs(),
				"detail":     shortErr.Short,
			})
			return
		}

		// validation → 400
		if errors.Is(err, services.ErrCustomerEmailRequired) ||
			errors.Is(err, services.ErrNoItems) ||
			errors.Is(err, services.ErrDishNotFound) ||
			errors.Is(err, services.ErrDishUnavailable) ||
			errors.Is(err, services.ErrExtraNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		// data integrity / infrastructure → 500
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// แจ้งหน้าจอหลังบ้าน (นอก transaction — แค่ collaborator ของ route)
	if oc.Feed != nil {
		oc.Feed.Publish(ws.OrderEvent{
			Type:      "order_created",
			OrderID:   res.OrderID,
			Reference: res.Reference,
			Total:     req.Total,
		})
	}

	c.JSON(http.StatusOK, gin.H{"message": "order created", "orderId": res.OrderID})
}

// ===== My Orders =====

// GET /profile/order (ล็อกอินแล้ว — ผูกด้วย email ใน token)
func (oc *OrderController) ListForMe(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		resp.Unauthorized(c, "missing email claim")
		return
	}
	items, err := oc.Service.ListForEmail(email, 50)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// ===== Admin =====

// GET /admin/orders
func (oc *OrderController) ListAdmin(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	var statusID *uint
	if s := c.Query("statusId"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			u := uint(v)
			statusID = &u
		}
	}

	out, err := oc.Service.List(statusID, page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /admin/orders/:id
func (oc *OrderController) DetailAdmin(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	detail, err := oc.Service.Detail(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, detail)
}

// PATCH /admin/orders/:id — แก้ได้แค่ status/discount/total
func (oc *OrderController) UpdateAdmin(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.UpdateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := oc.Service.UpdateAdmin(uint(id), &req); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		if errors.Is(err, services.ErrBadStatus) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}
