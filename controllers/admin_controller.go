package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Avi1top/carvango-backend-sub000/pkg/resp"
	"github.com/Avi1top/carvango-backend-sub000/repository"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	OrderRepo *repository.OrderRepository
	IngRepo   *repository.IngredientRepository
	DishRepo  *repository.DishRepository
	CustRepo  *repository.CustomerRepository
}

func NewAdminController(
	orderRepo *repository.OrderRepository,
	ingRepo *repository.IngredientRepository,
	dishRepo *repository.DishRepository,
	custRepo *repository.CustomerRepository,
) *AdminController {
	return &AdminController{OrderRepo: orderRepo, IngRepo: ingRepo, DishRepo: dishRepo, CustRepo: custRepo}
}

// Dashboard: ตัวเลขรวม ๆ
func (ac *AdminController) Dashboard(c *gin.Context) {
	start := time.Now().Truncate(24 * time.Hour)
	ordersToday, err := ac.OrderRepo.CountOrdersSince(start)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "count orders today failed"})
		return
	}

	lowStock, err := ac.IngRepo.CountLowStock(10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "count low stock failed"})
		return
	}

	activeDishes, err := ac.DishRepo.CountActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "count dishes failed"})
		return
	}

	totalCustomers, err := ac.CustRepo.Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "count customers failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ordersToday":    ordersToday,
		"lowStock":       lowStock,
		"activeDishes":   activeDishes,
		"totalCustomers": totalCustomers,
	})
}

// GET /admin/customers (page/limit)
func (ac *AdminController) Customers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, total, err := ac.CustRepo.List(page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total, "page": page, "limit": limit})
}
