package routes

import (
	"github.com/Avi1top/carvango-backend-sub000/configs"
	"github.com/Avi1top/carvango-backend-sub000/controllers"
	"github.com/Avi1top/carvango-backend-sub000/middlewares"
	"github.com/Avi1top/carvango-backend-sub000/pkg/verify"
	"github.com/Avi1top/carvango-backend-sub000/repository"
	"github.com/Avi1top/carvango-backend-sub000/services"
	"github.com/Avi1top/carvango-backend-sub000/ws"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, log *zap.Logger, feed *ws.OrderFeed) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	custRepo := repository.NewCustomerRepository(db)
	ingRepo := repository.NewIngredientRepository(db)
	dishRepo := repository.NewDishRepository(db)
	extraRepo := repository.NewExtraRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	codes := verify.NewCodeStore(cfg.VerifyCodeTTL)
	stopSweep := make(chan struct{})
	codes.StartSweeper(cfg.VerifyCodeTTL, stopSweep)

	authSvc := services.NewAuthService(custRepo, codes, &services.LogMailer{Log: log}, cfg.JWTSecret, cfg.JWTTTL, log)
	dishSvc := services.NewDishService(db, dishRepo, ingRepo, cfg.StrictUnits, log)
	extraSvc := services.NewExtraService(extraRepo, ingRepo, cfg.StrictUnits, log)
	orderSvc := services.NewOrderService(db, orderRepo, dishRepo, extraRepo, ingRepo, log)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	dishCtrl := controllers.NewDishController(dishSvc)
	extraCtrl := controllers.NewExtraController(extraSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, feed)
	ingCtrl := controllers.NewIngredientController(ingRepo)
	schedCtrl := controllers.NewScheduleController(db)
	adminCtrl := controllers.NewAdminController(orderRepo, ingRepo, dishRepo, custRepo)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/request-code", authCtrl.RequestCode)
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Public
	r.GET("/dishes", dishCtrl.ListPublic)
	r.GET("/dishes/:id", dishCtrl.Detail)
	r.GET("/extras", extraCtrl.ListPublic)
	r.GET("/schedules", schedCtrl.List)

	// Checkout — ไม่ต้องล็อกอิน ลูกค้าระบุ email มาใน body
	r.POST("/orders/add-order", orderCtrl.Create)

	// Profile
	profile := r.Group("/profile", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		profile.GET("/order", orderCtrl.ListForMe)
	}

	// Admin (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.GET("/customers", adminCtrl.Customers)

		admin.GET("/ingredients", ingCtrl.List)
		admin.POST("/ingredients", ingCtrl.Create)
		admin.PATCH("/ingredients/:id", ingCtrl.Update)
		admin.DELETE("/ingredients/:id", ingCtrl.Deactivate)

		admin.GET("/dishes", dishCtrl.ListAdmin)
		admin.POST("/dishes", dishCtrl.Create)
		admin.PATCH("/dishes/:id", dishCtrl.Update)
		admin.DELETE("/dishes/:id", dishCtrl.Archive)

		admin.GET("/extras", extraCtrl.ListAdmin)
		admin.POST("/extras", extraCtrl.Create)
		admin.PATCH("/extras/:id", extraCtrl.Update)
		admin.DELETE("/extras/:id", extraCtrl.Deactivate)

		admin.GET("/orders", orderCtrl.ListAdmin)
		admin.GET("/orders/:id", orderCtrl.DetailAdmin)
		admin.PATCH("/orders/:id", orderCtrl.UpdateAdmin)

		admin.POST("/schedules", schedCtrl.Create)
		admin.PATCH("/schedules/:id", schedCtrl.Update)
		admin.DELETE("/schedules/:id", schedCtrl.Delete)
	}

	// Live order feed สำหรับหน้าจอหลังบ้าน
	r.GET("/ws/orders", middlewares.WSAuthMiddleware(cfg.JWTSecret, "admin"), feed.HandleWebSocket)
}
