package middlewares

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware เปิดให้หน้าเว็บ carvango (และหน้าแอดมิน) เรียก API ได้
// โดเมนอ่านจาก config CORS_ORIGINS; ค่า default "*" ไว้สำหรับ dev เท่านั้น
func CORSMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		// Authorization สำหรับ JWT, Content-Type สำหรับ JSON body
		AllowHeaders:  []string{"Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	return cors.New(cfg)
}
