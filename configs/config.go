package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver  string
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	// policy ตรวจหน่วยตอนสร้างสูตร (ดู services/units.go)
	StrictUnits bool

	// อายุของ verification code ตอนสมัครสมาชิก
	VerifyCodeTTL time.Duration

	// โดเมนหน้าเว็บที่อนุญาตให้เรียก API (CORS_ORIGINS คั่นด้วย comma)
	CORSOrigins []string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process env")
	}

	// บน release ห้ามรันด้วย secret default
	secret := getEnv("JWT_SECRET", "changeme")
	if os.Getenv("GIN_MODE") == "release" {
		secret = MustGetEnv("JWT_SECRET")
	}

	return &Config{
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DBSource:      getEnv("DB_SOURCE", "carvango.db"),
		Port:          getEnv("PORT", "8000"),
		JWTSecret:     secret,
		JWTTTL:        time.Duration(24) * time.Hour,
		StrictUnits:   getEnvBool("STRICT_UNITS", false),
		VerifyCodeTTL: time.Duration(10) * time.Minute,
		CORSOrigins:   splitList(getEnv("CORS_ORIGINS", "*")),
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// MustGetEnv ใช้กับค่าที่ production ต้องตั้งเองเท่านั้น
func MustGetEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		log.Fatalf("missing env: %s", key)
	}
	return v
}
