package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort       string
	DatabaseDSN    string
	JWTSecret      string
	CORSOrigins    string
	LocalCachePath string // fallback key-value store used when the database is unreachable
}

const defaultDSN = "host=localhost user=postgres password=postgres dbname=storseek port=5432 sslmode=disable"

func Load() *Config {
	// .env is optional; deployments usually set real env vars
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:    getEnv("DATABASE_DSN", defaultDSN),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		CORSOrigins:    getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		LocalCachePath: getEnv("LOCAL_CACHE_PATH", "./local-cache.json"),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET غير معرف في متغيرات البيئة")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET يجب أن يكون 32 حرفاً على الأقل")
	}
	if cfg.DatabaseDSN == defaultDSN {
		log.Println("[WARN] DATABASE_DSN يستخدم القيمة الافتراضية، عرّف بيانات الاتصال الخاصة بك للإنتاج")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS يستخدم القيمة الافتراضية، عرّف نطاقك الخاص للإنتاج")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
