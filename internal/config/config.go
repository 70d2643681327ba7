package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration. It is built once at startup
// and passed by reference into the router, middleware and handlers.
type Config struct {
	ServerPort        string
	MySQLDSN          string
	RedisAddr         string
	RedisDB           int
	RedisPass         string
	JWTSecret         string
	RequestTimeout    time.Duration
	MaxThumbnailBytes int64
	Debug             bool

	// Seed credentials consumed by cmd/seed only.
	SeedAdminEmail    string
	SeedAdminName     string
	SeedAdminPassword string
}

// Load reads an optional .env file, then the environment, with sensible defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		MySQLDSN:          getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/news?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:           getEnvInt("REDIS_DB", 0),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		JWTSecret:         getEnv("JWT_SECRET", "change-me"),
		RequestTimeout:    getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
		MaxThumbnailBytes: getEnvInt64("MAX_THUMBNAIL_BYTES", 5<<20),
		Debug:             getEnv("APP_DEBUG", "false") == "true",
		SeedAdminEmail:    getEnv("SEED_ADMIN_EMAIL", "admin@example.com"),
		SeedAdminName:     getEnv("SEED_ADMIN_NAME", "Administrator"),
		SeedAdminPassword: os.Getenv("SEED_ADMIN_PASSWORD"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
