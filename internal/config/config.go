package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Env        string
	ServerPort string
	JWTSecret  string

	Timezone string
	EndDate  string // YYYY-MM-DD, last bookable day (inclusive)

	SessionStore string // "memory" or "redis"
	SessionTTL   time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// CatalogSeed pins slot occupancy for every session; 0 means a fresh
	// random seed per login.
	CatalogSeed int64
}

func Load() *Config {
	return &Config{
		Env:           getEnv("ENV", "development"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		Timezone:      getEnv("TIMEZONE", "Asia/Kolkata"),
		EndDate:       getEnv("END_DATE", "2026-04-04"),
		SessionStore:  getEnv("SESSION_STORE", "memory"),
		SessionTTL:    time.Duration(getEnvInt("SESSION_TTL_MIN", 120)) * time.Minute,
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		CatalogSeed:   getEnvInt64("CATALOG_SEED", 0),
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
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
