package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	App struct {
		Port        string
		Debug       bool
		FrontendURL string
	}
	DB struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	SpaceX struct {
		BaseURL string
		Timeout time.Duration
	}
	Workers struct {
		SyncEnabled  bool
		SyncInterval time.Duration
	}
	RateLimit struct {
		RequestsPerSecond int
		Burst             int
	}
}

func Load() *Config {
	cfg := &Config{}

	// App
	cfg.App.Port = getEnv("PORT", "8080")
	cfg.App.Debug = getEnvAsBool("DEBUG", false)
	cfg.App.FrontendURL = getEnv("FRONTEND_URL", "http://localhost:3000")

	// DB
	cfg.DB.Host = getEnv("DB_HOST", "localhost")
	cfg.DB.Port = getEnv("DB_PORT", "5432")
	cfg.DB.User = getEnv("DB_USER", "postgres")
	cfg.DB.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.DB.DBName = getEnv("DB_NAME", "lyra")
	cfg.DB.SSLMode = getEnv("DB_SSLMODE", "disable")

	// Redis
	cfg.Redis.Host = getEnv("REDIS_HOST", "localhost")
	cfg.Redis.Port = getEnv("REDIS_PORT", "6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvAsInt("REDIS_DB", 0)

	// SpaceX API
	cfg.SpaceX.BaseURL = getEnv("SPACEX_API_URL", "https://api.spacexdata.com/v4")
	cfg.SpaceX.Timeout = getEnvAsDuration("SPACEX_API_TIMEOUT", 10*time.Second)

	// Workers
	cfg.Workers.SyncEnabled = getEnvAsBool("SYNC_ENABLED", true)
	cfg.Workers.SyncInterval = getEnvAsDuration("WORKER_SYNC_INTERVAL", 3600*time.Second)

	// Rate Limit
	cfg.RateLimit.RequestsPerSecond = getEnvAsInt("RATE_LIMIT_RPS", 10)
	cfg.RateLimit.Burst = getEnvAsInt("RATE_LIMIT_BURST", 20)

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if dur, err := time.ParseDuration(value); err == nil {
			return dur
		}
	}
	return defaultValue
}
