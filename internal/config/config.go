package config

import (
	"log/slog"
	"os"
	"strconv"
)

type Config struct {
	Port             string
	Env              string
	DefaultLength    int
	DefaultBatchSize int
	MaxBatchSize     int
	RateLimitRPS     float64
	RateLimitBurst   int
}

func Load() Config {
	return Config{
		Port:             getEnv("PORT", "8080"),
		Env:              getEnv("ENV", "development"),
		DefaultLength:    getEnvInt("DEFAULT_LENGTH", 16),
		DefaultBatchSize: getEnvInt("DEFAULT_BATCH_SIZE", 3),
		MaxBatchSize:     getEnvInt("MAX_BATCH_SIZE", 50),
		RateLimitRPS:     getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:   getEnvInt("RATE_LIMIT_BURST", 20),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer in environment, using fallback", "key", key, "value", v)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("invalid float in environment, using fallback", "key", key, "value", v)
		return fallback
	}
	return f
}
