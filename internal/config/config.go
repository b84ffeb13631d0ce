package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port           string
	FailureRate    float64
	ReportInterval time.Duration
}

func Load() Config {
	return Config{
		Port:           getEnv("PORT", "8080"),
		FailureRate:    getEnvFloat("FAILURE_RATE", 0.05),
		ReportInterval: 30 * time.Second,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvFloat читает долю из окружения и зажимает её в [0,1]
func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
