package main

import (
	"os"
	"strings"
)

// Config holds the environment-driven server settings.
type Config struct {
	Port           string
	RedisAddr      string
	AllowedOrigins []string
	RateLimitRPS   int
	RateLimitBurst int
	IsProduction   bool
}

// The deployed frontend plus local development.
var defaultAllowedOrigins = []string{
	"https://alexanderbiba.github.io",
	"http://localhost:3000",
}

// loadConfig reads settings from the environment. godotenv has already been
// loaded by main.
func loadConfig() Config {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		AllowedOrigins: defaultAllowedOrigins,
		RateLimitRPS:   getEnvInt("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
		IsProduction:   os.Getenv("GIN_MODE") == "release" || os.Getenv("ENV") == "production",
	}

	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		var origins []string
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
		if len(origins) > 0 {
			cfg.AllowedOrigins = origins
		}
	}

	return cfg
}
