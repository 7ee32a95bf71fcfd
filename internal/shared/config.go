package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	DatabaseURL string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	BaseURL     string
	GeocodeBase string
	GeocodeRPS  int
	Workers     int
	CacheTTL    time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		DatabaseURL: env("DATABASE_URL", ""),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisPass:   env("REDIS_PASSWORD", ""),
		BaseURL:     env("BASE_URL", "https://saunaandcold.co.uk"),
		GeocodeBase: env("GEOCODE_BASE_URL", ""),
		GeocodeRPS:  atoi("GEOCODE_RPS", 1),
		RedisDB:     atoi("REDIS_DB", 0),
		Workers:     atoi("IMPORT_WORKERS", 8),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
	}
	if c.DatabaseURL == "" {
		log.Warn().Msg("DATABASE_URL is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
