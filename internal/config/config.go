package config

import (
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	TaxRate         decimal.Decimal
	DBConnString    string
	CatalogPath     string
	ShutdownTimeout time.Duration
}

// FromEnv builds Config with defaults, overridden by environment variables.
// An empty DB_DSN disables the sale archive.
func FromEnv() Config {
	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		TaxRate:         envDecimal("TAX_RATE", decimal.NewFromFloat(0.08)),
		DBConnString:    envOrDefault("DB_DSN", ""),
		CatalogPath:     envOrDefault("CATALOG_PATH", ""),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envDecimal(key string, def decimal.Decimal) decimal.Decimal {
	if v := os.Getenv(key); v != "" {
		d, err := decimal.NewFromString(v)
		if err == nil && !d.IsNegative() {
			return d
		}
	}
	return def
}
