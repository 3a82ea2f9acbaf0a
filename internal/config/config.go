package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
)

const (
	ServiceName    = "pos-backend"
	ServiceVersion = "0.1.0"
)

const (
	DefaultHTTPAddr = ":8080"

	LogsPath      = "/otlp/v1/logs"
	TracesPath    = "/otlp/v1/traces"
	ExportTimeout = 30 * time.Second
	MaxQueueSize  = 2048
)

// SalesTaxRate is the flat tax rate applied in X- and Z-reports.
var SalesTaxRate = decimal.NewFromFloat(0.0825)

type Config struct {
	DatabaseURL    string
	HTTPAddr       string
	OtelEndpoint   string
	OtelAuthHeader string
}

// ObservabilityEnabled reports whether OTLP export is configured. The
// service runs fine without it; logs then go to stdout only.
func (c *Config) ObservabilityEnabled() bool {
	return c.OtelEndpoint != ""
}

func LoadConfig() (*Config, error) {
	config := &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		HTTPAddr:       os.Getenv("HTTP_ADDR"),
		OtelEndpoint:   os.Getenv("OTEL_ENDPOINT"),
		OtelAuthHeader: os.Getenv("OTEL_AUTH_HEADER"),
	}

	if config.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if config.HTTPAddr == "" {
		config.HTTPAddr = DefaultHTTPAddr
	}

	return config, nil
}
