package config

import (
	"os"
	"strings"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	PostgresDSN string

	// Version is stamped into every payload's meta envelope.
	Version string

	// PricesEnteredWithTax mirrors the shop's tax configuration and drives
	// base-price selection on untaxed payload variants.
	PricesEnteredWithTax bool

	LogLevel string
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "meridian"
	}

	version := os.Getenv("PAYLOAD_VERSION")
	if version == "" {
		version = "dev"
	}

	level := strings.TrimSpace(strings.ToLower(os.Getenv("LOG_LEVEL")))
	if level == "" {
		level = "info"
	}

	return Config{
		ServiceName:          service,
		PostgresDSN:          os.Getenv("POSTGRES_DSN"),
		Version:              version,
		PricesEnteredWithTax: envBool("PRICES_ENTERED_WITH_TAX", true),
		LogLevel:             level,
	}, nil
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
