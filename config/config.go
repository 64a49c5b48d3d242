// Package config provides configuration loading for the storefront service.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the complete storefront configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Logger  LoggerConfig  `yaml:"logger"`
	Pricing PricingConfig `yaml:"pricing"`
	Promos  []PromoConfig `yaml:"promos"`
	Catalog CatalogConfig `yaml:"catalog"`
	Tracing TracingConfig `yaml:"tracing"`
}

// ServerConfig configures the listeners started by `storefront serve`
type ServerConfig struct {
	// GRPCPort is the gRPC listen port (PORT in the environment wins)
	GRPCPort string `yaml:"grpc_port"`
	// HTTPPort is the JSON API and /metrics listen port (empty disables it)
	HTTPPort string `yaml:"http_port"`
}

// LoggerConfig configures zap
type LoggerConfig struct {
	// Mode is "production" (JSON) or "development" (console)
	Mode string `yaml:"mode"`
	// Level is debug, info, warn or error
	Level string `yaml:"level"`
	// FileEnable tees log output into a rotating file
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename"`
}

// PricingConfig holds the order summary policy, all money in cents
type PricingConfig struct {
	// FreeShippingThresholdCents: shipping is free when the subtotal is strictly above it
	FreeShippingThresholdCents int64 `yaml:"free_shipping_threshold_cents"`
	FlatShippingCents          int64 `yaml:"flat_shipping_cents"`
	// TaxRateBasisPoints is the sales tax rate (800 = 8%)
	TaxRateBasisPoints int64 `yaml:"tax_rate_bps"`
}

// PromoConfig is one row of the promo code table
type PromoConfig struct {
	Code string `yaml:"code"`
	// Kind is "percentage" (Value in whole percent) or "fixed" (Value in cents)
	Kind  string `yaml:"kind"`
	Value int64  `yaml:"value"`
}

// CatalogConfig configures catalog browsing defaults
type CatalogConfig struct {
	// DefaultMaxPriceCents is the upper bound of the price slider
	DefaultMaxPriceCents int64 `yaml:"default_max_price_cents"`
}

// TracingConfig configures OpenTelemetry spans
type TracingConfig struct {
	// Enabled writes spans to stdout
	Enabled bool `yaml:"enabled"`
	// ServiceName is the service.name resource attribute
	ServiceName string `yaml:"service_name"`
}

// DefaultConfig returns a Config with the storefront defaults
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			GRPCPort: "50210",
			HTTPPort: "8080",
		},
		Logger: LoggerConfig{
			Mode:     "production",
			Level:    "info",
			Filename: "storefront.log",
		},
		Pricing: PricingConfig{
			FreeShippingThresholdCents: 10000,
			FlatShippingCents:          1500,
			TaxRateBasisPoints:         800,
		},
		Promos: []PromoConfig{
			{Code: "SAVE10", Kind: "percentage", Value: 10},
		},
		Catalog: CatalogConfig{
			DefaultMaxPriceCents: 100000,
		},
		Tracing: TracingConfig{
			Enabled:     false,
			ServiceName: "storefront",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Server.GRPCPort == "" {
		return fmt.Errorf("server.grpc_port is required")
	}
	switch c.Logger.Mode {
	case "production", "development":
	default:
		return fmt.Errorf("logger.mode must be production or development, got %q", c.Logger.Mode)
	}
	if c.Logger.FileEnable && c.Logger.Filename == "" {
		return fmt.Errorf("logger.filename is required when logger.file_enable is set")
	}
	if c.Pricing.FreeShippingThresholdCents < 0 || c.Pricing.FlatShippingCents < 0 {
		return fmt.Errorf("pricing amounts cannot be negative")
	}
	if c.Pricing.TaxRateBasisPoints < 0 || c.Pricing.TaxRateBasisPoints > 10000 {
		return fmt.Errorf("pricing.tax_rate_bps must be between 0 and 10000")
	}
	seen := make(map[string]bool, len(c.Promos))
	for i, p := range c.Promos {
		code := strings.ToLower(strings.TrimSpace(p.Code))
		if code == "" {
			return fmt.Errorf("promos[%d].code is required", i)
		}
		if seen[code] {
			return fmt.Errorf("promos[%d]: duplicate code %q", i, p.Code)
		}
		seen[code] = true
		switch p.Kind {
		case "percentage":
			if p.Value < 0 || p.Value > 100 {
				return fmt.Errorf("promos[%d]: percentage must be 0-100", i)
			}
		case "fixed":
			if p.Value < 0 {
				return fmt.Errorf("promos[%d]: fixed discount cannot be negative", i)
			}
		default:
			return fmt.Errorf("promos[%d]: invalid kind %q", i, p.Kind)
		}
	}
	if c.Catalog.DefaultMaxPriceCents <= 0 {
		return fmt.Errorf("catalog.default_max_price_cents must be positive")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file on top of the defaults
// and validates the result
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return config, nil
}

// Load returns the defaults when path is empty, otherwise the file contents
func Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadFromFile(path)
}
