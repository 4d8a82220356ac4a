// Package config loads and validates the service configuration from YAML,
// with defaults that reproduce the reference deployment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the complete service configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Seed       int64            `yaml:"seed"` // 0 means time-seeded
	Catalog    CatalogConfig    `yaml:"catalog"`
	Generators GeneratorsConfig `yaml:"generators"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host             string `yaml:"host"`
	Port             int    `yaml:"port"`
	ReadTimeoutSecs  int    `yaml:"read_timeout_secs"`
	WriteTimeoutSecs int    `yaml:"write_timeout_secs"`
	IdleTimeoutSecs  int    `yaml:"idle_timeout_secs"`
}

// CatalogConfig describes the emulated product and store surface.
type CatalogConfig struct {
	Products    map[string]ProductConfig `yaml:"products"`
	Stores      []string                 `yaml:"stores"`
	Competitors []string                 `yaml:"competitors"`
}

// ProductConfig is one catalog entry keyed by sku.
type ProductConfig struct {
	Price    float64 `yaml:"price"`
	Category string  `yaml:"category"`
	Brand    string  `yaml:"brand"`
}

// GeneratorsConfig tunes the synthetic-signal generators.
type GeneratorsConfig struct {
	SalesMinEvents         int     `yaml:"sales_min_events"`
	SalesMaxEvents         int     `yaml:"sales_max_events"`
	SupplyEventProbability float64 `yaml:"supply_event_probability"`
}

// Default returns the reference deployment configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:             "127.0.0.1",
			Port:             5000,
			ReadTimeoutSecs:  10,
			WriteTimeoutSecs: 10,
			IdleTimeoutSecs:  60,
		},
		Catalog: CatalogConfig{
			Products: map[string]ProductConfig{
				"APPLE_IPHONE15_128GB": {Price: 899.99, Category: "smartphones", Brand: "Apple"},
				"SAMSUNG_GALAXY_S24":   {Price: 799.99, Category: "smartphones", Brand: "Samsung"},
				"SONY_PS5_CONSOLE":     {Price: 499.99, Category: "gaming", Brand: "Sony"},
				"APPLE_AIRPODS_PRO2":   {Price: 249.99, Category: "accessories", Brand: "Apple"},
			},
			Stores:      []string{"DE_BERLIN_001", "DE_MUNICH_002", "FR_PARIS_001"},
			Competitors: []string{"amazon_de", "mediamarkt", "saturn"},
		},
		Generators: GeneratorsConfig{
			SalesMinEvents:         5,
			SalesMaxEvents:         20,
			SupplyEventProbability: 0.3,
		},
	}
}

// Load reads configuration from a YAML file layered over the defaults. An
// empty path returns the defaults untouched. The HTTP_PORT environment
// variable overrides the configured port either way.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if portStr := os.Getenv("HTTP_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid HTTP_PORT %q: %w", portStr, err)
		}
		cfg.Server.Port = port
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if len(c.Catalog.Products) == 0 {
		return fmt.Errorf("catalog requires at least one product")
	}
	for sku, p := range c.Catalog.Products {
		if p.Price <= 0 {
			return fmt.Errorf("product %s: price must be positive, got %v", sku, p.Price)
		}
	}
	if len(c.Catalog.Stores) == 0 {
		return fmt.Errorf("catalog requires at least one store")
	}
	if len(c.Catalog.Competitors) == 0 {
		return fmt.Errorf("catalog requires at least one competitor")
	}
	if c.Generators.SalesMinEvents < 0 || c.Generators.SalesMaxEvents < c.Generators.SalesMinEvents {
		return fmt.Errorf("sales event range [%d, %d] is invalid",
			c.Generators.SalesMinEvents, c.Generators.SalesMaxEvents)
	}
	if c.Generators.SupplyEventProbability < 0 || c.Generators.SupplyEventProbability > 1 {
		return fmt.Errorf("supply event probability %v must be within [0, 1]",
			c.Generators.SupplyEventProbability)
	}
	return nil
}
