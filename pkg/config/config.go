package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix is passed to envconfig; variable names carry the full
	// KITCHENOPS_ prefix in their tags instead.
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// Environment variable names, exported for tests and tooling.
const (
	EnvAppEnv            = "KITCHENOPS_APP_ENV"
	EnvLogLevel          = "KITCHENOPS_LOG_LEVEL"
	EnvLogWarnStack      = "KITCHENOPS_LOG_WARN_STACK"
	EnvLowStockThreshold = "KITCHENOPS_LOW_STOCK_THRESHOLD"
)

type Config struct {
	App       AppConfig
	Inventory InventoryConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Inventory.LowStockThreshold <= 0 {
		return nil, fmt.Errorf("low stock threshold must be positive, got %d", cfg.Inventory.LowStockThreshold)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"KITCHENOPS_APP_ENV" default:"dev"`
	LogLevel     string `envconfig:"KITCHENOPS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"KITCHENOPS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// InventoryConfig tunes the stock status derivation.
type InventoryConfig struct {
	LowStockThreshold int `envconfig:"KITCHENOPS_LOW_STOCK_THRESHOLD" default:"20"`
}
