package config

import (
	"errors"
	"fmt"
	"github.com/rs/zerolog"
)

type Config struct {
	Store   StoreConfig   `mapstructure:"store"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type StoreConfig struct {
	Path          string `mapstructure:"path"`
	InMemory      bool   `mapstructure:"in_memory"`
	CacheCounters int64  `mapstructure:"cache_counters"`
	CacheMaxCost  int64  `mapstructure:"cache_max_cost"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Path:          "./descstats-data",
			CacheCounters: 10000,
			CacheMaxCost:  1000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func (c *Config) Validate() error {
	if !c.Store.InMemory && c.Store.Path == "" {
		return errors.New("store.path is required unless store.in_memory is set")
	}
	if c.Store.CacheCounters <= 0 || c.Store.CacheMaxCost <= 0 {
		return errors.New("store cache sizes must be positive")
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unknown format %q", c.Logging.Format)
	}
	return nil
}
