// Package config maps environment variables into the runtime configuration.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Cache backend names accepted in BEREA_CACHE_BACKEND.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Config holds all runtime configuration. Every field comes from the
// environment; the API key is the only required value.
type Config struct {
	// Api.Bible credential and endpoint.
	APIKey  string `env:"BEREA_API_KEY,required,notEmpty"`
	BaseURL string `env:"BEREA_BASE_URL" envDefault:"https://api.scripture.api.bible/v1/"`

	// Cache backend selection and tuning.
	CacheBackend string        `env:"BEREA_CACHE_BACKEND" envDefault:"memory"`
	CacheTTL     time.Duration `env:"BEREA_CACHE_TTL" envDefault:"24h"`
	CachePath    string        `env:"BEREA_CACHE_PATH" envDefault:"berea-cache.db"`
	CacheSize    int           `env:"BEREA_CACHE_SIZE" envDefault:"4096"`
	RedisAddr    string        `env:"BEREA_REDIS_ADDR" envDefault:"localhost:6379"`

	// Translations enabled for retrieval, by Api.Bible ID.
	Translations []string `env:"BEREA_TRANSLATIONS" envSeparator:","`

	// Per-translation display overrides, as "id=value" pairs
	// (e.g. BEREA_TRANSLATION_NAMES="niv=Our Bible,esv=Study Bible").
	// An override becomes the default name/abbreviation for that
	// translation.
	TranslationNames         map[string]string `env:"BEREA_TRANSLATION_NAMES" envSeparator:"," envKeyValSeparator:"="`
	TranslationAbbreviations map[string]string `env:"BEREA_TRANSLATION_ABBREVIATIONS" envSeparator:"," envKeyValSeparator:"="`

	// Logging.
	LogLevel  string `env:"BEREA_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"BEREA_LOG_FORMAT" envDefault:"text"`
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.CacheBackend {
	case BackendMemory, BackendSQLite, BackendRedis:
	default:
		return fmt.Errorf("config: unknown cache backend %q", c.CacheBackend)
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("config: cache TTL must be positive, got %s", c.CacheTTL)
	}
	return nil
}
