package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/zhangshv123/walmart-recommend/internal/domain"
)

const (
	envPrefix      = "RECOMMEND"
	configName     = "recommend"
	defaultBaseURL = "http://api.walmartlabs.com"
	defaultLimit   = 10
)

type Config struct {
	Catalog      Catalog
	Limit        int
	HTTPTimeout  time.Duration
	LogLevel     string
	LogFormat    string
	OutputFormat string
}

// Catalog is everything the catalog client needs to build request URLs.
type Catalog struct {
	BaseURL string
	APIKey  string
}

// Load configuration from env and an optional recommend.yaml
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", configName))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return FromViper(v)
}

// FromViper resolves a Config from v, layering env vars and defaults on top
// of whatever v already holds.
func FromViper(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("catalog.base_url", defaultBaseURL)
	v.SetDefault("catalog.api_key", "")
	v.SetDefault("limit", defaultLimit)
	v.SetDefault("http.timeout", time.Duration(0))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("output.format", "plain")

	cfg := &Config{
		Catalog: Catalog{
			BaseURL: strings.TrimRight(v.GetString("catalog.base_url"), "/"),
			APIKey:  v.GetString("catalog.api_key"),
		},
		Limit:        v.GetInt("limit"),
		HTTPTimeout:  v.GetDuration("http.timeout"),
		LogLevel:     v.GetString("log.level"),
		LogFormat:    v.GetString("log.format"),
		OutputFormat: v.GetString("output.format"),
	}

	if cfg.Catalog.APIKey == "" {
		return nil, fmt.Errorf("%w: set %s_CATALOG_API_KEY or catalog.api_key", domain.ErrMissingAPIKey, envPrefix)
	}
	return cfg, nil
}
