package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/marinapapa/trackdf/crs"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration
// from the given YAML file, registering every CRS alias it names.
func LoadAppConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	// feeds are optional; if present validate each
	for _, f := range cfg.Feeds {
		if err := v.Struct(f); err != nil {
			return err
		}
	}
	for _, a := range cfg.CRSAliases {
		if err := v.Struct(a); err != nil {
			return err
		}
		if err := crs.Register(a.Name, a.Definition); err != nil {
			return err
		}
	}
	if cfg.TargetProjection != "" {
		if _, err := crs.Resolve(cfg.TargetProjection); err != nil {
			return fmt.Errorf("targetProjection: %w", err)
		}
	}
	Config = cfg
	return nil
}

// SelectFeed chooses a feed by name; fallback to the first configured feed.
func SelectFeed(name string) FeedConfig {
	if name != "" {
		for _, f := range Config.Feeds {
			if f.Name == name {
				return f
			}
		}
	}
	if len(Config.Feeds) > 0 {
		return Config.Feeds[0]
	}
	return FeedConfig{}
}
