package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config captures all runtime configuration derived from environment variables.
type Config struct {
	Port                 string
	BoxOfficeURL         string
	BoxOfficeAPIKey      string
	BoxOfficeTimeoutSecs int
	ReadTimeoutSecs      int
	WriteTimeoutSecs     int
	IdleTimeoutSecs      int
}

// Load reads configuration from environment variables, applying defaults and validation.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("BOXOFFICE_TIMEOUT_SECS", 5)
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	v.SetDefault("SERVER_IDLE_TIMEOUT", 60)

	cfg := Config{
		Port:                 strings.TrimSpace(v.GetString("PORT")),
		BoxOfficeURL:         strings.TrimSpace(v.GetString("BOXOFFICE_URL")),
		BoxOfficeAPIKey:      v.GetString("BOXOFFICE_API_KEY"),
		BoxOfficeTimeoutSecs: v.GetInt("BOXOFFICE_TIMEOUT_SECS"),
		ReadTimeoutSecs:      v.GetInt("SERVER_READ_TIMEOUT"),
		WriteTimeoutSecs:     v.GetInt("SERVER_WRITE_TIMEOUT"),
		IdleTimeoutSecs:      v.GetInt("SERVER_IDLE_TIMEOUT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.BoxOfficeURL != "" && cfg.BoxOfficeAPIKey == "" {
		return Config{}, fmt.Errorf("BOXOFFICE_API_KEY is required when BOXOFFICE_URL is set")
	}
	if cfg.BoxOfficeTimeoutSecs <= 0 {
		return Config{}, fmt.Errorf("BOXOFFICE_TIMEOUT_SECS must be positive")
	}
	if cfg.ReadTimeoutSecs <= 0 {
		return Config{}, fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.WriteTimeoutSecs <= 0 {
		return Config{}, fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.IdleTimeoutSecs <= 0 {
		return Config{}, fmt.Errorf("SERVER_IDLE_TIMEOUT must be positive")
	}

	return cfg, nil
}

// BoxOfficeEnabled reports whether an upstream box office service is configured.
func (c Config) BoxOfficeEnabled() bool {
	return c.BoxOfficeURL != ""
}
