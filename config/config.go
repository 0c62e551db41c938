// Package config loads runtime options from an optional YAML file and
// POMOTIMER_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// AppName is used for the config directory and the single-instance guard.
const AppName = "pomotimer"

const minTickInterval = 10 * time.Millisecond

// Config holds application configuration.
type Config struct {
	Alert AlertConfig
	UI    UIConfig
	Tick  TickConfig
}

// AlertConfig selects the sound played on a phase change.
type AlertConfig struct {
	File   string
	Volume float64
	ToneHz float64 `mapstructure:"tone_hz"`
	ToneMs int     `mapstructure:"tone_ms"`
}

// ToneDuration returns ToneMs as a duration.
func (a AlertConfig) ToneDuration() time.Duration {
	return time.Duration(a.ToneMs) * time.Millisecond
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Language string
	Tray     bool
}

// TickConfig controls how often the countdown samples the clock.
type TickConfig struct {
	Interval time.Duration
}

// Load reads configuration from file and env. Env var overrides use prefix
// POMOTIMER_, e.g. POMOTIMER_ALERT_FILE.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("alert.file", "")
	v.SetDefault("alert.volume", 0.0)
	v.SetDefault("alert.tone_hz", 880.0)
	v.SetDefault("alert.tone_ms", 600)
	v.SetDefault("ui.language", "")
	v.SetDefault("ui.tray", true)
	v.SetDefault("tick.interval", time.Second)

	v.SetConfigType("yaml")

	cfgPath := os.Getenv("POMOTIMER_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, AppName))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("POMOTIMER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// read config file if present
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Tick.Interval < minTickInterval {
		c.Tick.Interval = minTickInterval
	}
	if lang := strings.TrimSpace(os.Getenv("POMOTIMER_LANG")); lang != "" {
		c.UI.Language = lang
	}
	return c, nil
}
