// Package config loads settings from flags, environment, and an optional
// config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. SECTIONGRID_LOG_LEVEL.
const EnvPrefix = "SECTIONGRID"

// Config of the application. An empty TTY means the controlling terminal.
type Config struct {
	TTY              string        `mapstructure:"tty"`
	FrameInterval    time.Duration `mapstructure:"frame_interval"`
	FadeDelay        time.Duration `mapstructure:"fade_delay"`
	InitialCount     int           `mapstructure:"initial_count"`
	RGB              bool          `mapstructure:"rgb"`
	Rain             bool          `mapstructure:"rain"`
	IdleCPUThreshold float64       `mapstructure:"idle_cpu_threshold"`

	Log      Log      `mapstructure:"log"`
	Snapshot Snapshot `mapstructure:"snapshot"`
	Monitor  Monitor  `mapstructure:"monitor"`
}

// Log settings.
type Log struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Snapshot settings for PNG export.
type Snapshot struct {
	Dir    string `mapstructure:"dir"`
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
}

// Monitor settings for the host load readout.
type Monitor struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"`
}

// Meta describes where the configuration came from.
type Meta struct {
	FileNotFound bool
}

var defaults = map[string]any{
	"tty":                "",
	"frame_interval":     100 * time.Millisecond,
	"fade_delay":         300 * time.Millisecond,
	"initial_count":      1,
	"rgb":                false,
	"rain":               true,
	"idle_cpu_threshold": 0.3,
	"log.level":          "info",
	"log.file":           "",
	"snapshot.dir":       ".",
	"snapshot.width":     1280,
	"snapshot.height":    720,
	"monitor.enabled":    true,
	"monitor.interval":   2 * time.Second,
}

// Keys lists every configuration key, flags with the same name are bound.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	return keys
}

// Load builds the configuration. Flags set on cmd win over environment,
// which wins over the config file. A missing config file is reported in Meta
// rather than as an error.
func Load(cmd *cobra.Command, configFile string) (Config, Meta, error) {
	v := viper.NewWithOptions(viper.WithDecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
	)))
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for _, key := range Keys() {
			if f := cmd.Flags().Lookup(key); f != nil {
				_ = v.BindPFlag(key, f)
			}
		}
	}

	meta := Meta{}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			var pathErr *os.PathError
			if errors.As(err, &pathErr) {
				meta.FileNotFound = true
			} else {
				return Config{}, Meta{}, fmt.Errorf("error reading config file %s: %w", configFile, err)
			}
		}
	}

	conf := Config{}
	if err := v.Unmarshal(&conf); err != nil {
		return Config{}, Meta{}, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return Config{}, Meta{}, err
	}
	return conf, meta, nil
}

// Validate rejects settings the frame loop cannot run with.
func (c Config) Validate() error {
	if c.FrameInterval <= 0 {
		return fmt.Errorf("frame_interval must be positive, got %s", c.FrameInterval)
	}
	if c.FadeDelay < 0 {
		return fmt.Errorf("fade_delay must not be negative, got %s", c.FadeDelay)
	}
	if c.Snapshot.Width < 1 || c.Snapshot.Height < 1 {
		return fmt.Errorf("snapshot size must be positive, got %dx%d", c.Snapshot.Width, c.Snapshot.Height)
	}
	if c.Monitor.Enabled && c.Monitor.Interval <= 0 {
		return fmt.Errorf("monitor.interval must be positive, got %s", c.Monitor.Interval)
	}
	return nil
}
