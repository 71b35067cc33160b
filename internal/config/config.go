package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"lifegrid/internal/codec"
)

// ErrInvalid is returned for settings that fail validation.
var ErrInvalid = errors.New("invalid config")

// Config holds the settings of a simulation run.
type Config struct {
	Alive       string `mapstructure:"alive"`
	Dead        string `mapstructure:"dead"`
	Workers     int    `mapstructure:"workers"`
	LogLevel    string `mapstructure:"log_level"`
	MetricsAddr string `mapstructure:"metrics_addr"`
}

// Default returns the standard configuration.
func Default() Config {
	return Config{
		Alive:    "X",
		Dead:     "+",
		Workers:  1,
		LogLevel: "info",
	}
}

// Load builds a Config from the defaults, the YAML file at path (skipped when
// path is empty) and finally the key=value overrides, then validates it.
func Load(path string, overrides map[string]string) (Config, error) {
	c := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("read config: %w", err)
		}
		raw := map[string]any{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return c, fmt.Errorf("parse config %s: %w", path, err)
		}
		if err := c.apply(raw); err != nil {
			return c, fmt.Errorf("config %s: %w", path, err)
		}
	}
	if len(overrides) > 0 {
		raw := make(map[string]any, len(overrides))
		for k, v := range overrides {
			raw[k] = v
		}
		if err := c.apply(raw); err != nil {
			return c, fmt.Errorf("overrides: %w", err)
		}
	}
	return c, c.Validate()
}

// FromMap populates a Config from flag-style key/value pairs on top of the defaults.
func FromMap(cfg map[string]string) (Config, error) {
	return Load("", cfg)
}

// ParseOverrides splits repeated key=value arguments into a map. Later keys win.
func ParseOverrides(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: override %q is not key=value", ErrInvalid, kv)
		}
		out[key] = value
	}
	return out, nil
}

func (c *Config) apply(raw map[string]any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           c,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// Validate checks that the markers are usable and the numeric settings are in range.
func (c Config) Validate() error {
	if utf8.RuneCountInString(c.Alive) != 1 || utf8.RuneCountInString(c.Dead) != 1 {
		return fmt.Errorf("%w: markers must be single characters, got alive=%q dead=%q", ErrInvalid, c.Alive, c.Dead)
	}
	if err := c.Markers().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalid, c.Workers)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Markers returns the configured alive and dead characters.
func (c Config) Markers() codec.Markers {
	alive, _ := utf8.DecodeRuneInString(c.Alive)
	dead, _ := utf8.DecodeRuneInString(c.Dead)
	return codec.Markers{Alive: alive, Dead: dead}
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	return lvl, nil
}
