/*
Package config loads the holiday service configuration.

PURPOSE:
  One YAML file configures both the HTTP service and the CLI: where to
  listen, which SQLite database holds custom holidays, the default calendar
  for "check" and "list", and the active-hours window used by "check".

FILE FORMAT:
  listen: ":8080"
  database: "holidays.db"     # ":memory:" for an in-memory store
  log_level: "info"           # debug | info | warn | error
  calendar:
    jurisdictions:
      - country: CZ
    observed: true
  hours:
    on: 7                     # active from 07:00
    off: 19                   # inactive from 19:00

  Every field is optional; missing ones keep their defaults.

LOADING:
  Load("")            defaults only
  Load(DefaultPath)   defaults when the file does not exist
  Load("other.yml")   error when the file does not exist

ENVIRONMENT:
  Applied over the file by ApplyEnv; a .env file can seed them
  (LoadEnvFile).

  HOLIDAYS_LISTEN      listen
  HOLIDAYS_DATABASE    database
  HOLIDAYS_LOG_LEVEL   log_level
  HOLIDAYS_COUNTRIES   calendar jurisdictions, "CA-QC,US"
  HOLIDAYS_HOURS_ON    hours.on
  HOLIDAYS_HOURS_OFF   hours.off

SEE ALSO:
  - factory/calendar.go: the calendar section
  - cmd/holidays: flag overrides
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/warp/holiday-engine/factory"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "./holidays.yml"

// Config is the service configuration.
type Config struct {
	Listen   string                 `yaml:"listen"`
	Database string                 `yaml:"database"`
	LogLevel string                 `yaml:"log_level"`
	Calendar factory.CalendarConfig `yaml:"calendar"`
	Hours    Hours                  `yaml:"hours"`
}

// Hours is the daily active window [On, Off) in local hours.
type Hours struct {
	On  int `yaml:"on"`
	Off int `yaml:"off"`
}

// Active reports whether hour falls inside the window.
func (h Hours) Active(hour int) bool {
	return hour >= h.On && hour < h.Off
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Listen:   ":8080",
		Database: "holidays.db",
		LogLevel: "info",
		Calendar: factory.CalendarConfig{
			Jurisdictions: []factory.JurisdictionConfig{{Country: "CZ"}},
		},
		Hours: Hours{On: 0, Off: 24},
	}
}

// Load reads the file at path over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == DefaultPath {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read configuration file: %w", err)
	}

	if err := cfg.Parse(data); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes YAML over the current values and validates the result.
func (c *Config) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse configuration: %w", err)
	}
	return c.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Hours.On < 0 || c.Hours.On > 24 || c.Hours.Off < 0 || c.Hours.Off > 24 {
		return fmt.Errorf("invalid hours %d-%d: must be between 0 and 24", c.Hours.On, c.Hours.Off)
	}
	if c.Hours.On > c.Hours.Off {
		return fmt.Errorf("invalid hours %d-%d: on must not be after off", c.Hours.On, c.Hours.Off)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if c.Database == "" {
		return errors.New("database path must not be empty")
	}
	return nil
}

// =============================================================================
// ENVIRONMENT
// =============================================================================

// LoadEnvFile loads a dotenv file into the process environment. A missing
// file is not an error; variables already set are not overwritten.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from HOLIDAYS_* variables and validates the
// result. lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("HOLIDAYS_LISTEN"); ok && v != "" {
		c.Listen = v
	}
	if v, ok := lookup("HOLIDAYS_DATABASE"); ok && v != "" {
		c.Database = v
	}
	if v, ok := lookup("HOLIDAYS_LOG_LEVEL"); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup("HOLIDAYS_COUNTRIES"); ok && v != "" {
		c.Calendar.Jurisdictions = factory.JurisdictionsFromCodes(strings.Split(v, ","))
	}
	for name, dst := range map[string]*int{
		"HOLIDAYS_HOURS_ON":  &c.Hours.On,
		"HOLIDAYS_HOURS_OFF": &c.Hours.Off,
	} {
		v, ok := lookup(name)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", name, v, err)
		}
		*dst = n
	}
	return c.Validate()
}

// =============================================================================
// LOGGING
// =============================================================================

// NewLogger builds a zap logger at level. "debug" gets the development
// encoder; everything else the production JSON one.
func NewLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zc := zap.NewProductionConfig()
	if lvl == zapcore.DebugLevel {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}
