/*
Package factory builds holiday calendars from configuration.

PURPOSE:
  Converts a declarative calendar definition (YAML or JSON) into a
  generic.HolidaySet. A definition with several jurisdictions becomes a
  composite set, summed in the order the jurisdictions are listed, so the
  first one listed leads any merged label.

YAML SCHEMA:
  jurisdictions:
    - country: CA
      subdivision: QC
    - country: US-NY        # "CC-SUB" shorthand
  years: [2024, 2025]       # expanded eagerly
  observed: true            # default true
  auto_expand: true         # default true

JSON SCHEMA:
  {
    "jurisdictions": [{"country": "CZ"}],
    "years": [2025],
    "observed": false
  }

USAGE:
  f := factory.NewCalendarFactory(logger)

  set, err := f.ParseCalendarYAML(data)

  cfg := factory.CalendarConfig{Jurisdictions: []factory.JurisdictionConfig{{Country: "DE", Subdivision: "BY"}}}
  set, err := f.Build(cfg)

SEE ALSO:
  - generic/composite.go: Sum
  - countries/: registered jurisdictions
  - config/config.go: embeds CalendarConfig
*/
package factory

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/warp/holiday-engine/generic"
)

// ErrNoJurisdictions is returned when a calendar definition lists no
// jurisdiction.
var ErrNoJurisdictions = errors.New("calendar has no jurisdictions")

// =============================================================================
// SCHEMA TYPES
// =============================================================================

// CalendarConfig is the YAML/JSON representation of a calendar.
type CalendarConfig struct {
	Jurisdictions []JurisdictionConfig `yaml:"jurisdictions" json:"jurisdictions"`
	Years         []int                `yaml:"years,omitempty" json:"years,omitempty"`
	Observed      *bool                `yaml:"observed,omitempty" json:"observed,omitempty"`     // Default true
	AutoExpand    *bool                `yaml:"auto_expand,omitempty" json:"auto_expand,omitempty"` // Default true
}

// JurisdictionConfig selects one jurisdiction. Country may carry the
// subdivision as "CC-SUB" when Subdivision is empty.
type JurisdictionConfig struct {
	Country     string `yaml:"country" json:"country"`
	Subdivision string `yaml:"subdivision,omitempty" json:"subdivision,omitempty"`
}

// Selector resolves the "CC-SUB" shorthand.
func (j JurisdictionConfig) Selector() generic.Selector {
	sel := generic.ParseSelector(j.Country)
	if j.Subdivision != "" {
		sel.Subdivision = strings.ToUpper(strings.TrimSpace(j.Subdivision))
	}
	return sel
}

// JurisdictionsFromCodes turns "CC" / "CC-SUB" strings into jurisdiction
// entries. Blank codes are skipped.
func JurisdictionsFromCodes(codes []string) []JurisdictionConfig {
	result := make([]JurisdictionConfig, 0, len(codes))
	for _, code := range codes {
		sel := generic.ParseSelector(code)
		if sel.Country == "" {
			continue
		}
		result = append(result, JurisdictionConfig{Country: sel.Country, Subdivision: sel.Subdivision})
	}
	return result
}

// =============================================================================
// CALENDAR FACTORY
// =============================================================================

// CalendarFactory converts calendar definitions to holiday sets.
type CalendarFactory struct {
	logger *zap.Logger
}

// NewCalendarFactory creates a factory. A nil logger disables logging.
func NewCalendarFactory(logger *zap.Logger) *CalendarFactory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalendarFactory{logger: logger}
}

// ParseCalendar parses a JSON definition and builds it.
func (f *CalendarFactory) ParseCalendar(jsonStr string) (*generic.HolidaySet, error) {
	cfg, err := ParseJSON([]byte(jsonStr))
	if err != nil {
		return nil, err
	}
	return f.Build(cfg)
}

// ParseCalendarYAML parses a YAML definition and builds it.
func (f *CalendarFactory) ParseCalendarYAML(data []byte) (*generic.HolidaySet, error) {
	cfg, err := ParseYAML(data)
	if err != nil {
		return nil, err
	}
	return f.Build(cfg)
}

// Build creates one holiday set per jurisdiction and sums them in order.
// Every jurisdiction is validated before anything is expanded.
func (f *CalendarFactory) Build(cfg CalendarConfig) (*generic.HolidaySet, error) {
	if len(cfg.Jurisdictions) == 0 {
		return nil, ErrNoJurisdictions
	}
	for _, year := range cfg.Years {
		if year < 1 || year > 9999 {
			return nil, fmt.Errorf("invalid year %d: must be between 1 and 9999", year)
		}
	}

	type resolved struct {
		j   generic.Jurisdiction
		sel generic.Selector
	}
	var targets []resolved
	for _, jc := range cfg.Jurisdictions {
		sel := jc.Selector()
		j, err := generic.LookupJurisdiction(sel.Country)
		if err != nil {
			return nil, err
		}
		if _, err := j.Selector(sel.Subdivision); err != nil {
			return nil, err
		}
		targets = append(targets, resolved{j: j, sel: sel})
	}

	var sets []any
	for _, t := range targets {
		set, err := generic.New(t.j, f.options(cfg, t.sel.Subdivision)...)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}

	result, err := generic.Sum(sets...)
	if err != nil {
		return nil, err
	}
	f.logger.Debug("built calendar",
		zap.String("jurisdictions", result.String()),
		zap.Ints("years", result.Years()),
		zap.Bool("observed", result.Observed()))
	return result, nil
}

func (f *CalendarFactory) options(cfg CalendarConfig, subdivision string) []generic.Option {
	opts := []generic.Option{
		generic.WithYears(cfg.Years...),
		generic.WithSubdivision(subdivision),
		generic.WithLogger(f.logger),
	}
	if cfg.Observed != nil {
		opts = append(opts, generic.WithObserved(*cfg.Observed))
	}
	if cfg.AutoExpand != nil {
		opts = append(opts, generic.WithAutoExpand(*cfg.AutoExpand))
	}
	return opts
}

// =============================================================================
// PARSING
// =============================================================================

// ParseYAML decodes a calendar definition from YAML.
func ParseYAML(data []byte) (CalendarConfig, error) {
	var cfg CalendarConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CalendarConfig{}, fmt.Errorf("failed to parse calendar YAML: %w", err)
	}
	return cfg, nil
}

// ParseJSON decodes a calendar definition from JSON.
func ParseJSON(data []byte) (CalendarConfig, error) {
	var cfg CalendarConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return CalendarConfig{}, fmt.Errorf("failed to parse calendar JSON: %w", err)
	}
	return cfg, nil
}

// ToYAML encodes a calendar definition.
func ToYAML(cfg CalendarConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}
