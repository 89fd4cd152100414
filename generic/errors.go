/*
errors.go - Centralized error types for the holiday engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Callers match categories with errors.Is and read details with errors.As.

ERROR CATEGORIES:
  1. Key errors - a lookup/insertion key cannot become a Date (unparseable,
     unsupported type, timestamp out of range)
  2. Configuration errors - unknown jurisdiction or subdivision
  3. Composition errors - adding a non-holiday value to a holiday set
  4. Missing entries - popping a date that has no holiday

USAGE:
  if _, err := set.Contains("not a date"); errors.Is(err, generic.ErrParse) {
      ...
  }

  var cfgErr *generic.ConfigurationError
  if errors.As(err, &cfgErr) {
      fmt.Println(cfgErr.Valid)
  }

SEE ALSO:
  - date.go: Normalize produces ParseError and TypeError
  - jurisdiction.go: registry lookups produce ConfigurationError
  - composite.go: Sum produces CompositionError
*/
package generic

import (
	"errors"
	"fmt"
	"strings"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrParse is returned when a string key holds no recognizable date.
	ErrParse = errors.New("cannot parse date")

	// ErrUnsupportedKey is returned when a key has a type that cannot be
	// converted to a date.
	ErrUnsupportedKey = errors.New("unsupported date key type")

	// ErrOutOfRange is returned when a numeric key is not finite or lies
	// outside years 1 through 9999.
	ErrOutOfRange = errors.New("timestamp out of range")

	// ErrUnknownSubdivision is returned when a subdivision code is not part of
	// the jurisdiction's declared subdivisions.
	ErrUnknownSubdivision = errors.New("unknown subdivision")

	// ErrUnknownJurisdiction is returned when no rule provider is registered
	// under a country code.
	ErrUnknownJurisdiction = errors.New("unknown jurisdiction")

	// ErrComposition is returned when a non-holiday value is added to a set.
	ErrComposition = errors.New("cannot compose holiday set")

	// ErrNotFound is returned when a date has no holiday entry.
	ErrNotFound = errors.New("holiday not found")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ParseError reports a string key that could not be parsed.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse date from string %q", e.Input)
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}
	return []error{ErrParse, e.Err}
}

// TypeError reports a key of an unsupported type.
type TypeError struct {
	Type string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("cannot convert type %s to date", e.Type)
}

func (e *TypeError) Unwrap() error {
	return ErrUnsupportedKey
}

// RangeError reports a numeric key that has no civil date.
type RangeError struct {
	Value string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("timestamp %s is out of range", e.Value)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// ConfigurationError reports a subdivision outside a jurisdiction's
// declared set.
type ConfigurationError struct {
	Country     string
	Subdivision string
	Valid       []string
}

func (e *ConfigurationError) Error() string {
	if len(e.Valid) == 0 {
		return fmt.Sprintf("unknown subdivision %q for %s: no subdivisions declared",
			e.Subdivision, e.Country)
	}
	return fmt.Sprintf("unknown subdivision %q for %s (valid: %s)",
		e.Subdivision, e.Country, strings.Join(e.Valid, ", "))
}

func (e *ConfigurationError) Unwrap() error {
	return ErrUnknownSubdivision
}

// UnknownJurisdictionError reports a country code with no registered rules.
type UnknownJurisdictionError struct {
	Code string
}

func (e *UnknownJurisdictionError) Error() string {
	return fmt.Sprintf("unknown jurisdiction %q", e.Code)
}

func (e *UnknownJurisdictionError) Unwrap() error {
	return ErrUnknownJurisdiction
}

// CompositionError reports an attempt to add a value that is neither a
// holiday set nor the additive identity.
type CompositionError struct {
	Type string
}

func (e *CompositionError) Error() string {
	return fmt.Sprintf("cannot add value of type %s to a holiday set", e.Type)
}

func (e *CompositionError) Unwrap() error {
	return ErrComposition
}

// KeyError reports a date with no holiday entry.
type KeyError struct {
	Date Date
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("no holiday on %s", e.Date)
}

func (e *KeyError) Unwrap() error {
	return ErrNotFound
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrParse) ||
		errors.Is(err, ErrUnsupportedKey) ||
		errors.Is(err, ErrOutOfRange) ||
		errors.Is(err, ErrUnknownSubdivision) ||
		errors.Is(err, ErrUnknownJurisdiction) ||
		errors.Is(err, ErrComposition)
}

// IsNotFound returns true if the error indicates a missing holiday.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
