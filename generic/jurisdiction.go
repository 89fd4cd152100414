/*
jurisdiction.go - Jurisdiction registration and lookup

PURPOSE:
  Provides a registry for rule packages to register the jurisdictions they
  know. Holiday sets are built by country code, so the engine never imports
  country content directly.

HOW IT WORKS:
  1. A rule package defines a Jurisdiction per country
  2. It registers them from init()
  3. NewCountry / the calendar factory look them up by code or alias

USAGE:
  // In countries/register.go
  func init() {
      generic.RegisterJurisdiction(Canada)
  }

  // Anywhere
  ca, err := generic.NewCountry("CA", generic.WithSubdivision("QC"))

SEE ALSO:
  - provider.go: RuleProvider contract
  - countries/: the shipped jurisdictions
*/
package generic

import (
	"slices"
	"sort"
	"strings"
	"sync"
)

// =============================================================================
// JURISDICTION
// =============================================================================

// Jurisdiction describes a country's holiday rules and the subdivisions
// those rules understand.
type Jurisdiction struct {
	Code    string
	Name    string
	Aliases []string

	// Subdivisions is the enumerated set of valid subdivision codes. Empty
	// means the country has no subdivision-specific rules.
	Subdivisions []string

	// DefaultSubdivision is used when the caller selects none.
	DefaultSubdivision string

	Rules RuleProvider
}

// Selector resolves the subdivision a caller asked for against the declared
// set. An empty subdivision selects DefaultSubdivision.
func (j Jurisdiction) Selector(subdivision string) (Selector, error) {
	sub := strings.ToUpper(strings.TrimSpace(subdivision))
	if sub == "" {
		return Selector{Country: j.Code, Subdivision: j.DefaultSubdivision}, nil
	}
	if !slices.Contains(j.Subdivisions, sub) {
		return Selector{}, &ConfigurationError{
			Country:     j.Code,
			Subdivision: subdivision,
			Valid:       slices.Clone(j.Subdivisions),
		}
	}
	return Selector{Country: j.Code, Subdivision: sub}, nil
}

// =============================================================================
// JURISDICTION REGISTRY
// =============================================================================

var (
	jurisdictionRegistry = make(map[string]Jurisdiction)
	jurisdictionAliases  = make(map[string]string)
	registryMu           sync.RWMutex
)

// RegisterJurisdiction adds a jurisdiction to the global registry.
// Call this from rule package init() functions.
func RegisterJurisdiction(j Jurisdiction) {
	registryMu.Lock()
	defer registryMu.Unlock()
	code := strings.ToUpper(j.Code)
	jurisdictionRegistry[code] = j
	for _, alias := range j.Aliases {
		jurisdictionAliases[strings.ToUpper(alias)] = code
	}
}

// LookupJurisdiction finds a registered jurisdiction by code or alias,
// ignoring case.
func LookupJurisdiction(code string) (Jurisdiction, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	key := strings.ToUpper(strings.TrimSpace(code))
	if canonical, ok := jurisdictionAliases[key]; ok {
		key = canonical
	}
	j, ok := jurisdictionRegistry[key]
	if !ok {
		return Jurisdiction{}, &UnknownJurisdictionError{Code: code}
	}
	return j, nil
}

// ListJurisdictions returns all registered jurisdictions sorted by code.
func ListJurisdictions() []Jurisdiction {
	registryMu.RLock()
	defer registryMu.RUnlock()
	result := make([]Jurisdiction, 0, len(jurisdictionRegistry))
	for _, j := range jurisdictionRegistry {
		result = append(result, j)
	}
	sort.Slice(result, func(i, k int) bool { return result[i].Code < result[k].Code })
	return result
}

// ParseSelector splits "CC" or "CC-SUB" into country and subdivision.
func ParseSelector(s string) Selector {
	country, sub, _ := strings.Cut(strings.TrimSpace(s), "-")
	return Selector{Country: strings.ToUpper(country), Subdivision: strings.ToUpper(sub)}
}
