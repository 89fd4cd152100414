/*
Package generic provides the holiday engine.

PURPOSE:
  This package contains the jurisdiction-agnostic machinery that turns
  per-country rule logic into a queryable calendar. Whether the rules come
  from Canada, Czechia or a hand-written test provider, the same HolidaySet
  handles key normalization, lazy year expansion, observed-day toggling and
  composition of several jurisdictions.

KEY CONCEPTS IN THIS FILE (holidayset.go):
  - HolidaySet: mapping of Date to label, expanded one year at a time
  - Holiday: a (Date, Name) pair returned by listing methods

LAZY EXPANSION:
  A set starts empty (or with the years given via WithYears). Every query
  that takes a key normalizes it and, when auto-expansion is on, asks the
  rule provider for the key's year the first time that year is seen. Direct
  insertion with Set never expands.

OBSERVED TOGGLE:
  SetObserved(false) strips "(Observed)" entries in place. SetObserved(true)
  rebuilds every expanded year from scratch, because substitute days can be
  added, removed or moved.

CONCURRENCY:
  A HolidaySet is not safe for concurrent use. Callers that share one
  across goroutines must serialize access.

USAGE:
  ca, err := generic.NewCountry("CA", generic.WithSubdivision("ON"))
  ok, err := ca.Contains("2022-07-01")
  name, _, err := ca.Get(time.Now())

  both := ca.Add(us)           // composite calendar
  both.SetObserved(false)      // drop substitute days

SEE ALSO:
  - date.go: key normalization
  - composite.go: merging sets
  - provider.go: the rule provider contract
*/
package generic

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// =============================================================================
// HOLIDAY
// =============================================================================

// Holiday is one date of a holiday set with its (possibly merged) label.
type Holiday struct {
	Date Date   `json:"date"`
	Name string `json:"name"`
}

// Names splits a merged label into the individual holiday names.
func (h Holiday) Names() []string { return splitLabel(h.Name) }

// =============================================================================
// HOLIDAY SET
// =============================================================================

// HolidaySet is a lazily expanded calendar of holidays for one jurisdiction
// or, when built by Merge, for several.
type HolidaySet struct {
	entries    map[Date]string
	years      yearTracker
	autoExpand bool
	observed   bool

	selector Selector
	rules    RuleProvider

	// parts holds the leaf sets of a composite, in acquisition order.
	parts        []*HolidaySet
	countries    []string
	subdivisions []string

	logger *zap.Logger
}

// New creates a holiday set for a registered jurisdiction. The subdivision
// given with WithSubdivision is validated against the jurisdiction.
func New(j Jurisdiction, opts ...Option) (*HolidaySet, error) {
	s := applyOptions(opts)
	sel, err := j.Selector(s.subdivision)
	if err != nil {
		return nil, err
	}
	return newSet(sel, j.Rules, s), nil
}

// NewCountry creates a holiday set for the jurisdiction registered under
// code (or one of its aliases).
func NewCountry(code string, opts ...Option) (*HolidaySet, error) {
	j, err := LookupJurisdiction(code)
	if err != nil {
		return nil, err
	}
	return New(j, opts...)
}

// NewWithRules creates a holiday set around an ad-hoc rule provider.
// No subdivision validation is performed.
func NewWithRules(sel Selector, rules RuleProvider, opts ...Option) *HolidaySet {
	s := applyOptions(opts)
	if s.subdivision != "" {
		sel.Subdivision = s.subdivision
	}
	return newSet(sel, rules, s)
}

func newSet(sel Selector, rules RuleProvider, s settings) *HolidaySet {
	h := &HolidaySet{
		entries:    make(map[Date]string),
		years:      newYearTracker(),
		autoExpand: s.autoExpand,
		observed:   s.observed,
		selector:   sel,
		rules:      rules,
		logger:     s.logger,
	}
	if sel.Country != "" {
		h.countries = []string{sel.Country}
	}
	if sel.Subdivision != "" {
		h.subdivisions = []string{sel.Subdivision}
	}
	for _, year := range s.years {
		h.Expand(year)
	}
	return h
}

// =============================================================================
// EXPANSION
// =============================================================================

// Expand populates year from the rule provider. It is a no-op for a year
// that has already been expanded.
func (h *HolidaySet) Expand(year int) {
	if h.years.has(year) {
		return
	}
	// Mark first: a provider inserting into a neighbouring year must not
	// re-enter expansion for this one.
	h.years.mark(year)
	h.populate(year)
}

func (h *HolidaySet) populate(year int) {
	before := len(h.entries)
	if h.IsComposite() {
		// Reverse order: the first-declared part writes last, so its name
		// leads any merged label.
		for i := len(h.parts) - 1; i >= 0; i-- {
			p := h.parts[i]
			if p.rules == nil {
				continue
			}
			h.insertAll(p.rules.Populate(year, p.selector, p.observed && h.observed))
		}
	} else if h.rules != nil {
		h.insertAll(h.rules.Populate(year, h.selector, h.observed))
	}
	h.logger.Debug("expanded holiday year",
		zap.String("jurisdiction", h.String()),
		zap.Int("year", year),
		zap.Bool("observed", h.observed),
		zap.Int("added", len(h.entries)-before))
}

func (h *HolidaySet) insertAll(occ []Occurrence) {
	for _, o := range occ {
		h.insert(o.Date, o.Name)
	}
}

func (h *HolidaySet) insert(d Date, label string) {
	if existing, ok := h.entries[d]; ok {
		h.entries[d] = mergeLabel(existing, label)
		return
	}
	h.entries[d] = label
}

// key normalizes a query key and expands its year when auto-expansion is on.
func (h *HolidaySet) key(key any) (Date, error) {
	d, err := Normalize(key)
	if err != nil {
		return Date{}, err
	}
	h.touch(d)
	return d, nil
}

func (h *HolidaySet) touch(d Date) {
	if h.autoExpand {
		h.Expand(d.Year)
	}
}

// =============================================================================
// QUERIES
// =============================================================================

// Contains reports whether key falls on a holiday.
func (h *HolidaySet) Contains(key any) (bool, error) {
	d, err := h.key(key)
	if err != nil {
		return false, err
	}
	_, ok := h.entries[d]
	return ok, nil
}

// Get returns the label stored for key.
func (h *HolidaySet) Get(key any) (string, bool, error) {
	d, err := h.key(key)
	if err != nil {
		return "", false, err
	}
	label, ok := h.entries[d]
	return label, ok, nil
}

// GetOr returns the label stored for key, or def when there is none.
func (h *HolidaySet) GetOr(key any, def string) (string, error) {
	label, ok, err := h.Get(key)
	if err != nil {
		return "", err
	}
	if !ok {
		return def, nil
	}
	return label, nil
}

// GetList returns the individual holiday names on key's date, in the order
// they appear in the merged label. It is empty for a non-holiday.
func (h *HolidaySet) GetList(key any) ([]string, error) {
	label, _, err := h.Get(key)
	if err != nil {
		return nil, err
	}
	return splitLabel(label), nil
}

// Has is Contains for an already normalized date.
func (h *HolidaySet) Has(d Date) bool {
	h.touch(d)
	_, ok := h.entries[d]
	return ok
}

// Lookup is Get for an already normalized date.
func (h *HolidaySet) Lookup(d Date) (string, bool) {
	h.touch(d)
	label, ok := h.entries[d]
	return label, ok
}

// =============================================================================
// MUTATION
// =============================================================================

// Set stores label on key's date, merging with any label already there.
// Set never expands a year; it is how expansion itself writes.
func (h *HolidaySet) Set(key any, label string) error {
	d, err := Normalize(key)
	if err != nil {
		return err
	}
	h.insert(d, label)
	return nil
}

// Update inserts entries from src through Set:
//   - a *HolidaySet or a map with date keys: each key with its value
//   - a slice or array of date keys: each labelled "Holiday"
//   - any single date key: labelled "Holiday"
//
// All keys are normalized before anything is written, so a bad key leaves
// the set untouched.
func (h *HolidaySet) Update(src any) error {
	pairs, err := collectEntries(src)
	if err != nil {
		return err
	}
	for _, p := range pairs {
		h.insert(p.Date, p.Name)
	}
	return nil
}

// Append is an alias for Update.
func (h *HolidaySet) Append(src any) error { return h.Update(src) }

func collectEntries(src any) ([]Holiday, error) {
	if other, ok := src.(*HolidaySet); ok {
		if other == nil {
			return nil, nil
		}
		return other.Items(), nil
	}

	v := reflect.ValueOf(src)
	switch v.Kind() {
	case reflect.Map:
		pairs := make([]Holiday, 0, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			d, err := Normalize(iter.Key().Interface())
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, Holiday{Date: d, Name: labelOf(iter.Value())})
		}
		// Map order is random; keep merges on a shared date reproducible.
		sort.Slice(pairs, func(i, j int) bool {
			if pairs[i].Date != pairs[j].Date {
				return pairs[i].Date.Before(pairs[j].Date)
			}
			return pairs[i].Name < pairs[j].Name
		})
		return pairs, nil
	case reflect.Slice, reflect.Array:
		pairs := make([]Holiday, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			d, err := Normalize(v.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, Holiday{Date: d, Name: DefaultLabel})
		}
		return pairs, nil
	}

	d, err := Normalize(src)
	if err != nil {
		return nil, err
	}
	return []Holiday{{Date: d, Name: DefaultLabel}}, nil
}

func labelOf(v reflect.Value) string {
	if v.Kind() == reflect.String {
		return v.String()
	}
	return fmt.Sprint(v.Interface())
}

// Pop removes key's entry and returns its label. It returns a *KeyError
// when the date has no holiday.
func (h *HolidaySet) Pop(key any) (string, error) {
	d, err := h.key(key)
	if err != nil {
		return "", err
	}
	label, ok := h.entries[d]
	if !ok {
		return "", &KeyError{Date: d}
	}
	delete(h.entries, d)
	return label, nil
}

// PopOr removes key's entry and returns its label, or def when the date has
// no holiday.
func (h *HolidaySet) PopOr(key any, def string) (string, error) {
	label, err := h.Pop(key)
	if IsNotFound(err) {
		return def, nil
	}
	return label, err
}

// =============================================================================
// CONFIGURATION
// =============================================================================

// Observed reports whether substitute days are included.
func (h *HolidaySet) Observed() bool { return h.observed }

// SetObserved changes the observed flag.
//
// Turning it off removes every entry whose label carries "(Observed)" and
// keeps the expanded years. Turning it on clears the set and re-expands
// every year that had been expanded; direct insertions are lost. On an
// empty set only the flag changes.
func (h *HolidaySet) SetObserved(v bool) {
	if len(h.entries) == 0 {
		h.observed = v
		return
	}
	if v {
		h.rebuild()
		return
	}
	h.observed = false
	for d, label := range h.entries {
		if isObservedLabel(label) {
			delete(h.entries, d)
		}
	}
}

// rebuild repopulates every expanded year with observed on. If a provider
// panics the previous state is restored before the panic propagates.
func (h *HolidaySet) rebuild() {
	prevEntries, prevYears, prevObserved := h.entries, h.years, h.observed
	years := prevYears.sorted()

	h.entries = make(map[Date]string, len(prevEntries))
	h.years = newYearTracker()
	h.observed = true
	defer func() {
		if r := recover(); r != nil {
			h.entries, h.years, h.observed = prevEntries, prevYears, prevObserved
			panic(r)
		}
	}()

	for _, year := range years {
		h.Expand(year)
	}
	h.logger.Debug("rebuilt holiday set",
		zap.String("jurisdiction", h.String()),
		zap.Ints("years", years))
}

// AutoExpand reports whether queries expand unseen years.
func (h *HolidaySet) AutoExpand() bool { return h.autoExpand }

// SetAutoExpand turns lazy expansion on or off. Already expanded years are
// kept either way.
func (h *HolidaySet) SetAutoExpand(v bool) { h.autoExpand = v }

// =============================================================================
// INSPECTION
// =============================================================================

// Len returns the number of holiday dates currently in the set.
func (h *HolidaySet) Len() int { return len(h.entries) }

// Years returns the expanded years in ascending order.
func (h *HolidaySet) Years() []int { return h.years.sorted() }

// Countries returns the country codes the set covers.
func (h *HolidaySet) Countries() []string { return slices.Clone(h.countries) }

// Subdivisions returns the subdivision codes the set covers.
func (h *HolidaySet) Subdivisions() []string { return slices.Clone(h.subdivisions) }

// Selector returns the jurisdiction of a simple set. For a composite it is
// the zero Selector.
func (h *HolidaySet) Selector() Selector { return h.selector }

// IsComposite reports whether the set was produced by Merge.
func (h *HolidaySet) IsComposite() bool { return len(h.parts) > 0 }

func (h *HolidaySet) String() string {
	if h.IsComposite() {
		names := make([]string, len(h.parts))
		for i, p := range h.parts {
			names[i] = p.selector.String()
		}
		return strings.Join(names, "+")
	}
	return h.selector.String()
}

// Items returns every holiday currently in the set, sorted by date. It
// never expands.
func (h *HolidaySet) Items() []Holiday {
	result := make([]Holiday, 0, len(h.entries))
	for d, label := range h.entries {
		result = append(result, Holiday{Date: d, Name: label})
	}
	sortHolidays(result)
	return result
}

// HolidaysInYear expands year and returns its holidays sorted by date.
func (h *HolidaySet) HolidaysInYear(year int) []Holiday {
	h.Expand(year)
	return h.collect(func(d Date) bool { return d.Year == year })
}

// HolidaysBetween returns the holidays in [from, to], sorted by date. With
// auto-expansion on, every year in the range is expanded first. It returns
// nil when from is after to.
func (h *HolidaySet) HolidaysBetween(from, to Date) []Holiday {
	if from.After(to) {
		return nil
	}
	if h.autoExpand {
		for year := from.Year; year <= to.Year; year++ {
			h.Expand(year)
		}
	}
	return h.collect(func(d Date) bool { return d.AfterOrEqual(from) && d.BeforeOrEqual(to) })
}

func (h *HolidaySet) collect(keep func(Date) bool) []Holiday {
	var result []Holiday
	for d, label := range h.entries {
		if keep(d) {
			result = append(result, Holiday{Date: d, Name: label})
		}
	}
	sortHolidays(result)
	return result
}

func sortHolidays(hs []Holiday) {
	sort.Slice(hs, func(i, j int) bool { return hs[i].Date.Before(hs[j].Date) })
}

// Equal reports whether both sets hold the same entries and the same
// configuration: expanded years, flags and jurisdiction.
func (h *HolidaySet) Equal(other *HolidaySet) bool {
	if h == nil || other == nil {
		return h == other
	}
	return maps.Equal(h.entries, other.entries) &&
		maps.Equal(h.years, other.years) &&
		h.autoExpand == other.autoExpand &&
		h.observed == other.observed &&
		slices.Equal(h.countries, other.countries) &&
		slices.Equal(h.subdivisions, other.subdivisions)
}

// Clone returns an independent copy of the set. Rule providers and
// composite parts are shared, not copied.
func (h *HolidaySet) Clone() *HolidaySet {
	c := *h
	c.entries = maps.Clone(h.entries)
	c.years = h.years.clone()
	c.parts = slices.Clone(h.parts)
	c.countries = slices.Clone(h.countries)
	c.subdivisions = slices.Clone(h.subdivisions)
	return &c
}
