/*
store.go - Persistence interface for custom holidays

PURPOSE:
  Rule providers compute statutory holidays; organizations also have their
  own days off (a company founding day, a one-off closure). Those are kept
  in a CustomHolidayStore and written onto holiday sets with Set, so they
  merge with statutory labels under the usual collision rule.

SCOPING:
  Country ""   applies to every calendar
  Country "CZ" applies only to calendars covering CZ

RECURRING ENTRIES:
  A recurring entry repeats on the same month/day every year. Stores return
  it rebased onto the year that was asked for. Feb 29 is skipped in common
  years rather than moved to Mar 1.

IMPLEMENTATIONS:
  - store/sqlite/sqlite.go: SQLite
  - generic/store/memory.go: In-memory for testing

SEE ALSO:
  - holidayset.go: Set / Update
  - api/handlers.go: custom holiday endpoints
*/
package generic

import (
	"context"
	"slices"
	"strings"
)

// =============================================================================
// CUSTOM HOLIDAYS
// =============================================================================

// CustomHoliday is a user-defined holiday.
type CustomHoliday struct {
	ID        string
	Country   string // Empty string = applies to every calendar
	Date      Date
	Name      string
	Recurring bool // true = same month/day every year
}

// In returns the occurrence of h in year. Non-recurring entries only occur
// in their own year. A recurring Feb 29 entry only occurs in leap years.
func (h CustomHoliday) In(year int) (Date, bool) {
	if !h.Recurring {
		return h.Date, h.Date.Year == year
	}
	d := NewDate(year, h.Date.Month, h.Date.Day)
	if d.Month != h.Date.Month {
		return Date{}, false
	}
	return d, true
}

// AppliesTo reports whether h is in scope for any of the given countries.
func (h CustomHoliday) AppliesTo(countries []string) bool {
	if h.Country == "" {
		return true
	}
	return slices.ContainsFunc(countries, func(c string) bool {
		return strings.EqualFold(c, h.Country)
	})
}

// CustomHolidayStore persists custom holidays.
type CustomHolidayStore interface {
	// SaveCustomHoliday inserts or replaces an entry. Saving the same
	// (country, date, name) twice keeps one row.
	SaveCustomHoliday(ctx context.Context, h CustomHoliday) error

	// DeleteCustomHoliday removes an entry by ID. Returns ErrNotFound if
	// there is none.
	DeleteCustomHoliday(ctx context.Context, id string) error

	// ListCustomHolidays returns the entries for country (plus global ones)
	// occurring in year, with recurring entries rebased onto year.
	ListCustomHolidays(ctx context.Context, country string, year int) ([]CustomHoliday, error)

	// AllCustomHolidays returns every entry for country plus global ones,
	// as stored.
	AllCustomHolidays(ctx context.Context, country string) ([]CustomHoliday, error)
}

// ApplyCustomHolidays writes the entries that are in scope for set onto it.
// It does not expand any year.
func ApplyCustomHolidays(set *HolidaySet, holidays []CustomHoliday) {
	countries := set.Countries()
	for _, h := range holidays {
		if h.AppliesTo(countries) {
			set.insert(h.Date, h.Name)
		}
	}
}

// LoadCustomHolidays reads the custom holidays for every country of set in
// year and applies them.
func LoadCustomHolidays(ctx context.Context, s CustomHolidayStore, set *HolidaySet, year int) error {
	seen := make(map[string]bool)
	countries := set.Countries()
	if len(countries) == 0 {
		countries = []string{""}
	}
	for _, country := range countries {
		holidays, err := s.ListCustomHolidays(ctx, country, year)
		if err != nil {
			return err
		}
		fresh := holidays[:0]
		for _, h := range holidays {
			if !seen[h.ID] {
				seen[h.ID] = true
				fresh = append(fresh, h)
			}
		}
		ApplyCustomHolidays(set, fresh)
	}
	return nil
}
