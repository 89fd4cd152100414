package generic_test

import (
	"time"

	"github.com/warp/holiday-engine/generic"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func date(y int, m time.Month, d int) generic.Date {
	return generic.NewDate(y, m, d)
}

// newYearRules emits New Year's Day every year. With observed on, a Saturday
// New Year adds Dec 31 of the prior year and a Sunday one adds Jan 2.
func newYearRules() generic.RuleFunc {
	return func(year int, _ generic.Selector, observed bool) []generic.Occurrence {
		var o generic.Occurrences
		d := generic.NewDate(year, time.January, 1)
		o.Add(d, "New Year's Day")
		if observed {
			switch d.Weekday() {
			case time.Saturday:
				o.AddObserved(d.AddDays(-1), "New Year's Day")
			case time.Sunday:
				o.AddObserved(d.AddDays(1), "New Year's Day")
			}
		}
		return o
	}
}

// fixedRules emits one label on one month/day every year.
func fixedRules(month time.Month, day int, name string) generic.RuleFunc {
	return func(year int, _ generic.Selector, _ bool) []generic.Occurrence {
		return []generic.Occurrence{{Date: generic.NewDate(year, month, day), Name: name}}
	}
}

// countingRules wraps rules and counts Populate calls per year.
type countingRules struct {
	inner generic.RuleProvider
	calls map[int]int
}

func newCountingRules(inner generic.RuleProvider) *countingRules {
	return &countingRules{inner: inner, calls: make(map[int]int)}
}

func (c *countingRules) Populate(year int, sel generic.Selector, observed bool) []generic.Occurrence {
	c.calls[year]++
	return c.inner.Populate(year, sel, observed)
}

func newYearSet(opts ...generic.Option) *generic.HolidaySet {
	return generic.NewWithRules(generic.Selector{Country: "XX"}, newYearRules(), opts...)
}

func christmasSet(country string, name string, opts ...generic.Option) *generic.HolidaySet {
	return generic.NewWithRules(generic.Selector{Country: country}, fixedRules(time.December, 25, name), opts...)
}
