/*
Package countries provides the shipped jurisdiction rule providers.

PURPOSE:
  Each file holds one country's holiday rules as a generic.RuleProvider.
  register.go adds them to the generic registry from init(), so importing
  this package (usually for side effects) makes generic.NewCountry("CA")
  work.

AVAILABLE JURISDICTIONS:
  CA   Canada, provinces and territories, default ON
  CO   Colombia
  MX   Mexico
  US   United States, states and territories, no default
  NZ   New Zealand, provinces (anniversary days), no default
  AU   Australia, states and territories, default ACT
  DE   Germany, Länder, default SH
  AT   Austria, Bundesländer, default W
  DK   Denmark
  UK   United Kingdom (alias GB)
  ES   Spain, autonomous communities, no default
  CZ   Czechia
  ECB  TARGET2 closing days (aliases TAR, EU)

OBSERVED DAYS:
  Substitute-day policy is per jurisdiction. Canada, the US, the UK, Mexico,
  New Zealand and Australia shift weekend holidays; the continental
  European providers never do. Colombia moves most holidays to Monday and
  drops some fixed ones that fall on a weekend.

SEE ALSO:
  - generic/provider.go: the RuleProvider contract
  - generic/jurisdiction.go: the registry
*/
package countries

import (
	"time"

	"github.com/warp/holiday-engine/generic"
)

// =============================================================================
// DATE ARITHMETIC
// =============================================================================

func ymd(year int, month time.Month, day int) generic.Date {
	return generic.NewDate(year, month, day)
}

// easter returns Western (Gregorian) Easter Sunday using the anonymous
// Gregorian algorithm (Meeus/Jones/Butcher).
func easter(year int) generic.Date {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return ymd(year, time.Month(month), day)
}

// onOrAfter returns the first wd on or after d.
func onOrAfter(d generic.Date, wd time.Weekday) generic.Date {
	return d.AddDays((int(wd) - int(d.Weekday()) + 7) % 7)
}

// onOrBefore returns the last wd on or before d.
func onOrBefore(d generic.Date, wd time.Weekday) generic.Date {
	return d.AddDays(-((int(d.Weekday()) - int(wd) + 7) % 7))
}

// nthWeekday returns the n-th wd of month (n >= 1).
func nthWeekday(year int, month time.Month, wd time.Weekday, n int) generic.Date {
	return onOrAfter(ymd(year, month, 1), wd).AddDays(7 * (n - 1))
}

// lastWeekday returns the last wd of month.
func lastWeekday(year int, month time.Month, wd time.Weekday) generic.Date {
	return onOrBefore(ymd(year, month+1, 1).AddDays(-1), wd)
}

// nearestMonday returns the Monday closest to d.
func nearestMonday(d generic.Date) generic.Date {
	before := onOrBefore(d, time.Monday)
	after := onOrAfter(d, time.Monday)
	if after.Time().Sub(d.Time()) < d.Time().Sub(before.Time()) {
		return after
	}
	return before
}

func oneOf(s string, set ...string) bool {
	for _, x := range set {
		if s == x {
			return true
		}
	}
	return false
}

// =============================================================================
// COMMON OBSERVANCE RULES
// =============================================================================

// shiftNearest emits the Friday before a Saturday holiday and the Monday
// after a Sunday one.
func shiftNearest(o *generic.Occurrences, d generic.Date, name string) {
	switch d.Weekday() {
	case time.Saturday:
		o.AddObserved(d.AddDays(-1), name)
	case time.Sunday:
		o.AddObserved(d.AddDays(1), name)
	}
}

// shiftSunday emits the Monday after a Sunday holiday only.
func shiftSunday(o *generic.Occurrences, d generic.Date, name string) {
	if d.Weekday() == time.Sunday {
		o.AddObserved(d.AddDays(1), name)
	}
}
