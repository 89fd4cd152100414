/*
workdays.go - Working-day arithmetic over a holiday set

PURPOSE:
  A working day is a weekday (Monday to Friday) that is not a holiday of
  the set. These helpers answer "is this a working day", "how many working
  days between", and "what is the next working day".

EXPANSION:
  Follows the set's auto-expansion flag like every other query. With
  auto-expansion off, only already expanded years contribute holidays.

SEE ALSO:
  - holidayset.go: HolidaysBetween
  - api/handlers.go: GET /api/holidays/workdays
*/
package generic

import "time"

// maxWorkdaySearch bounds NextWorkday.
const maxWorkdaySearch = 366

// =============================================================================
// PERIOD - Inclusive date range
// =============================================================================

// Period is the inclusive date range [Start, End].
type Period struct {
	Start Date
	End   Date
}

// YearPeriod returns Jan 1 - Dec 31 of year.
func YearPeriod(year int) Period {
	return Period{Start: NewDate(year, 1, 1), End: NewDate(year, 12, 31)}
}

// Contains returns true if d is within the period.
func (p Period) Contains(d Date) bool {
	return d.AfterOrEqual(p.Start) && d.BeforeOrEqual(p.End)
}

// Days returns every date of the period. Empty when Start is after End.
func (p Period) Days() []Date {
	var days []Date
	for d := p.Start; d.BeforeOrEqual(p.End); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}

// =============================================================================
// WORKING DAYS
// =============================================================================

// IsWorkday reports whether key is a weekday without a holiday. A late
// December date also expands the following year, whose rules may observe
// New Year on Dec 31.
func (h *HolidaySet) IsWorkday(key any) (bool, error) {
	d, err := h.key(key)
	if err != nil {
		return false, err
	}
	if d.Month == time.December {
		h.touch(d.AddDays(31))
	}
	return !d.IsWeekend() && !h.Has(d), nil
}

// Workdays returns the working days of p in order.
func (h *HolidaySet) Workdays(p Period) []Date {
	holidays := make(map[Date]bool)
	for _, hol := range h.HolidaysBetween(p.Start, p.End) {
		holidays[hol.Date] = true
	}

	var result []Date
	for _, d := range p.Days() {
		if !d.IsWeekend() && !holidays[d] {
			result = append(result, d)
		}
	}
	return result
}

// CountWorkdays returns the number of working days in p.
func (h *HolidaySet) CountWorkdays(p Period) int {
	return len(h.Workdays(p))
}

// NextWorkday returns the first working day strictly after key. It gives up
// with ok false after a year of consecutive non-working days.
func (h *HolidaySet) NextWorkday(key any) (next Date, ok bool, err error) {
	d, err := Normalize(key)
	if err != nil {
		return Date{}, false, err
	}
	for i := 0; i < maxWorkdaySearch; i++ {
		d = d.AddDays(1)
		work, err := h.IsWorkday(d)
		if err != nil {
			return Date{}, false, err
		}
		if work {
			return d, true, nil
		}
	}
	return Date{}, false, nil
}
