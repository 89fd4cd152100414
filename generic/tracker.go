package generic

import "sort"

// yearTracker records which years a holiday set has populated.
type yearTracker map[int]struct{}

func newYearTracker(years ...int) yearTracker {
	t := make(yearTracker, len(years))
	for _, y := range years {
		t.mark(y)
	}
	return t
}

func (t yearTracker) has(year int) bool { _, ok := t[year]; return ok }
func (t yearTracker) mark(year int)     { t[year] = struct{}{} }

// sorted returns the tracked years in ascending order.
func (t yearTracker) sorted() []int {
	years := make([]int, 0, len(t))
	for y := range t {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

func (t yearTracker) union(other yearTracker) yearTracker {
	u := make(yearTracker, len(t)+len(other))
	for y := range t {
		u.mark(y)
	}
	for y := range other {
		u.mark(y)
	}
	return u
}

func (t yearTracker) clone() yearTracker {
	return t.union(nil)
}
