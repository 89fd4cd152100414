package countries

import (
	"time"

	"github.com/warp/holiday-engine/generic"
)

// UnitedKingdom is the combined bank holiday calendar, including Northern
// Ireland's St. Patrick's Day. Weekend holidays are substituted on the next
// free weekday.
var UnitedKingdom = generic.Jurisdiction{
	Code:    "UK",
	Name:    "United Kingdom",
	Aliases: []string{"GB"},
	Rules:   generic.RuleFunc(ukRules),
}

func ukRules(year int, _ generic.Selector, observed bool) []generic.Occurrence {
	var o generic.Occurrences
	e := easter(year)

	if year >= 1974 {
		d := ymd(year, time.January, 1)
		o.Add(d, "New Year's Day")
		if observed && d.IsWeekend() {
			o.AddObserved(onOrAfter(d, time.Monday), "New Year's Day")
		}
	}

	patrick := ymd(year, time.March, 17)
	o.Add(patrick, "St. Patrick's Day")
	if observed && patrick.IsWeekend() {
		o.AddObserved(onOrAfter(patrick, time.Monday), "St. Patrick's Day")
	}

	o.Add(e.AddDays(-2), "Good Friday")
	o.Add(e.AddDays(1), "Easter Monday")

	if year == 2011 {
		o.Add(ymd(2011, time.April, 29), "Royal Wedding Bank Holiday")
	}
	if year >= 1978 {
		o.Add(nthWeekday(year, time.May, time.Monday, 1), "May Day")
	}
	if year >= 1971 {
		o.Add(lastWeekday(year, time.May, time.Monday), "Spring Bank Holiday")
		o.Add(lastWeekday(year, time.August, time.Monday), "Late Summer Bank Holiday")
	}

	// Weekend substitutes are always Dec 27 and Dec 28.
	christmas := ymd(year, time.December, 25)
	o.Add(christmas, "Christmas Day")
	if observed && christmas.IsWeekend() {
		o.AddObserved(ymd(year, time.December, 27), "Christmas Day")
	}
	boxing := ymd(year, time.December, 26)
	o.Add(boxing, "Boxing Day")
	if observed && boxing.IsWeekend() {
		o.AddObserved(ymd(year, time.December, 28), "Boxing Day")
	}
	return o
}
