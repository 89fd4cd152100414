package countries

import (
	"time"

	"github.com/warp/holiday-engine/generic"
)

// Australia covers the states and territories. Without a subdivision the
// Australian Capital Territory calendar applies.
var Australia = generic.Jurisdiction{
	Code:               "AU",
	Name:               "Australia",
	Subdivisions:       []string{"ACT", "NSW", "NT", "QLD", "SA", "TAS", "VIC", "WA"},
	DefaultSubdivision: "ACT",
	Rules:              generic.RuleFunc(australiaRules),
}

// familyAndCommunityDay lists the ACT dates that were set by proclamation.
var familyAndCommunityDay = map[int]generic.Date{
	2010: ymd(2010, time.September, 26),
	2011: ymd(2011, time.October, 10),
	2012: ymd(2012, time.October, 8),
	2013: ymd(2013, time.September, 30),
	2014: ymd(2014, time.September, 29),
	2015: ymd(2015, time.September, 28),
	2016: ymd(2016, time.September, 26),
}

// familyAndCommunityTermBreak is the Saturday starting the ACT spring
// school holidays in the years the day followed them.
var familyAndCommunityTermBreak = map[int]generic.Date{
	2017: ymd(2017, time.September, 23),
	2018: ymd(2018, time.September, 29),
	2019: ymd(2019, time.September, 28),
	2020: ymd(2020, time.September, 26),
}

func australiaRules(year int, sel generic.Selector, observed bool) []generic.Occurrence {
	var o generic.Occurrences
	state := sel.Subdivision

	jan1 := ymd(year, time.January, 1)
	o.Add(jan1, "New Year's Day")
	if observed && jan1.IsWeekend() {
		o.AddObserved(onOrAfter(jan1, time.Monday), "New Year's Day")
	}

	jan26 := ymd(year, time.January, 26)
	switch {
	case year >= 1935:
		name := "Australia Day"
		if state == "NSW" && year < 1946 {
			name = "Anniversary Day"
		}
		o.Add(jan26, name)
		if observed && year >= 1946 && jan26.IsWeekend() {
			o.AddObserved(onOrAfter(jan26, time.Monday), name)
		}
	case year >= 1888 && state != "SA":
		o.Add(jan26, "Anniversary Day")
	}

	if state == "SA" {
		if year >= 2006 {
			o.Add(nthWeekday(year, time.March, time.Monday, 2), "Adelaide Cup")
		} else {
			o.Add(nthWeekday(year, time.March, time.Monday, 3), "Adelaide Cup")
		}
	}

	if state == "ACT" {
		if year >= 2008 {
			o.Add(nthWeekday(year, time.March, time.Monday, 2), "Canberra Day")
		} else {
			o.Add(nthWeekday(year, time.March, time.Monday, 1), "Canberra Day")
		}
	}

	e := easter(year)
	o.Add(e.AddDays(-2), "Good Friday")
	if oneOf(state, "ACT", "NSW", "NT", "QLD", "SA", "VIC") {
		o.Add(e.AddDays(-1), "Easter Saturday")
	}
	if state == "NSW" {
		o.Add(e, "Easter Sunday")
	}
	o.Add(e.AddDays(1), "Easter Monday")

	if year > 1920 {
		apr25 := ymd(year, time.April, 25)
		o.Add(apr25, "Anzac Day")
		if observed {
			switch {
			case apr25.Weekday() == time.Saturday && oneOf(state, "WA", "NT"),
				apr25.Weekday() == time.Sunday && oneOf(state, "ACT", "QLD", "SA", "WA", "NT"):
				o.AddObserved(onOrAfter(apr25, time.Monday), "Anzac Day")
			}
		}
	}

	if state == "WA" && year > 1832 {
		name := "Foundation Day"
		if year >= 2015 {
			name = "Western Australia Day"
		}
		o.Add(nthWeekday(year, time.June, time.Monday, 1), name)
	}

	sovereign := "King's Birthday"
	if year >= 1952 && year < 2023 {
		sovereign = "Queen's Birthday"
	}
	switch {
	case year >= 1936:
		switch {
		case state == "QLD" && year == 2012:
			o.Add(ymd(year, time.October, 1), sovereign)
			o.Add(ymd(year, time.June, 11), "Queen's Diamond Jubilee")
		case state == "WA":
			o.Add(onOrBefore(ymd(year, time.October, 1), time.Monday), sovereign)
		default:
			o.Add(nthWeekday(year, time.June, time.Monday, 2), sovereign)
		}
	case year > 1911:
		o.Add(ymd(year, time.June, 3), sovereign)
	case year > 1901:
		o.Add(ymd(year, time.November, 9), sovereign)
	}

	if state == "NT" {
		o.Add(nthWeekday(year, time.August, time.Monday, 1), "Picnic Day")
	}

	octoberLabourDay := nthWeekday(year, time.October, time.Monday, 1)
	switch state {
	case "NSW", "ACT", "SA":
		o.Add(octoberLabourDay, "Labour Day")
	case "WA":
		o.Add(nthWeekday(year, time.March, time.Monday, 1), "Labour Day")
	case "VIC":
		o.Add(nthWeekday(year, time.March, time.Monday, 2), "Labour Day")
	case "QLD":
		if year >= 2013 && year <= 2015 {
			o.Add(octoberLabourDay, "Labour Day")
		} else {
			o.Add(nthWeekday(year, time.May, time.Monday, 1), "Labour Day")
		}
	case "NT":
		o.Add(nthWeekday(year, time.May, time.Monday, 1), "May Day")
	case "TAS":
		o.Add(nthWeekday(year, time.March, time.Monday, 2), "Eight Hours Day")
	}

	if state == "ACT" {
		const name = "Family & Community Day"
		if year >= 2007 && year <= 2009 {
			o.Add(onOrAfter(ymd(year, time.November, 1), time.Tuesday), name)
		} else if d, ok := familyAndCommunityDay[year]; ok {
			o.Add(d, name)
		} else if start, ok := familyAndCommunityTermBreak[year]; ok {
			d := onOrAfter(start, time.Monday)
			if d == octoberLabourDay {
				d = d.AddDays(7)
			}
			o.Add(d, name)
		}
	}

	if state == "VIC" {
		o.Add(onOrAfter(ymd(year, time.November, 1), time.Tuesday), "Melbourne Cup")
	}

	dec25 := ymd(year, time.December, 25)
	o.Add(dec25, "Christmas Day")
	if observed && dec25.IsWeekend() {
		o.AddObserved(ymd(year, time.December, 27), "Christmas Day")
	}

	boxing := "Boxing Day"
	if state == "SA" {
		boxing = "Proclamation Day"
	}
	dec26 := ymd(year, time.December, 26)
	o.Add(dec26, boxing)
	if observed && dec26.IsWeekend() {
		o.AddObserved(ymd(year, time.December, 28), boxing)
	}

	return o
}
