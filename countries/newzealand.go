package countries

import (
	"time"

	"github.com/warp/holiday-engine/generic"
)

// NewZealand covers the national holidays plus, when a province is
// selected, its anniversary day. There is no default province.
var NewZealand = generic.Jurisdiction{
	Code: "NZ",
	Name: "New Zealand",
	Subdivisions: []string{
		"NTL", "AUK", "TKI", "HKB", "WGN", "MBH", "NSN", "CAN", "STC", "WTL", "OTA", "STL", "CIT",
	},
	Rules: generic.RuleFunc(newZealandRules),
}

func newZealandRules(year int, sel generic.Selector, observed bool) []generic.Occurrence {
	var o generic.Occurrences
	if year < 1894 {
		return o
	}

	// Weekend Jan 1/2 and Dec 25/26 move two days on, past each other.
	addTwoDaysOn := func(d generic.Date, name string) {
		o.Add(d, name)
		if observed && d.IsWeekend() {
			o.AddObserved(d.AddDays(2), name)
		}
	}
	// From 2014 Waitangi and Anzac Day move to Monday.
	addMondayised := func(d generic.Date, name string) {
		o.Add(d, name)
		if observed && year >= 2014 && d.IsWeekend() {
			o.AddObserved(onOrAfter(d, time.Monday), name)
		}
	}

	addTwoDaysOn(ymd(year, time.January, 1), "New Year's Day")
	addTwoDaysOn(ymd(year, time.January, 2), "Day after New Year's Day")

	switch {
	case year > 1976:
		addMondayised(ymd(year, time.February, 6), "Waitangi Day")
	case year > 1973:
		addMondayised(ymd(year, time.February, 6), "New Zealand Day")
	}

	o.Add(easter(year).AddDays(-2), "Good Friday")
	o.Add(easter(year).AddDays(1), "Easter Monday")

	if year > 1920 {
		addMondayised(ymd(year, time.April, 25), "Anzac Day")
	}

	sovereign := "King's Birthday"
	if year >= 1952 && year < 2023 {
		sovereign = "Queen's Birthday"
	}
	switch {
	case year == 1952:
		o.Add(ymd(year, time.June, 2), sovereign)
	case year > 1937:
		o.Add(nthWeekday(year, time.June, time.Monday, 1), sovereign)
	case year == 1937:
		o.Add(ymd(year, time.June, 9), sovereign)
	case year == 1936:
		o.Add(ymd(year, time.June, 23), sovereign)
	case year > 1911:
		o.Add(ymd(year, time.June, 3), sovereign)
	case year > 1901:
		o.Add(ymd(year, time.November, 9), sovereign)
	}

	labourDay := nthWeekday(year, time.October, time.Monday, 4)
	switch {
	case year >= 1910:
		o.Add(labourDay, "Labour Day")
	case year > 1899:
		o.Add(nthWeekday(year, time.October, time.Wednesday, 2), "Labour Day")
	}

	addTwoDaysOn(ymd(year, time.December, 25), "Christmas Day")
	addTwoDaysOn(ymd(year, time.December, 26), "Boxing Day")

	switch sel.Subdivision {
	case "NTL", "AUK":
		if sel.Subdivision == "NTL" && year > 1963 && year <= 1973 {
			o.Add(anniversaryMonday(ymd(year, time.February, 6)), "Waitangi Day")
		} else {
			o.Add(anniversaryMonday(ymd(year, time.January, 29)), "Auckland Anniversary Day")
		}
	case "TKI":
		o.Add(nthWeekday(year, time.March, time.Monday, 2), "Taranaki Anniversary Day")
	case "HKB":
		o.Add(onOrBefore(labourDay, time.Friday), "Hawke's Bay Anniversary Day")
	case "WGN":
		o.Add(anniversaryMonday(ymd(year, time.January, 22)), "Wellington Anniversary Day")
	case "MBH":
		o.Add(labourDay.AddDays(7), "Marlborough Anniversary Day")
	case "NSN":
		o.Add(anniversaryMonday(ymd(year, time.February, 1)), "Nelson Anniversary Day")
	case "CAN":
		// Show Day: the second Friday after the first Tuesday of November.
		showTuesday := onOrAfter(ymd(year, time.November, 1), time.Tuesday)
		o.Add(onOrAfter(showTuesday, time.Friday).AddDays(7), "Canterbury Anniversary Day")
	case "STC":
		o.Add(nthWeekday(year, time.September, time.Monday, 4), "South Canterbury Anniversary Day")
	case "WTL":
		if year == 2005 {
			o.Add(ymd(year, time.December, 5), "Westland Anniversary Day")
		} else {
			o.Add(anniversaryMonday(ymd(year, time.December, 1)), "Westland Anniversary Day")
		}
	case "OTA":
		d := anniversaryMonday(ymd(year, time.March, 23))
		if d == easter(year).AddDays(1) {
			d = d.AddDays(1)
		}
		o.Add(d, "Otago Anniversary Day")
	case "STL":
		if year > 2011 {
			o.Add(easter(year).AddDays(2), "Southland Anniversary Day")
		} else {
			o.Add(anniversaryMonday(ymd(year, time.January, 17)), "Southland Anniversary Day")
		}
	case "CIT":
		o.Add(anniversaryMonday(ymd(year, time.November, 30)), "Chatham Islands Anniversary Day")
	}

	return o
}

// anniversaryMonday moves a provincial anniversary to the Monday before it
// when it falls Tuesday to Thursday, and to the Monday after otherwise.
func anniversaryMonday(d generic.Date) generic.Date {
	switch d.Weekday() {
	case time.Tuesday, time.Wednesday, time.Thursday:
		return onOrBefore(d, time.Monday)
	}
	return onOrAfter(d, time.Monday)
}
