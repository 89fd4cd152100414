package countries

import (
	"time"

	"github.com/warp/holiday-engine/generic"
)

// Canada covers the provinces and territories. Without a subdivision the
// Ontario calendar applies.
var Canada = generic.Jurisdiction{
	Code: "CA",
	Name: "Canada",
	Subdivisions: []string{
		"AB", "BC", "MB", "NB", "NL", "NS", "NT", "NU", "ON", "PE", "QC", "SK", "YU",
	},
	DefaultSubdivision: "ON",
	Rules:              generic.RuleFunc(canadaRules),
}

func canadaRules(year int, sel generic.Selector, observed bool) []generic.Occurrence {
	var o generic.Occurrences
	prov := sel.Subdivision

	if year >= 1867 {
		newYear(&o, year, observed)
	}

	// Family Day and its provincial namesakes
	third := nthWeekday(year, time.February, time.Monday, 3)
	switch {
	case oneOf(prov, "AB", "SK", "ON") && year >= 2008:
		o.Add(third, "Family Day")
	case oneOf(prov, "AB", "SK") && year >= 2007:
		o.Add(third, "Family Day")
	case prov == "AB" && year >= 1990:
		o.Add(third, "Family Day")
	case prov == "BC" && year >= 2013:
		o.Add(nthWeekday(year, time.February, time.Monday, 2), "Family Day")
	case prov == "MB" && year >= 2008:
		o.Add(third, "Louis Riel Day")
	case prov == "PE" && year >= 2010:
		o.Add(third, "Islander Day")
	case prov == "PE" && year == 2009:
		o.Add(nthWeekday(year, time.February, time.Monday, 2), "Islander Day")
	case prov == "NS" && year >= 2015:
		o.Add(third, "Heritage Day")
	case prov == "YU":
		// Friday before the last Sunday of February
		sunday := onOrBefore(ymd(year, time.March, 1), time.Sunday)
		o.Add(onOrBefore(sunday, time.Friday), "Heritage Day")
	}

	if prov == "NL" && year >= 1900 {
		o.Add(nearestMonday(ymd(year, time.March, 17)), "St. Patrick's Day")
	}

	if prov != "QC" && year >= 1867 {
		o.Add(easter(year).AddDays(-2), "Good Friday")
	}
	if prov == "QC" && year >= 1867 {
		o.Add(easter(year).AddDays(1), "Easter Monday")
	}

	if prov == "NL" && year == 2010 {
		o.Add(ymd(2010, time.April, 19), "St. George's Day")
	} else if prov == "NL" && year >= 1990 {
		o.Add(nearestMonday(ymd(year, time.April, 23)), "St. George's Day")
	}

	victoria := onOrBefore(ymd(year, time.May, 24), time.Monday)
	if !oneOf(prov, "NB", "NS", "PE", "NL", "QC") && year >= 1953 {
		o.Add(victoria, "Victoria Day")
	} else if prov == "QC" && year >= 1953 {
		o.Add(victoria, "National Patriotes Day")
	}

	if prov == "NT" && year >= 1996 {
		o.Add(ymd(year, time.June, 21), "National Aboriginal Day")
	}

	if prov == "QC" && year >= 1925 {
		d := ymd(year, time.June, 24)
		o.Add(d, "St. Jean Baptiste Day")
		if observed {
			shiftSunday(&o, d, "St. Jean Baptiste Day")
		}
	}

	if prov == "NL" && year >= 1997 {
		o.Add(nearestMonday(ymd(year, time.June, 24)), "Discovery Day")
	} else if prov == "YU" && year >= 1912 {
		o.Add(nthWeekday(year, time.August, time.Monday, 3), "Discovery Day")
	}

	if year >= 1867 {
		name := "Canada Day"
		if prov == "NL" {
			name = "Memorial Day"
		}
		d := ymd(year, time.July, 1)
		o.Add(d, name)
		if observed && d.IsWeekend() {
			o.AddObserved(onOrAfter(d, time.Monday), name)
		}
	}

	if prov == "NU" && year >= 2001 {
		d := ymd(year, time.July, 9)
		o.Add(d, "Nunavut Day")
		if observed {
			shiftSunday(&o, d, "Nunavut Day")
		}
	} else if prov == "NU" && year == 2000 {
		o.Add(ymd(2000, time.April, 1), "Nunavut Day")
	}

	civic := nthWeekday(year, time.August, time.Monday, 1)
	switch {
	case oneOf(prov, "ON", "MB", "NT") && year >= 1900:
		o.Add(civic, "Civic Holiday")
	case prov == "AB" && year >= 1974:
		o.Add(civic, "Heritage Day")
	case prov == "BC" && year >= 1974:
		o.Add(civic, "British Columbia Day")
	case prov == "NB" && year >= 1900:
		o.Add(civic, "New Brunswick Day")
	case prov == "SK" && year >= 1900:
		o.Add(civic, "Saskatchewan Day")
	}

	if year >= 1894 {
		o.Add(nthWeekday(year, time.September, time.Monday, 1), "Labour Day")
	}

	if !oneOf(prov, "NB", "NS", "PE", "NL") && year >= 1931 {
		if year == 1935 {
			// Moved for the general election held on the second Monday.
			o.Add(ymd(1935, time.October, 25), "Thanksgiving")
		} else {
			o.Add(nthWeekday(year, time.October, time.Monday, 2), "Thanksgiving")
		}
	}

	if year >= 1931 {
		d := ymd(year, time.November, 11)
		switch {
		case !oneOf(prov, "ON", "QC", "NS", "NL", "NT", "PE", "SK"):
			o.Add(d, "Remembrance Day")
		case prov != "ON" && prov != "QC":
			o.Add(d, "Remembrance Day")
			if observed {
				shiftSunday(&o, d, "Remembrance Day")
			}
		}
	}

	if year >= 1867 {
		christmas := ymd(year, time.December, 25)
		o.Add(christmas, "Christmas Day")
		if observed {
			switch christmas.Weekday() {
			case time.Saturday:
				o.AddObserved(ymd(year, time.December, 24), "Christmas Day")
			case time.Sunday:
				o.AddObserved(ymd(year, time.December, 26), "Christmas Day")
			}
		}

		boxing := ymd(year, time.December, 26)
		switch {
		case observed && boxing.IsWeekend():
			o.AddObserved(onOrAfter(boxing, time.Monday), "Boxing Day")
		case observed && boxing.Weekday() == time.Monday:
			o.AddObserved(ymd(year, time.December, 27), "Boxing Day")
		default:
			o.Add(boxing, "Boxing Day")
		}
	}

	return o
}

// newYear emits New Year's Day with the North American substitute rule: a
// Sunday holiday moves to Monday, a Saturday one to the preceding Friday,
// Dec 31. That Friday belongs to the previous year, so when this year's
// Dec 31 is a Friday it is emitted here as well.
func newYear(o *generic.Occurrences, year int, observed bool) {
	const name = "New Year's Day"
	d := ymd(year, time.January, 1)
	o.Add(d, name)
	if !observed {
		return
	}
	shiftNearest(o, d, name)
	if eve := ymd(year, time.December, 31); eve.Weekday() == time.Friday {
		o.AddObserved(eve, name)
	}
}
