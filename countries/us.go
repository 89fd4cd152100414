package countries

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"

	"github.com/warp/holiday-engine/generic"
)

// UnitedStates covers the federal holidays plus state and territory
// holidays when a state is selected.
var UnitedStates = generic.Jurisdiction{
	Code: "US",
	Name: "United States",
	Subdivisions: []string{
		"AL", "AK", "AS", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
		"GA", "GU", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
		"MD", "MH", "MA", "MI", "FM", "MN", "MS", "MO", "MT", "NE", "NV",
		"NH", "NJ", "NM", "NY", "NC", "ND", "MP", "OH", "OK", "OR", "PW",
		"PA", "PR", "RI", "SC", "SD", "TN", "TX", "UT", "VT", "VA", "VI",
		"WA", "WV", "WI", "WY",
	},
	Rules: generic.RuleFunc(usRules),
}

// federal adds the date rickar/cal computes for h in year and, with
// observed on, its substitute day when that differs. It returns the actual
// date, or the zero Date when the library has no occurrence for year.
func federal(o *generic.Occurrences, h *cal.Holiday, year int, name string, observed bool) generic.Date {
	actual, obs := h.Calc(year)
	if actual.IsZero() {
		return generic.Date{}
	}
	d := generic.DateOf(actual)
	o.Add(d, name)
	if observed && !obs.IsZero() && !obs.Equal(actual) {
		o.AddObserved(generic.DateOf(obs), name)
	}
	return d
}

func usRules(year int, sel generic.Selector, observed bool) []generic.Occurrence {
	var o generic.Occurrences
	state := sel.Subdivision

	if year > 1870 {
		federal(&o, us.NewYear, year, "New Year's Day", observed)
		// Next year's New Year observed on this Dec 31.
		if observed {
			if _, obs := us.NewYear.Calc(year + 1); !obs.IsZero() && obs.Year() == year {
				o.AddObserved(generic.DateOf(obs), "New Year's Day")
			}
		}
	}

	if year >= 1986 {
		federal(&o, us.MlkDay, year, mlkName(year, state), false)
	}

	washington(&o, year, state)

	if year > 1970 {
		federal(&o, us.MemorialDay, year, "Memorial Day", false)
	} else if year >= 1888 {
		o.Add(ymd(year, time.May, 30), "Memorial Day")
	}

	if year >= 2021 {
		federal(&o, us.Juneteenth, year, "Juneteenth National Independence Day", observed)
	}

	if year > 1870 {
		federal(&o, us.IndependenceDay, year, "Independence Day", observed)
	}

	if year >= 1894 {
		federal(&o, us.LaborDay, year, "Labor Day", false)
	}

	if !oneOf(state, "AK", "DE", "FL", "HI", "NV") {
		name := "Columbus Day"
		switch state {
		case "SD":
			name = "Native American Day"
		case "VI":
			name = "Columbus Day and Puerto Rico Friendship Day"
		}
		if year >= 1970 {
			federal(&o, us.ColumbusDay, year, name, false)
		} else if year >= 1937 {
			o.Add(ymd(year, time.October, 12), name)
		}
	}

	veterans(&o, year, observed)

	var thanksgiving generic.Date
	if year > 1870 {
		thanksgiving = federal(&o, us.ThanksgivingDay, year, "Thanksgiving", false)
	}

	if year > 1870 {
		federal(&o, us.ChristmasDay, year, "Christmas Day", observed)
	}

	if state != "" {
		stateRules(&o, year, state, observed, thanksgiving)
	}
	return o
}

func mlkName(year int, state string) string {
	switch {
	case state == "AL":
		return "Robert E. Lee/Martin Luther King Birthday"
	case oneOf(state, "AS", "MS"):
		return "Dr. Martin Luther King Jr. and Robert E. Lee's Birthdays"
	case oneOf(state, "AZ", "NH"):
		return "Dr. Martin Luther King Jr./Civil Rights Day"
	case state == "GA" && year < 2012:
		return "Robert E. Lee's Birthday"
	case state == "ID" && year >= 2006:
		return "Martin Luther King, Jr. - Idaho Human Rights Day"
	}
	return "Martin Luther King, Jr. Day"
}

func washington(o *generic.Occurrences, year int, state string) {
	name := "Washington's Birthday"
	switch state {
	case "AL":
		name = "George Washington/Thomas Jefferson Birthday"
	case "AS":
		name = "George Washington's Birthday and Daisy Gatson Bates Day"
	case "PR", "VI":
		name = "Presidents' Day"
	}

	switch {
	case !oneOf(state, "DE", "FL", "GA", "NM", "PR"):
		if year > 1970 {
			federal(o, us.PresidentsDay, year, name, false)
		} else if year >= 1879 {
			o.Add(ymd(year, time.February, 22), name)
		}
	case state == "GA":
		if eve := ymd(year, time.December, 24); eve.Weekday() != time.Wednesday {
			o.Add(eve, name)
		} else {
			o.Add(ymd(year, time.December, 26), name)
		}
	case state == "PR":
		o.Add(nthWeekday(year, time.February, time.Monday, 3), name)
	}
}

func veterans(o *generic.Occurrences, year int, observed bool) {
	name := "Veterans Day"
	if year <= 1953 {
		name = "Armistice Day"
	}
	switch {
	case year >= 1978:
		federal(o, us.VeteransDay, year, name, observed)
	case year > 1970:
		o.Add(nthWeekday(year, time.October, time.Monday, 4), name)
	case year >= 1938:
		d := ymd(year, time.November, 11)
		o.Add(d, name)
		if observed {
			shiftNearest(o, d, name)
		}
	}
}

// =============================================================================
// STATE AND TERRITORY HOLIDAYS
// =============================================================================

func stateRules(o *generic.Occurrences, year int, state string, observed bool, thanksgiving generic.Date) {
	// fixed adds a holiday on month/day with an optional substitute rule.
	fixed := func(month time.Month, day int, name string, shift func(*generic.Occurrences, generic.Date, string)) generic.Date {
		d := ymd(year, month, day)
		o.Add(d, name)
		if observed && shift != nil {
			shift(o, d, name)
		}
		return d
	}
	e := easter(year)

	switch state {
	case "PR":
		fixed(time.January, 6, "Epiphany", nil)
	case "VI":
		fixed(time.January, 6, "Three King's Day", nil)
	}

	if state == "VA" {
		switch {
		case year >= 2000:
			mlk := nthWeekday(year, time.January, time.Monday, 3)
			o.Add(onOrBefore(mlk, time.Friday), "Lee Jackson Day")
		case year >= 1983:
			o.Add(nthWeekday(year, time.January, time.Monday, 3), "Lee Jackson Day")
		case year >= 1889:
			fixed(time.January, 19, "Lee Jackson Day", nil)
		}
	}

	if oneOf(state, "DC", "LA", "MD", "VA") && year >= 1789 && (year-1789)%4 == 0 {
		if year >= 1937 {
			fixed(time.January, 20, "Inauguration Day", shiftSunday)
		} else {
			fixed(time.March, 4, "Inauguration Day", shiftSunday)
		}
	}

	if (oneOf(state, "CT", "IL", "IA", "NJ", "NY") && year >= 1971) ||
		(state == "CA" && year >= 1971 && year <= 2009) {
		fixed(time.February, 12, "Lincoln's Birthday", shiftNearest)
	}

	if (state == "CA" && year >= 2014) || (state == "FL" && year >= 2011) ||
		(state == "NY" && year >= 2004) || (state == "WI" && year >= 1976) {
		fixed(time.February, 15, "Susan B. Anthony Day", nil)
	}

	if state == "LA" && year >= 1857 {
		o.Add(e.AddDays(-47), "Mardi Gras")
	}
	if state == "GU" && year >= 1970 {
		o.Add(nthWeekday(year, time.March, time.Monday, 1), "Guam Discovery Day")
	}
	if state == "IL" && year >= 1978 {
		o.Add(nthWeekday(year, time.March, time.Monday, 1), "Casimir Pulaski Day")
	}
	if state == "TX" && year >= 1874 {
		fixed(time.March, 2, "Texas Independence Day", nil)
	}
	if state == "VT" && year >= 1800 {
		o.Add(nthWeekday(year, time.March, time.Tuesday, 1), "Town Meeting Day")
	}
	if state == "MA" && year >= 1901 {
		d := fixed(time.March, 17, "Evacuation Day", nil)
		if observed && d.IsWeekend() {
			o.AddObserved(onOrAfter(d, time.Monday), "Evacuation Day")
		}
	}
	if state == "PR" {
		fixed(time.March, 22, "Emancipation Day", shiftSunday)
	}
	if state == "HI" && year >= 1949 {
		fixed(time.March, 26, "Prince Jonah Kuhio Kalanianaole Day", shiftNearest)
	}

	if state == "AK" && year >= 1955 {
		o.Add(lastWeekday(year, time.March, time.Monday), "Seward's Day")
	} else if state == "AK" && year >= 1918 {
		fixed(time.March, 30, "Seward's Day", nil)
	}

	if state == "CA" && year >= 1995 {
		fixed(time.March, 31, "César Chávez Day", shiftSunday)
	} else if state == "TX" && year >= 2000 {
		fixed(time.March, 31, "César Chávez Day", nil)
	}
	if state == "VI" {
		fixed(time.March, 31, "Transfer Day", nil)
	}
	if state == "DC" && year >= 2005 {
		fixed(time.April, 16, "Emancipation Day", shiftNearest)
	}

	if oneOf(state, "ME", "MA") && year >= 1969 {
		o.Add(nthWeekday(year, time.April, time.Monday, 3), "Patriots' Day")
	} else if oneOf(state, "ME", "MA") && year >= 1894 {
		fixed(time.April, 19, "Patriots' Day", nil)
	}

	if state == "VI" {
		o.Add(e.AddDays(-3), "Holy Thursday")
	}
	if oneOf(state, "CT", "DE", "GU", "IN", "KY", "LA", "NJ", "NC", "PR", "TN", "TX", "VI") {
		o.Add(e.AddDays(-2), "Good Friday")
	}
	if state == "VI" {
		o.Add(e.AddDays(1), "Easter Monday")
	}

	if oneOf(state, "AL", "GA", "MS", "SC") && year >= 1866 {
		name := "Confederate Memorial Day"
		if state == "GA" && year >= 2016 {
			name = "State Holiday"
		}
		o.Add(nthWeekday(year, time.April, time.Monday, 4), name)
	} else if state == "TX" && year >= 1931 {
		fixed(time.January, 19, "Confederate Memorial Day", nil)
	}

	if state == "TX" && year >= 1875 {
		fixed(time.April, 21, "San Jacinto Day", nil)
	}

	if state == "NE" && year >= 1989 {
		o.Add(lastWeekday(year, time.April, time.Friday), "Arbor Day")
	} else if state == "NE" && year >= 1875 {
		fixed(time.April, 22, "Arbor Day", nil)
	}

	if state == "IN" && ((year >= 2006 && year%2 == 0) || year >= 2015) {
		o.Add(nthWeekday(year, time.May, time.Monday, 1).AddDays(1), "Primary Election Day")
	}

	if state == "MO" && year >= 1949 {
		d := fixed(time.May, 8, "Truman Day", nil)
		if observed {
			shiftNearest(o, d, "Truman Day")
		}
	}

	if state == "AL" && year >= 1890 {
		o.Add(nthWeekday(year, time.June, time.Monday, 1), "Jefferson Davis Birthday")
	}

	if state == "HI" && year >= 1872 {
		d := fixed(time.June, 11, "Kamehameha Day", nil)
		if observed && year >= 2011 {
			shiftNearest(o, d, "Kamehameha Day")
		}
	}

	if state == "TX" && year >= 1980 {
		fixed(time.June, 19, "Emancipation Day In Texas", nil)
	}
	if state == "WV" && year >= 1927 {
		fixed(time.June, 20, "West Virginia Day", shiftNearest)
	}
	if state == "VI" {
		fixed(time.July, 3, "Emancipation Day", nil)
	}
	if state == "GU" && year >= 1945 {
		fixed(time.July, 21, "Liberation Day (Guam)", nil)
	}
	if state == "UT" && year >= 1849 {
		fixed(time.July, 24, "Pioneer Day", shiftNearest)
	}
	if state == "PR" {
		fixed(time.July, 25, "Constitution Day", shiftSunday)
	}
	if state == "RI" && year >= 1948 {
		o.Add(nthWeekday(year, time.August, time.Monday, 2), "Victory Day")
	}
	if state == "HI" && year >= 1959 {
		o.Add(nthWeekday(year, time.August, time.Friday, 3), "Statehood Day")
	}
	if state == "VT" && year >= 1778 {
		fixed(time.August, 16, "Bennington Battle Day", shiftNearest)
	}
	if state == "TX" && year >= 1973 {
		fixed(time.August, 27, "Lyndon Baines Johnson Day", nil)
	}

	if state == "AK" && year >= 1867 {
		fixed(time.October, 18, "Alaska Day", shiftNearest)
	}

	if state == "NV" && year >= 1933 {
		d := ymd(year, time.October, 31)
		if year >= 2000 {
			d = lastWeekday(year, time.October, time.Friday)
		}
		o.Add(d, "Nevada Day")
		if observed {
			shiftNearest(o, d, "Nevada Day")
		}
	}

	if state == "VI" {
		fixed(time.November, 1, "Liberty Day", nil)
	}

	if (oneOf(state, "DE", "HI", "IL", "IN", "LA", "MT", "NH", "NJ", "NY", "WV") && year >= 2008 && year%2 == 0) ||
		(oneOf(state, "IN", "NY") && year >= 2015) {
		o.Add(nthWeekday(year, time.November, time.Monday, 1).AddDays(1), "Election Day")
	}

	if state == "GU" {
		fixed(time.November, 2, "All Souls' Day", nil)
	}
	if state == "PR" {
		fixed(time.November, 19, "Discovery Day", shiftSunday)
	}

	if !thanksgiving.IsZero() {
		if name := dayAfterThanksgiving(year, state); name != "" {
			o.Add(thanksgiving.AddDays(1), name)
		}
	}

	if state == "GA" && year >= 1986 {
		name := "Robert E. Lee's Birthday"
		if year >= 2016 {
			name = "State Holiday"
		}
		o.Add(onOrBefore(ymd(year, time.November, 29), time.Friday), name)
	}

	if state == "GU" {
		fixed(time.December, 8, "Lady of Camarin Day", nil)
	}

	if state == "AS" || (oneOf(state, "KS", "MI", "NC") && year >= 2013) ||
		(state == "TX" && year >= 1981) || (state == "WI" && year >= 2012) {
		d := fixed(time.December, 24, "Christmas Eve", nil)
		if observed {
			switch d.Weekday() {
			case time.Friday:
				o.AddObserved(d.AddDays(-1), "Christmas Eve")
			case time.Saturday, time.Sunday:
				o.AddObserved(onOrBefore(d, time.Friday), "Christmas Eve")
			}
		}
	}

	switch {
	case state == "NC" && year >= 2013:
		d := fixed(time.December, 26, "Day After Christmas", nil)
		if observed {
			switch {
			case d.IsWeekend():
				o.AddObserved(onOrAfter(d, time.Monday), "Day After Christmas")
			case d.Weekday() == time.Monday:
				o.AddObserved(d.AddDays(1), "Day After Christmas")
			}
		}
	case state == "TX" && year >= 1981:
		fixed(time.December, 26, "Day After Christmas", nil)
	case state == "VI":
		fixed(time.December, 26, "Christmas Second Day", nil)
	}

	if (oneOf(state, "KY", "MI") && year >= 2013) || (state == "WI" && year >= 2012) {
		d := fixed(time.December, 31, "New Year's Eve", nil)
		if observed && d.Weekday() == time.Saturday {
			o.AddObserved(d.AddDays(-1), "New Year's Eve")
		}
	}
}

func dayAfterThanksgiving(year int, state string) string {
	switch {
	case oneOf(state, "DE", "NH", "NC", "OK", "WV") && year >= 1975:
		return "Day After Thanksgiving"
	case oneOf(state, "FL", "TX") && year >= 1975:
		return "Friday After Thanksgiving"
	case state == "IN" && year >= 2010:
		return "Lincoln's Birthday"
	case state == "MD" && year >= 2008:
		return "American Indian Heritage Day"
	case state == "NV":
		return "Family Day"
	case state == "NM":
		return "Presidents' Day"
	}
	return ""
}
