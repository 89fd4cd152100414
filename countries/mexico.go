package countries

import (
	"time"

	"github.com/warp/holiday-engine/generic"
)

// Mexico has no subdivisions. Weekend holidays are observed on the
// nearest weekday.
var Mexico = generic.Jurisdiction{
	Code:  "MX",
	Name:  "Mexico",
	Rules: generic.RuleFunc(mexicoRules),
}

func mexicoRules(year int, _ generic.Selector, observed bool) []generic.Occurrence {
	var o generic.Occurrences

	addShifted := func(d generic.Date, name string) {
		o.Add(d, name)
		if observed {
			shiftNearest(&o, d, name)
		}
	}

	newYearName := "Año Nuevo [New Year's Day]"
	addShifted(ymd(year, time.January, 1), newYearName)
	// Next year's Saturday New Year is observed on this Dec 31.
	if observed && ymd(year, time.December, 31).Weekday() == time.Friday {
		o.AddObserved(ymd(year, time.December, 31), newYearName)
	}

	switch {
	case year >= 2007:
		o.Add(nthWeekday(year, time.February, time.Monday, 1), "Día de la Constitución [Constitution Day]")
	case year >= 1917:
		o.Add(ymd(year, time.February, 5), "Día de la Constitución [Constitution Day]")
	}

	benito := "Natalicio de Benito Juárez [Benito Juárez's birthday]"
	switch {
	case year >= 2007:
		o.Add(nthWeekday(year, time.March, time.Monday, 3), benito)
	case year >= 1917:
		o.Add(ymd(year, time.March, 21), benito)
	}

	if year >= 1923 {
		addShifted(ymd(year, time.May, 1), "Día del Trabajo [Labour Day]")
	}

	addShifted(ymd(year, time.September, 16), "Día de la Independencia [Independence Day]")

	revolution := "Día de la Revolución [Revolution Day]"
	switch {
	case year >= 2007:
		o.Add(nthWeekday(year, time.November, time.Monday, 3), revolution)
	case year >= 1917:
		o.Add(ymd(year, time.November, 20), revolution)
	}

	// Every six years; moved from Dec 1 to Oct 1 with the 2024 transition.
	if (year-2018)%6 == 0 {
		inauguration := "Transmisión del Poder Ejecutivo Federal [Change of Federal Government]"
		if year >= 2024 {
			addShifted(ymd(year, time.October, 1), inauguration)
		} else {
			addShifted(ymd(year, time.December, 1), inauguration)
		}
	}

	addShifted(ymd(year, time.December, 25), "Navidad [Christmas]")

	return o
}
