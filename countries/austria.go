package countries

import (
	"time"

	"github.com/warp/holiday-engine/generic"
)

// Austria has one national calendar; the Bundesland is accepted for
// validation only. Holidays are never moved.
var Austria = generic.Jurisdiction{
	Code:               "AT",
	Name:               "Austria",
	Subdivisions:       []string{"B", "K", "N", "O", "S", "ST", "T", "V", "W"},
	DefaultSubdivision: "W",
	Rules:              generic.RuleFunc(austriaRules),
}

func austriaRules(year int, _ generic.Selector, _ bool) []generic.Occurrence {
	var o generic.Occurrences
	e := easter(year)

	o.Add(ymd(year, time.January, 1), "Neujahr")
	o.Add(ymd(year, time.January, 6), "Heilige Drei Könige")
	o.Add(e.AddDays(1), "Ostermontag")
	o.Add(ymd(year, time.May, 1), "Staatsfeiertag")
	o.Add(e.AddDays(39), "Christi Himmelfahrt")
	o.Add(e.AddDays(50), "Pfingstmontag")
	o.Add(e.AddDays(60), "Fronleichnam")
	o.Add(ymd(year, time.August, 15), "Maria Himmelfahrt")
	if year >= 1919 && year <= 1934 {
		o.Add(ymd(year, time.November, 12), "Nationalfeiertag")
	}
	if year >= 1967 {
		o.Add(ymd(year, time.October, 26), "Nationalfeiertag")
	}
	o.Add(ymd(year, time.November, 1), "Allerheiligen")
	o.Add(ymd(year, time.December, 8), "Maria Empfängnis")
	o.Add(ymd(year, time.December, 25), "Christtag")
	o.Add(ymd(year, time.December, 26), "Stefanitag")
	return o
}
