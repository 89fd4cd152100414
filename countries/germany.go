package countries

import (
	"time"

	"github.com/warp/holiday-engine/generic"
)

// Germany covers reunified Germany only: nothing before 1990, and 1990
// itself only has the holidays after Oct 3. Holidays on a Sunday are not
// moved.
//
// Regional edge cases are simplified: Mariä Himmelfahrt counts for all of
// Bavaria, the Augsburger Friedensfest is left out, and Fronleichnam is not
// counted in Saxony or Thuringia.
var Germany = generic.Jurisdiction{
	Code: "DE",
	Name: "Germany",
	Subdivisions: []string{
		"BW", "BY", "BE", "BB", "HB", "HH", "HE", "MV", "NI", "NW",
		"RP", "SL", "SN", "ST", "SH", "TH",
	},
	DefaultSubdivision: "SH",
	Rules:              generic.RuleFunc(germanyRules),
}

func germanyRules(year int, sel generic.Selector, _ bool) []generic.Occurrence {
	if year <= 1989 {
		return nil
	}
	var o generic.Occurrences
	prov := sel.Subdivision
	e := easter(year)

	if year > 1990 {
		o.Add(ymd(year, time.January, 1), "Neujahr")
		if oneOf(prov, "BW", "BY", "ST") {
			o.Add(ymd(year, time.January, 6), "Heilige Drei Könige")
		}
		o.Add(e.AddDays(-2), "Karfreitag")
		if prov == "BB" {
			o.Add(e, "Ostern")
		}
		o.Add(e.AddDays(1), "Ostermontag")
		o.Add(ymd(year, time.May, 1), "Maifeiertag")
		o.Add(e.AddDays(39), "Christi Himmelfahrt")
		if prov == "BB" {
			o.Add(e.AddDays(49), "Pfingsten")
		}
		o.Add(e.AddDays(50), "Pfingstmontag")
		if oneOf(prov, "BW", "BY", "HE", "NW", "RP", "SL") {
			o.Add(e.AddDays(60), "Fronleichnam")
		}
		if oneOf(prov, "BY", "SL") {
			o.Add(ymd(year, time.August, 15), "Mariä Himmelfahrt")
		}
		o.Add(ymd(year, time.October, 3), "Tag der Deutschen Einheit")
	}

	if oneOf(prov, "BB", "MV", "SN", "ST", "TH") {
		o.Add(ymd(year, time.October, 31), "Reformationstag")
	}
	if oneOf(prov, "BW", "BY", "NW", "RP", "SL") {
		o.Add(ymd(year, time.November, 1), "Allerheiligen")
	}
	if prov == "SN" {
		// Last Wednesday strictly before Nov 23.
		o.Add(onOrBefore(ymd(year, time.November, 22), time.Wednesday), "Buß- und Bettag")
	}

	o.Add(ymd(year, time.December, 25), "Erster Weihnachtstag")
	o.Add(ymd(year, time.December, 26), "Zweiter Weihnachtstag")
	return o
}
