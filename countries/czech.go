package countries

import (
	"time"

	"github.com/warp/holiday-engine/generic"
)

var Czechia = generic.Jurisdiction{
	Code:  "CZ",
	Name:  "Czechia",
	Rules: generic.RuleFunc(czechRules),
}

func czechRules(year int, _ generic.Selector, _ bool) []generic.Occurrence {
	var o generic.Occurrences
	e := easter(year)

	if year >= 2000 {
		o.Add(ymd(year, time.January, 1), "Den obnovy samostatného českého státu")
	} else {
		o.Add(ymd(year, time.January, 1), "Nový rok")
	}
	o.Add(e.AddDays(-2), "Velký pátek")
	o.Add(e.AddDays(1), "Velikonoční pondělí")

	if year >= 1951 {
		o.Add(ymd(year, time.May, 1), "Svátek práce")
	}
	if year >= 1992 {
		o.Add(ymd(year, time.May, 8), "Den vítězství")
	} else if year >= 1947 {
		o.Add(ymd(year, time.May, 9), "Den vítězství nad hitlerovským fašismem")
	}
	if year >= 1951 {
		o.Add(ymd(year, time.July, 5), "Den slovanských věrozvěstů Cyrila a Metoděje")
		o.Add(ymd(year, time.July, 6), "Den upálení mistra Jana Husa")
	}
	if year >= 2000 {
		o.Add(ymd(year, time.September, 28), "Den české státnosti")
	}
	if year >= 1951 {
		o.Add(ymd(year, time.October, 28), "Den vzniku samostatného československého státu")
	}
	if year >= 1990 {
		o.Add(ymd(year, time.November, 17), "Den boje za svobodu a demokracii")
		o.Add(ymd(year, time.December, 24), "Štědrý den")
	}
	if year >= 1951 {
		o.Add(ymd(year, time.December, 25), "1. svátek vánoční")
		o.Add(ymd(year, time.December, 26), "2. svátek vánoční")
	}
	return o
}
