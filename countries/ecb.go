package countries

import (
	"time"

	"github.com/warp/holiday-engine/generic"
)

// EuropeanCentralBank lists the TARGET2 closing days.
var EuropeanCentralBank = generic.Jurisdiction{
	Code:    "ECB",
	Name:    "European Central Bank (TARGET2)",
	Aliases: []string{"TAR", "EU"},
	Rules:   generic.RuleFunc(ecbRules),
}

func ecbRules(year int, _ generic.Selector, _ bool) []generic.Occurrence {
	var o generic.Occurrences
	e := easter(year)

	o.Add(ymd(year, time.January, 1), "New Year's Day")
	o.Add(e.AddDays(-2), "Good Friday")
	o.Add(e.AddDays(1), "Easter Monday")
	o.Add(ymd(year, time.May, 1), "1 May (Labour Day)")
	o.Add(ymd(year, time.December, 25), "Christmas Day")
	o.Add(ymd(year, time.December, 26), "26 December")
	return o
}
