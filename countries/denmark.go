package countries

import (
	"time"

	"github.com/warp/holiday-engine/generic"
)

var Denmark = generic.Jurisdiction{
	Code:  "DK",
	Name:  "Denmark",
	Rules: generic.RuleFunc(denmarkRules),
}

func denmarkRules(year int, _ generic.Selector, _ bool) []generic.Occurrence {
	var o generic.Occurrences
	e := easter(year)

	o.Add(ymd(year, time.January, 1), "Nytårsdag")
	o.Add(e.AddDays(-3), "Skærtorsdag")
	o.Add(e.AddDays(-2), "Langfredag")
	o.Add(e, "Påskedag")
	o.Add(e.AddDays(1), "Anden påskedag")
	// Abolished from 2024.
	if year <= 2023 {
		o.Add(e.AddDays(26), "Store bededag")
	}
	o.Add(e.AddDays(39), "Kristi himmelfartsdag")
	o.Add(e.AddDays(49), "Pinsedag")
	o.Add(e.AddDays(50), "Anden pinsedag")
	o.Add(ymd(year, time.December, 25), "Juledag")
	o.Add(ymd(year, time.December, 26), "Anden juledag")
	return o
}
