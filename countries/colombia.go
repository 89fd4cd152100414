package countries

import (
	"time"

	"github.com/warp/holiday-engine/generic"
)

// Colombia has no subdivisions. With observed days on, the Emiliani law
// moves most holidays to the following Monday and the fixed weekend
// holidays are not given at all.
var Colombia = generic.Jurisdiction{
	Code:  "CO",
	Name:  "Colombia",
	Rules: generic.RuleFunc(colombiaRules),
}

func colombiaRules(year int, _ generic.Selector, observed bool) []generic.Occurrence {
	var o generic.Occurrences

	// Fixed days; the bool marks those dropped on a weekend.
	fixed := []struct {
		month       time.Month
		day         int
		name        string
		weekdayOnly bool
	}{
		{time.January, 1, "Año Nuevo [New Year's Day]", true},
		{time.May, 1, "Día del Trabajo [Labour Day]", false},
		{time.July, 20, "Día de la Independencia [Independence Day]", true},
		{time.August, 7, "Batalla de Boyacá [Battle of Boyacá]", false},
		{time.December, 8, "La Inmaculada Concepción [Immaculate Conception]", true},
		{time.December, 25, "Navidad [Christmas]", false},
	}
	for _, f := range fixed {
		d := ymd(year, f.month, f.day)
		if observed && f.weekdayOnly && d.IsWeekend() {
			continue
		}
		o.Add(d, f.name)
	}

	emiliani := []struct {
		date generic.Date
		name string
	}{
		{ymd(year, time.January, 6), "Día de los Reyes Magos [Epiphany]"},
		{ymd(year, time.March, 19), "Día de San José [Saint Joseph's Day]"},
		{ymd(year, time.June, 29), "San Pedro y San Pablo [Saint Peter and Saint Paul]"},
		{ymd(year, time.August, 15), "La Asunción [Assumption of Mary]"},
		{ymd(year, time.October, 12), "Descubrimiento de América [Discovery of America]"},
		{ymd(year, time.November, 1), "Día de Todos los Santos [All Saints' Day]"},
		{ymd(year, time.November, 11), "Independencia de Cartagena [Independence of Cartagena]"},
		{easter(year).AddDays(39), "Ascensión del Señor [Ascension of Jesus]"},
		{easter(year).AddDays(60), "Corpus Christi [Corpus Christi]"},
		{easter(year).AddDays(68), "Sagrado Corazón [Sacred Heart]"},
	}
	for _, e := range emiliani {
		if !observed || e.date.Weekday() == time.Monday {
			o.Add(e.date, e.name)
			continue
		}
		o.AddObserved(onOrAfter(e.date, time.Monday), e.name)
	}

	o.Add(easter(year).AddDays(-3), "Jueves Santo [Maundy Thursday]")
	o.Add(easter(year).AddDays(-2), "Viernes Santo [Good Friday]")

	return o
}
