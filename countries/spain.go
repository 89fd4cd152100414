package countries

import (
	"time"

	"github.com/warp/holiday-engine/generic"
)

// Spain covers the national holidays plus, when a community is selected,
// its regional ones. There is no default community.
var Spain = generic.Jurisdiction{
	Code: "ES",
	Name: "Spain",
	Subdivisions: []string{
		"AND", "ARG", "AST", "CAN", "CAM", "CAL", "CAT", "CVA",
		"EXT", "GAL", "IBA", "ICA", "MAD", "MUR", "NAV", "PVA", "RIO",
	},
	Rules: generic.RuleFunc(spainRules),
}

type regionalDay struct {
	month time.Month
	day   int
	name  string
}

var spainCommunityDays = map[string]regionalDay{
	"AND": {time.February, 28, "Día de Andalucía"},
	"ARG": {time.April, 23, "Día de San Jorge"},
	"AST": {time.March, 8, "Día de Asturias"},
	"CAN": {time.February, 28, "Día de la Montaña"},
	"CAM": {time.February, 28, "Día de Castilla - La Mancha"},
	"CAL": {time.April, 23, "Día de Castilla y León"},
	"CAT": {time.September, 11, "Día Nacional de Catalunya"},
	"CVA": {time.October, 9, "Día de la Comunidad Valenciana"},
	"EXT": {time.September, 8, "Día de Extremadura"},
	"GAL": {time.July, 25, "Día Nacional de Galicia"},
	"IBA": {time.March, 1, "Día de las Islas Baleares"},
	"ICA": {time.May, 30, "Día de Canarias"},
	"MAD": {time.May, 2, "Día de la Comunidad de Madrid"},
	"MUR": {time.June, 9, "Día de la Región de Murcia"},
	"NAV": {time.September, 27, "Día de Navarra"},
	"PVA": {time.October, 25, "Día del País Vasco"},
	"RIO": {time.June, 9, "Día de La Rioja"},
}

func spainRules(year int, sel generic.Selector, _ bool) []generic.Occurrence {
	var o generic.Occurrences
	prov := sel.Subdivision
	e := easter(year)

	o.Add(ymd(year, time.January, 1), "Año Nuevo")
	o.Add(ymd(year, time.January, 6), "Epifanía del Señor")
	if oneOf(prov, "CVA", "MUR", "MAD", "NAV", "PVA") {
		o.Add(ymd(year, time.March, 19), "San José")
	}
	if prov != "" && prov != "CAT" {
		o.Add(e.AddDays(-3), "Jueves Santo")
	}
	o.Add(e.AddDays(-2), "Viernes Santo")
	if oneOf(prov, "CAT", "PVA", "NAV", "CVA", "IBA") {
		o.Add(e.AddDays(1), "Lunes de Pascua")
	}
	o.Add(ymd(year, time.May, 1), "Día del Trabajador")
	if oneOf(prov, "CAT", "GAL") {
		o.Add(ymd(year, time.June, 24), "San Juan")
	}
	o.Add(ymd(year, time.August, 15), "Asunción de la Virgen")
	o.Add(ymd(year, time.November, 1), "Todos los Santos")
	o.Add(ymd(year, time.December, 6), "Día de la Constitución Española")
	o.Add(ymd(year, time.December, 8), "La Inmaculada Concepción")
	o.Add(ymd(year, time.December, 25), "Navidad")
	if oneOf(prov, "CAT", "IBA") {
		o.Add(ymd(year, time.December, 26), "San Esteban")
	}

	if r, ok := spainCommunityDays[prov]; ok {
		o.Add(ymd(year, r.month, r.day), r.name)
	}
	return o
}
