package countries

import "github.com/warp/holiday-engine/generic"

// All lists every jurisdiction this package provides, in registration order.
var All = []generic.Jurisdiction{
	Canada,
	Colombia,
	Mexico,
	UnitedStates,
	NewZealand,
	Australia,
	Germany,
	Austria,
	Denmark,
	UnitedKingdom,
	Spain,
	Czechia,
	EuropeanCentralBank,
}

func init() {
	for _, j := range All {
		generic.RegisterJurisdiction(j)
	}
}
