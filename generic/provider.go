package generic

// =============================================================================
// RULE PROVIDER - Per-jurisdiction holiday rules
// =============================================================================

// Selector identifies a jurisdiction: a country and an optional subdivision.
type Selector struct {
	Country     string
	Subdivision string
}

func (s Selector) String() string {
	if s.Subdivision == "" {
		return s.Country
	}
	return s.Country + "-" + s.Subdivision
}

// Occurrence is a single holiday emitted by a rule provider.
type Occurrence struct {
	Date Date
	Name string
}

// RuleProvider computes the holidays of one jurisdiction for one year.
//
// Populate must not keep state between calls: a HolidaySet may ask for the
// same year again after an observed-flag rebuild. It may return nothing, and
// it may return dates outside year (an observed New Year's Day that falls on
// the previous Dec 31). When observed is false it must not emit shifted
// "(Observed)" entries.
type RuleProvider interface {
	Populate(year int, sel Selector, observed bool) []Occurrence
}

// RuleFunc adapts a plain function to RuleProvider.
type RuleFunc func(year int, sel Selector, observed bool) []Occurrence

func (f RuleFunc) Populate(year int, sel Selector, observed bool) []Occurrence {
	return f(year, sel, observed)
}

// Occurrences collects provider output in emission order.
type Occurrences []Occurrence

// Add appends a holiday.
func (o *Occurrences) Add(d Date, name string) {
	*o = append(*o, Occurrence{Date: d, Name: name})
}

// AddObserved appends a shifted holiday labelled "<name> (Observed)".
func (o *Occurrences) AddObserved(d Date, name string) {
	o.Add(d, name+" "+ObservedMarker)
}
