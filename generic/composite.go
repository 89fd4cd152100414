package generic

import (
	"fmt"
	"slices"
)

// =============================================================================
// COMPOSITE MERGE ENGINE
// =============================================================================

// Merge combines two holiday sets into a new composite set. Neither operand
// is modified.
//
// The composite keeps references to the leaf sets of both operands (a
// composite operand contributes its own leaves, flattened, in order). When
// it expands a year it asks each leaf's rule provider in reverse order and
// writes the results into its own mapping, so the first-declared
// jurisdiction's name leads any merged label. Each leaf contributes
// substitute days only while both its own observed flag and the
// composite's are on; the leaf's flag is read at expansion time.
//
// Years are the union of both operands' expanded years and are expanded
// immediately. AutoExpand and Observed are on if either operand has them on.
//
// A nil operand is the identity: Merge(a, nil) returns a itself and
// Merge(nil, b) returns b. Merge(nil, nil) is nil.
func Merge(a, b *HolidaySet) *HolidaySet {
	switch {
	case b == nil:
		return a
	case a == nil:
		return b
	}
	c := &HolidaySet{
		entries:      make(map[Date]string),
		years:        newYearTracker(),
		autoExpand:   a.autoExpand || b.autoExpand,
		observed:     a.observed || b.observed,
		parts:        append(slices.Clone(a.leaves()), b.leaves()...),
		countries:    mergeCodes(a.countries, b.countries),
		subdivisions: mergeCodes(a.subdivisions, b.subdivisions),
		logger:       a.logger,
	}
	for _, year := range a.years.union(b.years).sorted() {
		c.Expand(year)
	}
	return c
}

func (h *HolidaySet) leaves() []*HolidaySet {
	if h.IsComposite() {
		return h.parts
	}
	return []*HolidaySet{h}
}

// mergeCodes keeps a single copy when both sides list exactly the same
// codes and concatenates otherwise.
func mergeCodes(a, b []string) []string {
	switch {
	case len(a) == 0:
		return slices.Clone(b)
	case len(b) == 0, slices.Equal(a, b):
		return slices.Clone(a)
	}
	return append(slices.Clone(a), b...)
}

// Add returns the composite of h and other. A nil operand is the additive
// identity: h.Add(nil) returns h itself, and a nil receiver returns other,
// so a nil *HolidaySet can seed an accumulation.
func (h *HolidaySet) Add(other *HolidaySet) *HolidaySet {
	return Merge(h, other)
}

// Sum adds values left to right. nil, the integer 0 and a nil *HolidaySet
// are identities; any other non-*HolidaySet value fails with a
// *CompositionError. Sum of no sets returns nil.
func Sum(values ...any) (*HolidaySet, error) {
	var acc *HolidaySet
	for _, v := range values {
		switch x := v.(type) {
		case nil:
		case *HolidaySet:
			acc = acc.Add(x)
		case int:
			if x != 0 {
				return nil, &CompositionError{Type: fmt.Sprintf("%T", v)}
			}
		default:
			return nil, &CompositionError{Type: fmt.Sprintf("%T", v)}
		}
	}
	return acc, nil
}
