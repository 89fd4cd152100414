package generic

import "strings"

// ObservedMarker tags a holiday shifted off a weekend.
const ObservedMarker = "(Observed)"

// DefaultLabel is used by Update for entries given without a name.
const DefaultLabel = "Holiday"

const labelSeparator = ", "

// mergeLabel combines the label already stored on a date with a new one.
// The new label goes first unless either label contains the other, in which
// case the existing label is kept unchanged. Labels that are accidental
// substrings of each other ("Day" and "Boxing Day") therefore collapse.
func mergeLabel(existing, incoming string) string {
	if strings.Contains(existing, incoming) || strings.Contains(incoming, existing) {
		return existing
	}
	return incoming + labelSeparator + existing
}

// splitLabel is the inverse of the merge join.
func splitLabel(label string) []string {
	var names []string
	for _, name := range strings.Split(label, labelSeparator) {
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

func isObservedLabel(label string) bool {
	return strings.Contains(label, ObservedMarker)
}
