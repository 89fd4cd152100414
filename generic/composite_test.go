package generic_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/holiday-engine/generic"
)

// =============================================================================
// COMPOSITE MERGE TESTS
// =============================================================================

func TestMerge_FirstDeclaredNameLeads(t *testing.T) {
	// GIVEN: X declares Christmas and Y declares Family Day on Dec 25
	// WHEN: Adding them in either order
	// THEN: Both names survive and the first-declared one comes first

	x := christmasSet("X", "Christmas")
	y := christmasSet("Y", "Family Day")

	label, _, err := x.Add(y).Get("2022-12-25")
	require.NoError(t, err)
	assert.Equal(t, "Christmas, Family Day", label)

	label, _, err = y.Add(x).Get("2022-12-25")
	require.NoError(t, err)
	assert.Equal(t, "Family Day, Christmas", label)

	names, err := x.Add(y).GetList(date(2022, time.December, 25))
	require.NoError(t, err)
	assert.Equal(t, []string{"Christmas", "Family Day"}, names)
}

func TestMerge_SameLabelNotDuplicated(t *testing.T) {
	a := christmasSet("X", "Christmas Day")
	b := christmasSet("Y", "Christmas Day")

	label, _, err := a.Add(b).Get("2022-12-25")
	require.NoError(t, err)
	assert.Equal(t, "Christmas Day", label)
}

func TestMerge_OperandsUnchanged(t *testing.T) {
	a := christmasSet("X", "Christmas", generic.WithYears(2022))
	b := newYearSet(generic.WithYears(2022))
	aBefore, bBefore := a.Clone(), b.Clone()

	c := a.Add(b)
	c.Expand(2024)

	assert.True(t, a.Equal(aBefore))
	assert.True(t, b.Equal(bBefore))
}

func TestMerge_YearsUnionExpandedImmediately(t *testing.T) {
	a := christmasSet("X", "Christmas", generic.WithYears(2022))
	b := newYearSet(generic.WithYears(2023))

	c := generic.Merge(a, b)

	assert.Equal(t, []int{2022, 2023}, c.Years())
	assert.Equal(t, []generic.Holiday{
		{Date: date(2021, time.December, 31), Name: "New Year's Day (Observed)"},
		{Date: date(2022, time.January, 1), Name: "New Year's Day"},
		{Date: date(2022, time.December, 25), Name: "Christmas"},
		{Date: date(2023, time.January, 1), Name: "New Year's Day"},
		{Date: date(2023, time.January, 2), Name: "New Year's Day (Observed)"},
		{Date: date(2023, time.December, 25), Name: "Christmas"},
	}, c.Items())
}

func TestMerge_FlagsAreOred(t *testing.T) {
	a := christmasSet("X", "Christmas", generic.WithAutoExpand(false), generic.WithObserved(false))
	b := newYearSet(generic.WithAutoExpand(true), generic.WithObserved(false))

	c := a.Add(b)
	assert.True(t, c.AutoExpand())
	assert.False(t, c.Observed())

	d := b.Add(newYearSet(generic.WithObserved(true)))
	assert.True(t, d.Observed())
}

func TestMerge_JurisdictionMetadata(t *testing.T) {
	ca := generic.NewWithRules(generic.Selector{Country: "CA", Subdivision: "ON"}, newYearRules())
	caQC := generic.NewWithRules(generic.Selector{Country: "CA", Subdivision: "QC"}, newYearRules())
	caAgain := generic.NewWithRules(generic.Selector{Country: "CA", Subdivision: "ON"}, newYearRules())
	us := generic.NewWithRules(generic.Selector{Country: "US"}, newYearRules())

	c := ca.Add(us)
	assert.Equal(t, []string{"CA", "US"}, c.Countries())
	assert.Equal(t, []string{"ON"}, c.Subdivisions())

	same := ca.Add(caAgain)
	assert.Equal(t, []string{"CA"}, same.Countries())
	assert.Equal(t, []string{"ON"}, same.Subdivisions())

	provinces := ca.Add(caQC)
	assert.Equal(t, []string{"CA"}, provinces.Countries())
	assert.Equal(t, []string{"ON", "QC"}, provinces.Subdivisions())

	assert.True(t, c.IsComposite())
	assert.Equal(t, "CA-ON+US", c.String())
	assert.Equal(t, generic.Selector{}, c.Selector())
}

func TestMerge_FlattensNestedComposites(t *testing.T) {
	x := christmasSet("X", "Christmas")
	y := christmasSet("Y", "Family Day")
	z := christmasSet("Z", "Noel")

	left := x.Add(y).Add(z)
	right := x.Add(y.Add(z))

	assert.Equal(t, "X+Y+Z", left.String())
	assert.Equal(t, "X+Y+Z", right.String())

	label, _, err := left.Get("2022-12-25")
	require.NoError(t, err)
	assert.Equal(t, "Christmas, Family Day, Noel", label)
}

func TestMerge_AssociativeKeySet(t *testing.T) {
	a := newYearSet()
	b := christmasSet("Y", "Family Day")
	c := generic.NewWithRules(generic.Selector{Country: "Z"}, fixedRules(time.July, 1, "Canada Day"))

	left := a.Add(b).Add(c)
	right := a.Add(b.Add(c))

	for _, year := range []int{2021, 2022, 2023} {
		assert.Equal(t, datesOf(left.HolidaysInYear(year)), datesOf(right.HolidaysInYear(year)), "year %d", year)
	}
}

func TestMerge_ReadsLiveObservedFlagOfParts(t *testing.T) {
	// GIVEN: A composite whose New Year part has observed turned off after
	// the merge
	// WHEN: The composite expands a new year
	// THEN: That part contributes no substitute days

	ny := newYearSet()
	c := ny.Add(christmasSet("Y", "Family Day"))

	ny.SetObserved(false)

	ok, err := c.Contains("2023-01-02")
	require.NoError(t, err)
	assert.False(t, ok)

	ny.SetObserved(true)
	ok, err = c.Contains("2023-01-02")
	require.NoError(t, err)
	assert.False(t, ok, "2023 was expanded while the part had observed off")

	ok, err = c.Contains("2028-01-03")
	require.NoError(t, err)
	assert.False(t, ok, "Jan 1 2028 is a Saturday: substitute day is Dec 31 2027")
	ok, err = c.Contains("2027-12-31")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMerge_CompositeObservedToggle(t *testing.T) {
	c := newYearSet().Add(christmasSet("Y", "Family Day"))
	c.Expand(2023)

	c.SetObserved(false)
	ok, err := c.Contains("2023-01-02")
	require.NoError(t, err)
	assert.False(t, ok)

	c.SetObserved(true)
	ok, err = c.Contains("2023-01-02")
	require.NoError(t, err)
	assert.True(t, ok)
}

// =============================================================================
// IDENTITY AND SUM TESTS
// =============================================================================

func TestAdd_NilIsIdentity(t *testing.T) {
	a := newYearSet(generic.WithYears(2022))

	assert.Same(t, a, a.Add(nil))

	var zero *generic.HolidaySet
	assert.Same(t, a, zero.Add(a))
}

func TestMerge_NilOperands(t *testing.T) {
	a := newYearSet(generic.WithYears(2022))

	assert.NotPanics(t, func() {
		assert.Same(t, a, generic.Merge(nil, a))
		assert.Same(t, a, generic.Merge(a, nil))
		assert.Nil(t, generic.Merge(nil, nil))
	})
}

func TestSum(t *testing.T) {
	a := newYearSet(generic.WithYears(2022))
	b := christmasSet("Y", "Family Day")

	got, err := generic.Sum(a, 0)
	require.NoError(t, err)
	assert.Same(t, a, got)

	got, err = generic.Sum(0, nil, a, b)
	require.NoError(t, err)
	assert.Equal(t, "XX+Y", got.String())

	got, err = generic.Sum()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSum_RejectsNonHolidaySets(t *testing.T) {
	a := newYearSet()

	for _, v := range []any{"CA", 1, 3.5, struct{}{}} {
		_, err := generic.Sum(a, v)
		var compErr *generic.CompositionError
		require.ErrorAs(t, err, &compErr)
		assert.ErrorIs(t, err, generic.ErrComposition)
		assert.True(t, generic.IsClientError(err))
	}
}

func datesOf(hs []generic.Holiday) []generic.Date {
	result := make([]generic.Date, len(hs))
	for i, h := range hs {
		result[i] = h.Date
	}
	return result
}
