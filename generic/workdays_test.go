package generic_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/holiday-engine/generic"
)

func TestPeriod(t *testing.T) {
	p := generic.Period{Start: date(2022, time.February, 27), End: date(2022, time.March, 2)}

	assert.Len(t, p.Days(), 4)
	assert.True(t, p.Contains(date(2022, time.February, 28)))
	assert.False(t, p.Contains(date(2022, time.March, 3)))
	assert.Equal(t, "[2022-02-27, 2022-03-02]", p.String())

	reversed := generic.Period{Start: p.End, End: p.Start}
	assert.Empty(t, reversed.Days())

	assert.Len(t, generic.YearPeriod(2024).Days(), 366)
}

func TestWorkdays_ObservedHolidayExcluded(t *testing.T) {
	// GIVEN: New Year 2022 on a Saturday, observed on Friday Dec 31 2021
	// WHEN: Counting working days over the turn of the year
	// THEN: Weekends and the observed Friday are excluded

	h := newYearSet()
	p := generic.Period{Start: date(2021, time.December, 27), End: date(2022, time.January, 7)}

	days := h.Workdays(p)
	assert.Len(t, days, 9)
	assert.NotContains(t, days, date(2021, time.December, 31))
	assert.Equal(t, 9, h.CountWorkdays(p))
}

func TestIsWorkday(t *testing.T) {
	h := newYearSet()

	ok, err := h.IsWorkday("2022-01-03")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.IsWorkday("2021-12-31")
	require.NoError(t, err)
	assert.False(t, ok, "observed holiday")

	ok, err = h.IsWorkday(date(2022, time.January, 8))
	require.NoError(t, err)
	assert.False(t, ok, "Saturday")

	_, err = h.IsWorkday("not a date")
	assert.ErrorIs(t, err, generic.ErrParse)
}

func TestNextWorkday(t *testing.T) {
	h := newYearSet()

	next, ok, err := h.NextWorkday("2021-12-30")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, date(2022, time.January, 3), next)
}

func TestNextWorkday_GivesUp(t *testing.T) {
	everyDay := generic.RuleFunc(func(year int, _ generic.Selector, _ bool) []generic.Occurrence {
		var o generic.Occurrences
		for _, d := range generic.YearPeriod(year).Days() {
			o.Add(d, "Holiday")
		}
		return o
	})
	h := generic.NewWithRules(generic.Selector{Country: "XX"}, everyDay)

	_, ok, err := h.NextWorkday("2022-06-01")
	require.NoError(t, err)
	assert.False(t, ok)
}
