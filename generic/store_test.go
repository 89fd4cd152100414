package generic_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/holiday-engine/generic"
	"github.com/warp/holiday-engine/generic/store"
)

// =============================================================================
// CUSTOM HOLIDAY TESTS
// =============================================================================

func TestCustomHoliday_In(t *testing.T) {
	once := generic.CustomHoliday{Date: date(2024, time.May, 3), Name: "Offsite"}
	yearly := generic.CustomHoliday{Date: date(2020, time.May, 3), Name: "Founding Day", Recurring: true}

	_, ok := once.In(2025)
	assert.False(t, ok)
	d, ok := once.In(2024)
	assert.True(t, ok)
	assert.Equal(t, date(2024, time.May, 3), d)

	d, ok = yearly.In(2031)
	assert.True(t, ok)
	assert.Equal(t, date(2031, time.May, 3), d)
}

func TestCustomHoliday_LeapDayOnlyInLeapYears(t *testing.T) {
	leap := generic.CustomHoliday{Date: date(2020, time.February, 29), Name: "Leap Day", Recurring: true}

	_, ok := leap.In(2023)
	assert.False(t, ok, "no Mar 1 substitute in a common year")

	d, ok := leap.In(2024)
	assert.True(t, ok)
	assert.Equal(t, date(2024, time.February, 29), d)
}

func TestMemoryStore_SkipsLeapDayInCommonYears(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()
	require.NoError(t, m.SaveCustomHoliday(ctx, generic.CustomHoliday{
		ID: "leap", Date: date(2020, time.February, 29), Name: "Leap Day", Recurring: true,
	}))

	got, err := m.ListCustomHolidays(ctx, "", 2023)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = m.ListCustomHolidays(ctx, "", 2028)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, date(2028, time.February, 29), got[0].Date)
}

func TestLoadCustomHolidays_MergesWithStatutoryLabels(t *testing.T) {
	// GIVEN: A company closure on a statutory holiday and a global entry
	// WHEN: Loading custom holidays into a set
	// THEN: Labels merge under the usual rule and foreign entries are skipped

	ctx := context.Background()
	s := store.NewMemory()
	require.NoError(t, s.SaveCustomHoliday(ctx, generic.CustomHoliday{
		ID: "c1", Country: "XX", Date: date(2022, time.January, 1), Name: "Company Closure",
	}))
	require.NoError(t, s.SaveCustomHoliday(ctx, generic.CustomHoliday{
		ID: "c2", Date: date(2019, time.August, 8), Name: "Founding Day", Recurring: true,
	}))
	require.NoError(t, s.SaveCustomHoliday(ctx, generic.CustomHoliday{
		ID: "c3", Country: "YY", Date: date(2022, time.June, 6), Name: "Elsewhere",
	}))

	h := newYearSet(generic.WithYears(2022))
	require.NoError(t, generic.LoadCustomHolidays(ctx, s, h, 2022))

	label, _, err := h.Get("2022-01-01")
	require.NoError(t, err)
	assert.Equal(t, "Company Closure, New Year's Day", label)

	label, _, err = h.Get("2022-08-08")
	require.NoError(t, err)
	assert.Equal(t, "Founding Day", label)

	ok, err := h.Contains("2022-06-06")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadCustomHolidays_CompositeDedupsGlobalEntries(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	require.NoError(t, s.SaveCustomHoliday(ctx, generic.CustomHoliday{
		ID: "g1", Date: date(2022, time.August, 8), Name: "Founding Day",
	}))

	h := newYearSet().Add(christmasSet("YY", "Christmas"))
	require.NoError(t, generic.LoadCustomHolidays(ctx, s, h, 2022))

	names, err := h.GetList("2022-08-08")
	require.NoError(t, err)
	assert.Equal(t, []string{"Founding Day"}, names)
}
