package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/holiday-engine/generic"
)

func TestMemory_SaveUpsertsOnCountryDateName(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	d := generic.NewDate(2024, time.May, 3)

	require.NoError(t, m.SaveCustomHoliday(ctx, generic.CustomHoliday{ID: "a", Country: "cz", Date: d, Name: "Offsite"}))
	require.NoError(t, m.SaveCustomHoliday(ctx, generic.CustomHoliday{ID: "b", Country: "CZ", Date: d, Name: "Offsite"}))

	all, err := m.AllCustomHolidays(ctx, "CZ")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "b", all[0].ID)
}

func TestMemory_ListRebasesRecurring(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.SaveCustomHoliday(ctx, generic.CustomHoliday{
		ID: "r", Date: generic.NewDate(2020, time.August, 8), Name: "Founding Day", Recurring: true,
	}))
	require.NoError(t, m.SaveCustomHoliday(ctx, generic.CustomHoliday{
		ID: "o", Country: "DE", Date: generic.NewDate(2021, time.March, 3), Name: "Offsite",
	}))

	got, err := m.ListCustomHolidays(ctx, "de", 2025)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, generic.NewDate(2025, time.August, 8), got[0].Date)

	got, err = m.ListCustomHolidays(ctx, "DE", 2021)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "o", got[0].ID)
	assert.Equal(t, "r", got[1].ID)
}

func TestMemory_Delete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.SaveCustomHoliday(ctx, generic.CustomHoliday{
		ID: "x", Date: generic.NewDate(2024, time.May, 3), Name: "Offsite",
	}))

	require.NoError(t, m.DeleteCustomHoliday(ctx, "x"))
	assert.ErrorIs(t, m.DeleteCustomHoliday(ctx, "x"), generic.ErrNotFound)

	all, err := m.AllCustomHolidays(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, all)
}
