package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/warp/holiday-engine/countries"
	"github.com/warp/holiday-engine/generic"
)

func TestBuild_SingleJurisdiction(t *testing.T) {
	f := NewCalendarFactory(nil)

	set, err := f.Build(CalendarConfig{
		Jurisdictions: []JurisdictionConfig{{Country: "CZ"}},
		Years:         []int{2022},
	})
	require.NoError(t, err)

	assert.False(t, set.IsComposite())
	assert.Equal(t, []int{2022}, set.Years())
	assert.Equal(t, 13, set.Len())
}

func TestBuild_CompositeInDeclaredOrder(t *testing.T) {
	// GIVEN: CA listed before US
	// WHEN: Building the calendar
	// THEN: Shared dates lead with the Canadian name

	f := NewCalendarFactory(nil)
	set, err := f.Build(CalendarConfig{
		Jurisdictions: JurisdictionsFromCodes([]string{"CA-QC", "US"}),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"CA", "US"}, set.Countries())
	assert.Equal(t, []string{"QC"}, set.Subdivisions())

	label, _, err := set.Get("2022-09-05")
	require.NoError(t, err)
	assert.Equal(t, "Labour Day, Labor Day", label)
}

func TestBuild_Flags(t *testing.T) {
	off := false
	f := NewCalendarFactory(nil)

	set, err := f.Build(CalendarConfig{
		Jurisdictions: []JurisdictionConfig{{Country: "UK"}},
		Observed:      &off,
		AutoExpand:    &off,
	})
	require.NoError(t, err)

	assert.False(t, set.Observed())
	assert.False(t, set.AutoExpand())
	ok, err := set.Contains("2022-01-01")
	require.NoError(t, err)
	assert.False(t, ok, "nothing expanded")
}

func TestBuild_Errors(t *testing.T) {
	f := NewCalendarFactory(nil)

	_, err := f.Build(CalendarConfig{})
	assert.ErrorIs(t, err, ErrNoJurisdictions)

	_, err = f.Build(CalendarConfig{Jurisdictions: []JurisdictionConfig{{Country: "ZZ"}}})
	assert.ErrorIs(t, err, generic.ErrUnknownJurisdiction)

	_, err = f.Build(CalendarConfig{Jurisdictions: []JurisdictionConfig{{Country: "CA", Subdivision: "XX"}}})
	assert.ErrorIs(t, err, generic.ErrUnknownSubdivision)

	_, err = f.Build(CalendarConfig{Jurisdictions: []JurisdictionConfig{{Country: "CZ"}}, Years: []int{0}})
	assert.Error(t, err)
}

func TestParseCalendarYAML(t *testing.T) {
	data := []byte(`
jurisdictions:
  - country: de
    subdivision: by
  - country: AT
years: [2023]
observed: false
`)
	f := NewCalendarFactory(nil)
	set, err := f.ParseCalendarYAML(data)
	require.NoError(t, err)

	assert.Equal(t, "DE-BY+AT-W", set.String())
	assert.Equal(t, []int{2023}, set.Years())
	assert.False(t, set.Observed())

	names, err := set.GetList("2023-08-15")
	require.NoError(t, err)
	assert.Equal(t, []string{"Mariä Himmelfahrt", "Maria Himmelfahrt"}, names)
}

func TestParseCalendar_JSON(t *testing.T) {
	f := NewCalendarFactory(nil)
	set, err := f.ParseCalendar(`{"jurisdictions":[{"country":"ECB"}],"years":[2022]}`)
	require.NoError(t, err)
	assert.Equal(t, 6, set.Len())

	_, err = f.ParseCalendar(`{"jurisdictions":`)
	assert.Error(t, err)
}

func TestToYAML_RoundTrip(t *testing.T) {
	on := true
	cfg := CalendarConfig{
		Jurisdictions: []JurisdictionConfig{{Country: "CA", Subdivision: "ON"}},
		Years:         []int{2024},
		Observed:      &on,
	}
	data, err := ToYAML(cfg)
	require.NoError(t, err)

	parsed, err := ParseYAML(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, parsed)
}
