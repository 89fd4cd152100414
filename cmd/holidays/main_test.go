package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/holiday-engine/config"
	"github.com/warp/holiday-engine/generic"
	"github.com/warp/holiday-engine/store/sqlite"
)

// run executes the command tree against a temporary config file.
func run(t *testing.T, dir, yml string, args ...string) (string, error) {
	t.Helper()
	cfgPath := filepath.Join(dir, "holidays.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(yml), 0o600))

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--config", cfgPath, "--env-file", filepath.Join(dir, "none.env")))
	err := root.Execute()
	return out.String(), err
}

func baseConfig(dir string) string {
	return "database: " + filepath.Join(dir, "holidays.db") + "\nhours: {on: 7, off: 19}\n"
}

// =============================================================================
// CHECK
// =============================================================================

func TestCheck_Holiday(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, baseConfig(dir), "check", "2022-12-24 10:00", "--country", "CZ")
	assert.ErrorIs(t, err, errInactive)
	assert.Equal(t, "inactive: holiday (Štědrý den)\n", out)
}

func TestCheck_Workday(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, baseConfig(dir), "check", "2022-12-22 10:00", "--country", "CZ")
	require.NoError(t, err)
	assert.Equal(t, "active\n", out)
}

func TestCheck_OutsideHours(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, baseConfig(dir), "check", "2022-12-22 19:00", "--country", "CZ")
	assert.ErrorIs(t, err, errInactive)
	assert.Equal(t, "inactive: outside active hours 07:00-19:00\n", out)
}

func TestCheck_BadInput(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, baseConfig(dir), "check", "someday")
	assert.ErrorIs(t, err, generic.ErrParse)

	_, err = run(t, dir, baseConfig(dir), "check", "--country", "ZZ")
	assert.ErrorIs(t, err, generic.ErrUnknownJurisdiction)
}

func TestEvaluate(t *testing.T) {
	cz, err := generic.NewCountry("CZ")
	require.NoError(t, err)
	hours := config.Hours{On: 7, Off: 19}

	st, err := evaluate(cz, time.Date(2022, time.December, 26, 6, 59, 0, 0, time.Local), hours)
	require.NoError(t, err)
	assert.False(t, st.Active)
	assert.NotNil(t, st.Hours, "hours are checked before the calendar")

	st, err = evaluate(cz, time.Date(2022, time.December, 26, 12, 0, 0, 0, time.Local), hours)
	require.NoError(t, err)
	assert.Equal(t, "2. svátek vánoční", st.Holiday)
}

// =============================================================================
// LIST
// =============================================================================

func TestList_CompositeJSON(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, baseConfig(dir),
		"list", "--year", "2022", "--format", "json", "--country", "CA-QC", "--country", "US")
	require.NoError(t, err)

	var rows []listedHoliday
	require.NoError(t, json.Unmarshal([]byte(out), &rows))

	byDate := make(map[string][]string)
	for _, r := range rows {
		byDate[r.Date] = r.Names
	}
	assert.Equal(t, []string{"Labour Day", "Labor Day"}, byDate["2022-09-05"])
	assert.Equal(t, []string{"St. Jean Baptiste Day"}, byDate["2022-06-24"])
}

func TestList_ObservedOff(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, baseConfig(dir), "list", "-y", "2022", "--country", "US", "--observed=false")
	require.NoError(t, err)
	assert.Contains(t, out, "2022-12-25")
	assert.NotContains(t, out, "2022-12-26")
	assert.NotContains(t, out, "(Observed)")
}

func TestList_IncludesCustomHolidays(t *testing.T) {
	// GIVEN: The configured database holds a recurring company holiday
	// WHEN: Listing a year
	// THEN: The company holiday is part of the output

	dir := t.TempDir()
	store, err := sqlite.New(filepath.Join(dir, "holidays.db"), nil)
	require.NoError(t, err)
	require.NoError(t, store.SaveCustomHoliday(context.Background(), generic.CustomHoliday{
		ID: "founding", Country: "CZ", Date: generic.NewDate(2015, time.June, 10), Name: "Founding Day", Recurring: true,
	}))
	require.NoError(t, store.Close())

	out, err := run(t, dir, baseConfig(dir), "list", "--year", "2022", "--format", "yaml", "--country", "CZ")
	require.NoError(t, err)
	assert.Contains(t, out, "2022-06-10")
	assert.Contains(t, out, "Founding Day")
}

func TestList_UnknownFormat(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, baseConfig(dir), "list", "--format", "xml", "--country", "CZ")
	assert.Error(t, err)
}

// =============================================================================
// JURISDICTIONS / CONFIG
// =============================================================================

func TestJurisdictions(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, baseConfig(dir), "jurisdictions")
	require.NoError(t, err)
	assert.Contains(t, out, "CODE")
	assert.Contains(t, out, "ECB")
	assert.Contains(t, out, "GB")
}

func TestInvalidConfigFails(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "hours: {on: 20, off: 8}\n", "jurisdictions")
	assert.Error(t, err)
}
