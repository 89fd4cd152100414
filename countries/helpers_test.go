package countries

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEaster(t *testing.T) {
	tests := map[int]string{
		1961: "1961-04-02",
		2000: "2000-04-23",
		2019: "2019-04-21",
		2021: "2021-04-04",
		2022: "2022-04-17",
		2024: "2024-03-31",
		2025: "2025-04-20",
		2038: "2038-04-25",
	}
	for year, want := range tests {
		assert.Equal(t, want, easter(year).String(), "year %d", year)
	}
}

func TestWeekdayArithmetic(t *testing.T) {
	// 2022-05-24 is a Tuesday
	d := ymd(2022, time.May, 24)
	assert.Equal(t, ymd(2022, time.May, 23), onOrBefore(d, time.Monday))
	assert.Equal(t, ymd(2022, time.May, 30), onOrAfter(d, time.Monday))
	assert.Equal(t, d, onOrAfter(d, time.Tuesday))
	assert.Equal(t, d, onOrBefore(d, time.Tuesday))

	assert.Equal(t, ymd(2022, time.February, 21), nthWeekday(2022, time.February, time.Monday, 3))
	assert.Equal(t, ymd(2022, time.May, 30), lastWeekday(2022, time.May, time.Monday))
	assert.Equal(t, ymd(2022, time.December, 30), lastWeekday(2022, time.December, time.Friday))
}

func TestNearestMonday(t *testing.T) {
	assert.Equal(t, ymd(2022, time.March, 14), nearestMonday(ymd(2022, time.March, 17)), "Thursday goes back")
	assert.Equal(t, ymd(2023, time.March, 20), nearestMonday(ymd(2023, time.March, 17)), "Friday goes forward")
	assert.Equal(t, ymd(2025, time.March, 17), nearestMonday(ymd(2025, time.March, 17)), "Monday stays")
}
