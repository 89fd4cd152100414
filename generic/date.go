package generic

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"
)

// =============================================================================
// DATE - Civil calendar date (no time of day, no timezone)
// =============================================================================

// Date is a civil calendar date. It is comparable and used as the key of
// every holiday mapping. Construct it with NewDate or DateOf so that the
// fields always describe a valid day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date for year/month/day, normalizing overflow the way
// time.Date does (e.g. Feb 30 becomes Mar 1 or Mar 2).
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the wall-clock date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Comparison
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}
func (d Date) After(other Date) bool         { return other.Before(d) }
func (d Date) Equal(other Date) bool         { return d == other }
func (d Date) BeforeOrEqual(other Date) bool { return !other.Before(d) }
func (d Date) AfterOrEqual(other Date) bool  { return !d.Before(other) }

// Arithmetic
func (d Date) AddDays(n int) Date { return NewDate(d.Year, d.Month, d.Day+n) }

// Properties
func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }
func (d Date) IsWeekend() bool       { wd := d.Weekday(); return wd == time.Saturday || wd == time.Sunday }
func (d Date) IsZero() bool          { return d == Date{} }

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalText encodes the date as YYYY-MM-DD.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a YYYY-MM-DD date.
func (d *Date) UnmarshalText(b []byte) error {
	t, err := time.Parse(dateLayout, string(b))
	if err != nil {
		return &ParseError{Input: string(b), Err: err}
	}
	*d = DateOf(t)
	return nil
}

const dateLayout = "2006-01-02"

// ParseDate parses a strict YYYY-MM-DD date.
func ParseDate(s string) (Date, error) {
	var d Date
	err := d.UnmarshalText([]byte(s))
	return d, err
}

// =============================================================================
// NORMALIZER - Heterogeneous keys to Date
// =============================================================================

// Normalize converts a lookup or insertion key into a Date.
//
// Accepted inputs:
//   - Date
//   - time.Time, *time.Time: the wall date in the value's location
//   - signed/unsigned integers: Unix seconds, UTC date
//   - float32, float64, decimal.Decimal: Unix seconds floored, UTC date
//   - string: best-effort date parsing
//
// Anything else yields a *TypeError; unparseable strings a *ParseError.
// Numbers that are not finite or fall outside years 1 through 9999 yield a
// *RangeError.
func Normalize(key any) (Date, error) {
	switch k := key.(type) {
	case Date:
		return k, nil
	case *Date:
		if k == nil {
			return Date{}, &TypeError{Type: fmt.Sprintf("%T", key)}
		}
		return *k, nil
	case time.Time:
		return DateOf(k), nil
	case *time.Time:
		if k == nil {
			return Date{}, &TypeError{Type: fmt.Sprintf("%T", key)}
		}
		return DateOf(*k), nil
	case decimal.Decimal:
		return dateFromEpoch(k)
	case float64:
		if math.IsNaN(k) || math.IsInf(k, 0) {
			return Date{}, &RangeError{Value: fmt.Sprint(k)}
		}
		return dateFromEpoch(decimal.NewFromFloat(k))
	case float32:
		if math.IsNaN(float64(k)) || math.IsInf(float64(k), 0) {
			return Date{}, &RangeError{Value: fmt.Sprint(k)}
		}
		return dateFromEpoch(decimal.NewFromFloat32(k))
	case string:
		return parseDateString(k)
	}

	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		secs := v.Int()
		if secs < minEpoch || secs > maxEpoch {
			return Date{}, &RangeError{Value: fmt.Sprint(secs)}
		}
		return DateOf(time.Unix(secs, 0).UTC()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		secs := v.Uint()
		if secs > maxEpoch {
			return Date{}, &RangeError{Value: fmt.Sprint(secs)}
		}
		return DateOf(time.Unix(int64(secs), 0).UTC()), nil
	}
	return Date{}, &TypeError{Type: fmt.Sprintf("%T", key)}
}

// Unix seconds of 0001-01-01T00:00:00Z and 9999-12-31T23:59:59Z.
const (
	minEpoch = -62135596800
	maxEpoch = 253402300799
)

var (
	minEpochDecimal = decimal.NewFromInt(minEpoch)
	maxEpochDecimal = decimal.NewFromInt(maxEpoch)
)

// dateFromEpoch floors fractional seconds so that a timestamp a hair before
// midnight never rounds into the next day.
func dateFromEpoch(secs decimal.Decimal) (Date, error) {
	floor := secs.Floor()
	if floor.LessThan(minEpochDecimal) || floor.GreaterThan(maxEpochDecimal) {
		return Date{}, &RangeError{Value: secs.String()}
	}
	return DateOf(time.Unix(floor.IntPart(), 0).UTC()), nil
}

func parseDateString(s string) (Date, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Date{}, &ParseError{Input: s}
	}
	t, err := dateparse.ParseAny(trimmed)
	if err != nil {
		return Date{}, &ParseError{Input: s, Err: err}
	}
	return DateOf(t), nil
}
