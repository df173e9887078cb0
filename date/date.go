// Package date provides a calendar date with day granularity.
package date

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Format is the only layout accepted and produced for dates (ISO-8601 calendar date).
const Format = "2006-01-02"

// ErrInvalidDate is returned when a string is not a valid calendar date in Format.
var ErrInvalidDate = errors.New("invalid date")

// Date represents a date with day-level granularity.
//
// Dates are comparable with ==.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(Format) }

// Parse parses a Date from a string in the strict YYYY-MM-DD format.
//
// Surrounding whitespace is ignored. Single digit months or days, and days
// that do not exist in the calendar (like 2023-02-29), are rejected.
func Parse(str string) (Date, error) {
	str = strings.TrimSpace(str)
	on, err := time.Parse(Format, str)
	if err != nil {
		return Date{}, fmt.Errorf("%w %q, want format YYYY-MM-DD: %w", ErrInvalidDate, str, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}
