package isdayoff

import (
	"fmt"
	"time"

	"github.com/username/isdayoff/pkg/dateutil"
)

// Date is a plain calendar date without time of day or location
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Time returns local midnight of the date
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// Compact renders the date as YYYYMMDD
func (d Date) Compact() string {
	return dateutil.FormatCompact(d.Year, d.Month, d.Day)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Clock supplies the host's current local date for "today" defaults
type Clock interface {
	Today() Date
}

// SystemClock reads the local wall clock
type SystemClock struct{}

// Today returns the current local date
func (SystemClock) Today() Date {
	return DateOf(dateutil.Today())
}

// ClockFunc adapts a function to Clock
type ClockFunc func() Date

// Today calls f
func (f ClockFunc) Today() Date {
	return f()
}
