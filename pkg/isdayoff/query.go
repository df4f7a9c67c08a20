package isdayoff

import (
	"strconv"
	"strings"
	"time"
)

const getDataPath = "/getData"

// Query is one of the two request shapes accepted by /getData:
// YearMonthDay or DateRange.
type Query interface {
	appendParams(b *strings.Builder)
}

// YearMonthDay asks for a whole year, a whole month (Month set)
// or a single day (Month and Day set).
// Day without Month is meaningless to the service; Client never builds it.
type YearMonthDay struct {
	Year  int
	Month *time.Month
	Day   *int
}

// DateRange asks for every day from Start to End inclusive.
// Start <= End is left to the service to enforce.
type DateRange struct {
	Start Date
	End   Date
}

func (q YearMonthDay) appendParams(b *strings.Builder) {
	b.WriteString("year=")
	b.WriteString(strconv.Itoa(q.Year))
	if q.Month != nil {
		b.WriteString("&month=")
		b.WriteString(strconv.Itoa(int(*q.Month)))
	}
	if q.Day != nil {
		b.WriteString("&day=")
		b.WriteString(strconv.Itoa(*q.Day))
	}
}

func (q DateRange) appendParams(b *strings.Builder) {
	b.WriteString("date1=")
	b.WriteString(q.Start.Compact())
	b.WriteString("&date2=")
	b.WriteString(q.End.Compact())
}

// Ptr returns a pointer to v, for optional query arguments
func Ptr[T any](v T) *T {
	return &v
}

// buildURL renders the absolute request URL.
// Example: https://isdayoff.ru/api/getData?year=2024&month=9&pre=1
func buildURL(baseURL string, q Query, opts Options) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(baseURL, "/"))
	b.WriteString(getDataPath)
	b.WriteByte('?')
	q.appendParams(&b)

	if opts.Country != "" {
		b.WriteString("&cc=")
		b.WriteString(opts.Country)
	}
	if opts.PreHoliday {
		b.WriteString("&pre=1")
	}
	if opts.SixDayWeek {
		b.WriteString("&sd=1")
	}

	return b.String()
}
