package calendar

import (
	"context"
	"time"

	"github.com/username/isdayoff/pkg/isdayoff"
)

// DayType represents the type of day
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeWeekend
	DayTypeHoliday
	DayTypeShortened
	DayTypeUnknown
)

func (t DayType) String() string {
	switch t {
	case DayTypeWorkday:
		return "workday"
	case DayTypeWeekend:
		return "weekend"
	case DayTypeHoliday:
		return "holiday"
	case DayTypeShortened:
		return "shortened"
	case DayTypeUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// DayInfo represents information about a specific day
type DayInfo struct {
	Date         time.Time
	Status       isdayoff.DayStatus
	Type         DayType
	WorkingHours int
	IsWorkday    bool
}

// PeriodInfo represents calendar information for a run of consecutive days
type PeriodInfo struct {
	Start        time.Time
	End          time.Time
	WorkingHours int // Total working hours in the period
	WorkDays     int // Includes shortened days
	ShortDays    int
	Weekends     int
	Holidays     int
	UnknownDays  int
	Days         []DayInfo
}

// Source is the subset of *isdayoff.Client the calendar needs
type Source interface {
	Date(ctx context.Context, year int, month time.Month, day int) (isdayoff.DayStatus, error)
	Month(ctx context.Context, year *int, month *time.Month) (isdayoff.StatusSequence, error)
	Year(ctx context.Context, year int) (isdayoff.StatusSequence, error)
	Period(ctx context.Context, start, end isdayoff.Date) (isdayoff.StatusSequence, error)
}

var _ Source = (*isdayoff.Client)(nil)

// Calendar interface for checking working days
type Calendar interface {
	// IsWorkday checks if the given date is a working day
	IsWorkday(ctx context.Context, date time.Time) (bool, int, error)

	// GetDayInfo returns detailed info for a specific day
	GetDayInfo(ctx context.Context, date time.Time) (*DayInfo, error)

	// GetMonthInfo returns calendar info for the entire month
	GetMonthInfo(ctx context.Context, year int, month time.Month) (*PeriodInfo, error)

	// GetYearInfo returns calendar info for the entire year
	GetYearInfo(ctx context.Context, year int) (*PeriodInfo, error)

	// GetPeriodInfo returns calendar info from start to end inclusive
	GetPeriodInfo(ctx context.Context, start, end time.Time) (*PeriodInfo, error)
}
