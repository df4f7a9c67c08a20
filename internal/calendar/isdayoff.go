package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/username/isdayoff/pkg/dateutil"
	"github.com/username/isdayoff/pkg/isdayoff"
	"go.uber.org/zap"
)

const (
	fullDayHours  = 8
	shortDayHours = 7
)

// IsDayOffCalendar implements Calendar interface using isdayoff.ru API
type IsDayOffCalendar struct {
	source Source
	logger *zap.Logger
}

// NewIsDayOffCalendar creates a new IsDayOffCalendar instance
func NewIsDayOffCalendar(source Source, logger *zap.Logger) *IsDayOffCalendar {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IsDayOffCalendar{
		source: source,
		logger: logger,
	}
}

// IsWorkday checks if the given date is a working day
func (c *IsDayOffCalendar) IsWorkday(ctx context.Context, date time.Time) (bool, int, error) {
	dayInfo, err := c.GetDayInfo(ctx, date)
	if err != nil {
		return false, 0, err
	}

	return dayInfo.IsWorkday, dayInfo.WorkingHours, nil
}

// GetDayInfo returns detailed info for a specific day
func (c *IsDayOffCalendar) GetDayInfo(ctx context.Context, date time.Time) (*DayInfo, error) {
	status, err := c.source.Date(ctx, date.Year(), date.Month(), date.Day())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch day %s: %w", date.Format("2006-01-02"), err)
	}

	day := classify(dateutil.StartOfDay(date), status)
	return &day, nil
}

// GetMonthInfo returns calendar info for the entire month
func (c *IsDayOffCalendar) GetMonthInfo(ctx context.Context, year int, month time.Month) (*PeriodInfo, error) {
	seq, err := c.source.Month(ctx, &year, &month)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch month %d-%02d: %w", year, int(month), err)
	}

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	if want := dateutil.DaysInMonth(year, month); len(seq) != want {
		return nil, fmt.Errorf("bulk data length mismatch: expected %d, got %d", want, len(seq))
	}

	info := Expand(start, seq)

	c.logger.Debug("Month info fetched from API",
		zap.Int("year", year),
		zap.Int("month", int(month)),
		zap.Int("working_hours", info.WorkingHours))

	return info, nil
}

// GetYearInfo returns calendar info for the entire year
func (c *IsDayOffCalendar) GetYearInfo(ctx context.Context, year int) (*PeriodInfo, error) {
	seq, err := c.source.Year(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch year %d: %w", year, err)
	}

	if want := dateutil.DaysInYear(year); len(seq) != want {
		return nil, fmt.Errorf("bulk data length mismatch: expected %d, got %d", want, len(seq))
	}

	return Expand(time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local), seq), nil
}

// GetPeriodInfo returns calendar info from start to end inclusive
func (c *IsDayOffCalendar) GetPeriodInfo(ctx context.Context, start, end time.Time) (*PeriodInfo, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("period end %s is before start %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}

	seq, err := c.source.Period(ctx, isdayoff.DateOf(start), isdayoff.DateOf(end))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch period %s..%s: %w",
			start.Format("2006-01-02"), end.Format("2006-01-02"), err)
	}

	if want := dateutil.DaysBetween(start, end); len(seq) != want {
		return nil, fmt.Errorf("bulk data length mismatch: expected %d, got %d", want, len(seq))
	}

	return Expand(dateutil.StartOfDay(start), seq), nil
}

// Expand assigns consecutive dates to seq beginning at start and
// accumulates statistics.
// 0 = working day (8 hours)
// 1 = weekend if Saturday/Sunday, holiday otherwise
// 2 = shortened day (7 hours)
// 3 = unknown day
func Expand(start time.Time, seq isdayoff.StatusSequence) *PeriodInfo {
	info := &PeriodInfo{
		Start: start,
		End:   start,
		Days:  make([]DayInfo, 0, len(seq)),
	}

	for i, status := range seq {
		date := start.AddDate(0, 0, i)
		day := classify(date, status)

		switch day.Type {
		case DayTypeWorkday:
			info.WorkDays++
		case DayTypeShortened:
			info.WorkDays++
			info.ShortDays++
		case DayTypeWeekend:
			info.Weekends++
		case DayTypeHoliday:
			info.Holidays++
		default:
			info.UnknownDays++
		}

		info.WorkingHours += day.WorkingHours
		info.End = date
		info.Days = append(info.Days, day)
	}

	return info
}

// SplitByMonth breaks the period into one PeriodInfo per calendar month
func (p *PeriodInfo) SplitByMonth() []*PeriodInfo {
	var months []*PeriodInfo

	i := 0
	for i < len(p.Days) {
		j := i
		for j < len(p.Days) &&
			p.Days[j].Date.Year() == p.Days[i].Date.Year() &&
			p.Days[j].Date.Month() == p.Days[i].Date.Month() {
			j++
		}

		seq := make(isdayoff.StatusSequence, 0, j-i)
		for _, d := range p.Days[i:j] {
			seq = append(seq, d.Status)
		}
		months = append(months, Expand(p.Days[i].Date, seq))
		i = j
	}

	return months
}

func classify(date time.Time, status isdayoff.DayStatus) DayInfo {
	day := DayInfo{Date: date, Status: status}

	switch status {
	case isdayoff.Workday:
		day.Type = DayTypeWorkday
		day.WorkingHours = fullDayHours
		day.IsWorkday = true
	case isdayoff.DayOff:
		if dateutil.IsWeekend(date) {
			day.Type = DayTypeWeekend
		} else {
			day.Type = DayTypeHoliday
		}
	case isdayoff.ShortDay:
		day.Type = DayTypeShortened
		day.WorkingHours = shortDayHours
		day.IsWorkday = true
	default:
		day.Type = DayTypeUnknown
	}

	return day
}
