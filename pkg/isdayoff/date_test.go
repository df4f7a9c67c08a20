package isdayoff

import (
	"testing"
	"time"
)

func TestDate_Time(t *testing.T) {
	d := Date{Year: 2024, Month: time.February, Day: 29}

	got := d.Time()
	want := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("Time() = %v, want %v", got, want)
	}
	if DateOf(got) != d {
		t.Errorf("DateOf(Time()) = %v, want %v", DateOf(got), d)
	}
}

func TestDate_Compact(t *testing.T) {
	tests := []struct {
		date Date
		want string
	}{
		{Date{Year: 2024, Month: time.September, Day: 19}, "20240919"},
		{Date{Year: 2023, Month: time.January, Day: 1}, "20230101"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.date.Compact(); got != tt.want {
				t.Errorf("Compact() = %q, want %q", got, tt.want)
			}
		})
	}
}
