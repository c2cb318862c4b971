package wealth

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2024-01-15", want: NewDate(2024, time.January, 15)},
		{in: "2024-1-5", want: NewDate(2024, time.January, 5)},
		{in: "2024-01-15T10:30:00Z", want: NewDate(2024, time.January, 15)},
		{in: "2024-02-30", wantErr: true},
		{in: "not a date", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) = %v, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) returned %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDate_Add(t *testing.T) {
	d := day("2024-01-31")
	if got := d.Add(1); got != day("2024-02-01") {
		t.Errorf("Add(1) = %v, want 2024-02-01", got)
	}
	if got := d.Add(-31); got != day("2023-12-31") {
		t.Errorf("Add(-31) = %v, want 2023-12-31", got)
	}
}

func TestDate_DaysSince(t *testing.T) {
	if got := day("2024-01-10").DaysSince(day("2024-01-01")); got != 9 {
		t.Errorf("DaysSince = %d, want 9", got)
	}
	if got := day("2024-01-01").DaysSince(day("2024-01-10")); got != -9 {
		t.Errorf("DaysSince = %d, want -9", got)
	}
}

func TestDate_StartOf(t *testing.T) {
	d := day("2024-03-15") // a Friday
	if got := d.StartOf(Daily); got != d {
		t.Errorf("StartOf(Daily) = %v, want %v", got, d)
	}
	if got := d.StartOf(Weekly); got != day("2024-03-11") {
		t.Errorf("StartOf(Weekly) = %v, want 2024-03-11", got)
	}
	if got := d.StartOf(Monthly); got != day("2024-03-01") {
		t.Errorf("StartOf(Monthly) = %v, want 2024-03-01", got)
	}
	if got := d.EndOf(Monthly); got != day("2024-03-31") {
		t.Errorf("EndOf(Monthly) = %v, want 2024-03-31", got)
	}
}

func TestFrequency_Days(t *testing.T) {
	if got := WeeklyFrequency.Days(); got != 7 {
		t.Errorf("Weekly frequency: %d days, want 7", got)
	}
	if got := MonthlyFrequency.Days(); got != 30 {
		t.Errorf("Monthly frequency: %d days, want 30", got)
	}
	if _, err := ParseFrequency("fortnightly"); err == nil {
		t.Error("ParseFrequency accepted an unknown frequency")
	}
}
