package payweek_test

import (
	"testing"
	"time"

	"payroll-tracker/pkg/payweek"
)

func TestBounds(t *testing.T) {
	tests := []struct {
		name       string
		in         time.Time
		wantMonday time.Time
		wantSunday time.Time
	}{
		{
			name:       "midweek wednesday",
			in:         time.Date(2024, 1, 10, 14, 30, 0, 0, time.UTC),
			wantMonday: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
			wantSunday: time.Date(2024, 1, 14, 23, 59, 59, 0, time.UTC),
		},
		{
			name:       "monday maps to itself",
			in:         time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
			wantMonday: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
			wantSunday: time.Date(2024, 1, 14, 23, 59, 59, 0, time.UTC),
		},
		{
			name:       "sunday belongs to the preceding monday",
			in:         time.Date(2024, 1, 14, 9, 0, 0, 0, time.UTC),
			wantMonday: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
			wantSunday: time.Date(2024, 1, 14, 23, 59, 59, 0, time.UTC),
		},
		{
			name:       "week spanning a month boundary",
			in:         time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC),
			wantMonday: time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC),
			wantSunday: time.Date(2024, 2, 4, 23, 59, 59, 0, time.UTC),
		},
		{
			name:       "week spanning a year boundary",
			in:         time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC),
			wantMonday: time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC),
			wantSunday: time.Date(2025, 1, 5, 23, 59, 59, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monday, sunday := payweek.Bounds(tt.in)
			if !monday.Equal(tt.wantMonday) {
				t.Errorf("Bounds monday = %v, want %v", monday, tt.wantMonday)
			}
			if !sunday.Equal(tt.wantSunday) {
				t.Errorf("Bounds sunday = %v, want %v", sunday, tt.wantSunday)
			}
		})
	}
}

func TestStartAndEndOfDay(t *testing.T) {
	in := time.Date(2024, 3, 15, 17, 45, 12, 0, time.UTC)

	start := payweek.StartOfDay(in)
	if want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Errorf("StartOfDay = %v, want %v", start, want)
	}

	end := payweek.EndOfDay(in)
	if want := time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC); !end.Equal(want) {
		t.Errorf("EndOfDay = %v, want %v", end, want)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 3, 15, 0, 0, 1, 0, time.UTC)
	b := time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC)
	c := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)

	if !payweek.SameDay(a, b) {
		t.Error("SameDay: expected same day for a and b")
	}
	if payweek.SameDay(a, c) {
		t.Error("SameDay: expected different days for a and c")
	}
}

func TestInRange(t *testing.T) {
	start := time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 14, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		day  time.Time
		want bool
	}{
		{"before range", time.Date(2024, 1, 7, 23, 59, 59, 0, time.UTC), false},
		{"start boundary counts despite earlier clock time", time.Date(2024, 1, 8, 1, 0, 0, 0, time.UTC), true},
		{"inside", time.Date(2024, 1, 11, 12, 0, 0, 0, time.UTC), true},
		{"end boundary counts despite later clock time", time.Date(2024, 1, 14, 23, 0, 0, 0, time.UTC), true},
		{"after range", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := payweek.InRange(tt.day, start, end); got != tt.want {
				t.Errorf("InRange(%v) = %v, want %v", tt.day, got, tt.want)
			}
		})
	}
}
