package models

import (
	"time"
)

// TimeEntry is a completed work session. An entry is created atomically
// at clock-out, is never mutated afterwards, and is only ever removed by
// a bulk clear.
type TimeEntry struct {
	ID       uint      `gorm:"primarykey" json:"id"`
	ClockIn  time.Time `gorm:"not null" json:"clock_in"`
	ClockOut time.Time `gorm:"not null" json:"clock_out"`

	// Hours and Date are derived from the clock timestamps and stored
	// redundantly for display, filtering and export. They must always
	// equal the recomputation.
	Hours float64   `gorm:"not null" json:"hours"`
	Date  time.Time `gorm:"type:date;not null;index" json:"date"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TimeEntry) TableName() string {
	return "time_entries"
}

// DateOf truncates a timestamp to its calendar date (midnight, same location).
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CalculateHours recomputes the worked hours from the clock timestamps:
// whole seconds divided by 3600, rounded to two decimals.
func (e *TimeEntry) CalculateHours() float64 {
	return Round2(e.ClockOut.Sub(e.ClockIn).Seconds() / 3600)
}

// UpdateCalculatedFields refreshes the redundant Hours and Date fields.
func (e *TimeEntry) UpdateCalculatedFields() {
	e.Hours = e.CalculateHours()
	e.Date = DateOf(e.ClockIn)
}

// IsValid checks the entry invariants: a strictly positive duration and
// derived fields consistent with the clock timestamps.
func (e *TimeEntry) IsValid() bool {
	if !e.ClockOut.After(e.ClockIn) {
		return false
	}
	if e.Hours != e.CalculateHours() {
		return false
	}
	if !e.Date.Equal(DateOf(e.ClockIn)) {
		return false
	}
	return true
}
