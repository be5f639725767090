package models

import "time"

// OpenSession is the currently running work session. At most one exists
// at a time; it is cleared when the session converts into a TimeEntry at
// clock-out. There is no automatic clock-out, so an open session persists
// indefinitely until explicitly closed or the store is cleared.
type OpenSession struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	ClockInTime time.Time `gorm:"not null" json:"clock_in_time"`
}

func (OpenSession) TableName() string {
	return "open_sessions"
}
