package models

import "time"

// Attendance status values accepted by the schema CHECK constraint.
const (
	StatusPresent = "present"
	StatusLate    = "late"
	StatusAbsent  = "absent"
)

// AttendanceRecord is one clock-in for one staff member on one calendar day.
// WorkDate is the clock-in instant's day in the shop timezone; together with
// StaffID it is unique, which is what makes concurrent duplicate submissions
// safe.
type AttendanceRecord struct {
	ID            int64
	StaffID       int64
	ClockIn       time.Time
	WorkDate      string // "2006-01-02" in the shop timezone
	Status        string
	PenaltyAmount float64
	LocationLat   *float64
	LocationLong  *float64
	SelfieURL     *string
	CreatedAt     time.Time
}

type TaskRecord struct {
	ID          int64
	StaffID     int64
	Title       string
	IsCompleted bool
	CreatedAt   time.Time
}
