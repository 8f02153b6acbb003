package model

import "time"

// AttendanceRecord is one user's attendance for a single calendar day.
// CheckOut stays nil until the check-out call succeeds; the backend allows
// that transition exactly once per day.
type AttendanceRecord struct {
	ID       string     `json:"_id,omitempty"`
	UserID   string     `json:"user,omitempty"`
	Date     string     `json:"date,omitempty"` // YYYY-MM-DD
	CheckIn  time.Time  `json:"checkIn"`
	CheckOut *time.Time `json:"checkOut,omitempty"`
}
