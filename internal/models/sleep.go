package models

import "time"

// SleepRecord captures one night of sleep for a logged day. The downstream
// correlation engine pairs these against estimated substance levels; this
// application only stores them.
type SleepRecord struct {
	ID        string     `json:"id"`
	Day       string     `json:"day"`      // YYYY-MM-DD format
	BedTime   string     `json:"bed_time"` // HH:MM
	WakeTime  string     `json:"wake_time"`
	Quality   int        `json:"quality"` // subjective rating, 1 (worst) to 5 (best)
	Note      string     `json:"note,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}
