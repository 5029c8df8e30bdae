package models

import "time"

// ConsumptionEvent is an immutable record of one intake of a tracked
// substance. An amount of 0 is a valid, meaningful value: it represents an
// explicit "none consumed" log, distinct from no log existing at all.
// Events are never updated in place; a correction is a delete plus re-create.
type ConsumptionEvent struct {
	ID         string     `json:"id"`
	HabitID    string     `json:"habit_id"`
	ConsumedAt time.Time  `json:"consumed_at"`
	Amount     float64    `json:"amount"`
	CreatedAt  time.Time  `json:"created_at"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
}
