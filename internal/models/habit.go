package models

import (
	"time"

	"github.com/Jyriad/sleepfactor/internal/constants"
)

// Habit represents a recurring practice to track. Substance habits carry a
// decay profile so residual levels can be estimated at a reference instant.
type Habit struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Kind          constants.HabitKind   `json:"kind"`
	Unit          string                `json:"unit,omitempty"`           // e.g. "mg", "drinks"
	ReferenceTime string                `json:"reference_time,omitempty"` // HH:MM; empty means the configured default
	Profile       *DecayProfile         `json:"profile,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	ArchivedAt    *time.Time            `json:"archived_at,omitempty"`
	DeletedAt     *time.Time            `json:"deleted_at,omitempty"`
}

// DecayProfile is the per-habit elimination configuration. HalfLifeHours is
// the time for a dose's contribution to halve; ThresholdPercent is the
// fraction of an initial dose below which a single event's remaining
// contribution is considered negligible when sizing the lookback window.
// It never zeroes events out of the sum.
type DecayProfile struct {
	HalfLifeHours    float64 `json:"half_life_hours"`
	ThresholdPercent float64 `json:"threshold_percent"`
}

// IsSubstance reports whether the habit tracks a consumable substance.
func (h Habit) IsSubstance() bool {
	return h.Kind == constants.HabitKindSubstance
}
