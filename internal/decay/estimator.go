package decay

import (
	"fmt"
	"time"

	"github.com/Jyriad/sleepfactor/internal/models"
)

// RejectedEvent pairs a consumption event that failed validation with the
// reason it was excluded from the sum.
type RejectedEvent struct {
	Event  models.ConsumptionEvent
	Reason string
}

// Estimate is the result of one level estimation. It is ephemeral: this
// subsystem never persists it, and any caching is the caller's concern.
// Included and Rejected exist for auditability; the level alone is what the
// insights collaborator consumes.
type Estimate struct {
	Level            float64
	ReferenceInstant time.Time
	Included         []models.ConsumptionEvent
	Rejected         []RejectedEvent
}

// EstimateLevel superposes the decayed contributions of every event that
// precedes referenceInstant:
//
//	level = Σ amount_i * RemainingFraction(reference - consumedAt_i, halfLife)
//
// Input order does not matter; summation is commutative. Events with a
// consumption time after the reference instant are excluded entirely (a hard
// filter, not a near-zero contribution). Events with a negative amount or a
// missing timestamp are rejected per-event and reported on the estimate while
// the remaining valid history continues to be summed — a single bad record
// must not abort the estimation for a habit.
//
// An empty input yields a level of 0, not an error: "no data" and "zero
// level" are the same observable outcome here. Distinguishing "never logged"
// from "logged as zero" is the caller's job via a separate existence check.
func EstimateLevel(events []models.ConsumptionEvent, referenceInstant time.Time, profile models.DecayProfile) (Estimate, error) {
	if err := ValidateProfile(profile); err != nil {
		return Estimate{}, err
	}

	est := Estimate{ReferenceInstant: referenceInstant}
	for _, ev := range events {
		if ev.Amount < 0 {
			est.Rejected = append(est.Rejected, RejectedEvent{
				Event:  ev,
				Reason: fmt.Sprintf("%v: negative amount %g", ErrInvalidEvent, ev.Amount),
			})
			continue
		}
		if ev.ConsumedAt.IsZero() {
			est.Rejected = append(est.Rejected, RejectedEvent{
				Event:  ev,
				Reason: fmt.Sprintf("%v: missing consumption timestamp", ErrInvalidEvent),
			})
			continue
		}
		if ev.ConsumedAt.After(referenceInstant) {
			// Future events cannot contribute to a past or present level.
			continue
		}

		elapsedHours := referenceInstant.Sub(ev.ConsumedAt).Hours()
		fraction, err := RemainingFraction(elapsedHours, profile.HalfLifeHours)
		if err != nil {
			return Estimate{}, err
		}

		est.Level += ev.Amount * fraction
		est.Included = append(est.Included, ev)
	}

	return est, nil
}
