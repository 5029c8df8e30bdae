package decay

import (
	"fmt"
	"math"
)

// MinLookbackDays is the floor on any lookback window.
const MinLookbackDays = 3

// LookbackDays returns how many calendar days of history a caller must query
// before the decay sum can be trusted as materially complete: at least 3
// days, and otherwise enough to cover three half-lives. Three half-lives
// retain 12.5% of an initial dose, the accepted tolerance for coarse insight
// correlation.
//
// The value governs the query range only. It must never be used to truncate
// the sum itself; the estimator has no knowledge of this policy.
func LookbackDays(halfLifeHours float64) (int, error) {
	if halfLifeHours <= 0 {
		return 0, fmt.Errorf("%w: half-life must be positive, got %g", ErrInvalidConfiguration, halfLifeHours)
	}
	days := int(math.Ceil(3 * halfLifeHours / 24))
	if days < MinLookbackDays {
		days = MinLookbackDays
	}
	return days, nil
}

// LookbackDaysForThreshold sizes the window from the habit's configured
// negligibility threshold instead of the fixed three half-lives: a dose
// decays below thresholdPercent of its initial amount after
// log2(100/threshold) half-lives. The 3-day floor still applies, so a tight
// threshold widens the window and a loose one never shrinks it below the
// minimum.
func LookbackDaysForThreshold(halfLifeHours, thresholdPercent float64) (int, error) {
	if halfLifeHours <= 0 {
		return 0, fmt.Errorf("%w: half-life must be positive, got %g", ErrInvalidConfiguration, halfLifeHours)
	}
	if thresholdPercent <= 0 || thresholdPercent > 100 {
		return 0, fmt.Errorf("%w: threshold percent must be in (0, 100], got %g", ErrInvalidConfiguration, thresholdPercent)
	}

	halfLives := math.Log2(100 / thresholdPercent)
	days := int(math.Ceil(halfLives * halfLifeHours / 24))
	if days < MinLookbackDays {
		days = MinLookbackDays
	}
	return days, nil
}
