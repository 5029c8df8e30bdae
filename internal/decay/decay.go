// Package decay implements the substance decay and reference-time level
// estimator: every consumption event contributes a first-order exponential
// decay term, and the estimated residual level at a reference instant
// (typically the user's habitual bedtime) is the superposition of all
// contributions from events that precede it.
//
// All functions here are pure and perform no I/O; configuration is passed in
// at call time so a profile edit takes effect on the very next estimation.
package decay

import (
	"errors"
	"fmt"
	"math"

	"github.com/Jyriad/sleepfactor/internal/models"
)

var (
	// ErrInvalidConfiguration reports a decay profile that cannot be used
	// for estimation. It is never swallowed into a default value: silently
	// substituting a made-up half-life would corrupt downstream correlation
	// statistics invisibly.
	ErrInvalidConfiguration = errors.New("invalid decay configuration")

	// ErrInvalidEvent reports a consumption event that fails validation.
	ErrInvalidEvent = errors.New("invalid consumption event")
)

// RemainingFraction returns the fraction of an initial dose still present
// after elapsedHours for a substance with the given half-life:
//
//	2^(-elapsedHours / halfLifeHours)
//
// The result is 1 at zero elapsed time, 0.5 after exactly one half-life, and
// decreases monotonically from there. First-order exponential decay is the
// only supported shape.
//
// Events in the future relative to the reference instant must be excluded by
// the caller before this is reached; a negative elapsed time is a contract
// violation and fails rather than extrapolating.
func RemainingFraction(elapsedHours, halfLifeHours float64) (float64, error) {
	if halfLifeHours <= 0 {
		return 0, fmt.Errorf("%w: half-life must be positive, got %g", ErrInvalidConfiguration, halfLifeHours)
	}
	if elapsedHours < 0 {
		return 0, fmt.Errorf("elapsed time must be non-negative, got %g", elapsedHours)
	}
	return math.Exp2(-elapsedHours / halfLifeHours), nil
}

// ValidateProfile checks that a decay profile is usable for estimation.
// A zero or missing half-life is rejected, never defaulted.
func ValidateProfile(profile models.DecayProfile) error {
	if profile.HalfLifeHours <= 0 {
		return fmt.Errorf("%w: half-life must be positive, got %g", ErrInvalidConfiguration, profile.HalfLifeHours)
	}
	if profile.ThresholdPercent <= 0 || profile.ThresholdPercent > 100 {
		return fmt.Errorf("%w: threshold percent must be in (0, 100], got %g", ErrInvalidConfiguration, profile.ThresholdPercent)
	}
	return nil
}
