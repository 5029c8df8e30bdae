package decay

import (
	"fmt"
	"time"

	"github.com/Jyriad/sleepfactor/internal/constants"
)

// ResolveReferenceInstant combines a logged day (YYYY-MM-DD) with a habitual
// clock time (HH:MM) into the concrete instant at which a level is evaluated.
//
// Day-boundary rule: clock times before noon belong to the night of the
// logged day and roll over to the following calendar date, so a 01:30
// bedtime logged for day D resolves to D+1 01:30, while a 22:00 bedtime
// anchors to D itself. The rule depends only on the logged day — never on
// the live clock — so resolving a historical date months later yields the
// same instant it did on the day it was logged.
//
// A missing or unparsable clock time falls back to the default reference
// time rather than propagating an error to the estimator.
func ResolveReferenceInstant(day string, clockTime string, loc *time.Location) (time.Time, error) {
	date, err := time.Parse(constants.DateFormat, day)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q (expected YYYY-MM-DD): %w", day, err)
	}

	timeOfDay, err := time.Parse(constants.TimeFormat, clockTime)
	if err != nil {
		timeOfDay, _ = time.Parse(constants.TimeFormat, constants.DefaultReferenceTime)
	}

	if loc == nil {
		loc = time.Local
	}

	instant := time.Date(
		date.Year(), date.Month(), date.Day(),
		timeOfDay.Hour(), timeOfDay.Minute(), 0, 0,
		loc,
	)

	// After-midnight reference times span the day boundary.
	if timeOfDay.Hour() < 12 {
		instant = instant.AddDate(0, 0, 1)
	}

	return instant, nil
}
