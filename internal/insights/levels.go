// Package insights exposes estimated substance levels to downstream
// consumers. It glues the persistence layer to the pure decay estimator: for
// a (habit, day) pair it resolves the reference instant, sizes the lookback
// window, fetches the relevant consumption history, and reports the estimated
// level together with the habit's unit.
package insights

import (
	"fmt"
	"time"

	"github.com/Jyriad/sleepfactor/internal/constants"
	"github.com/Jyriad/sleepfactor/internal/decay"
	"github.com/Jyriad/sleepfactor/internal/models"
	"github.com/Jyriad/sleepfactor/internal/utils"
)

// EventSource is the slice of the storage provider the service needs.
type EventSource interface {
	GetSettings() (models.Settings, error)
	GetEventsInRange(habitID string, start, end time.Time) ([]models.ConsumptionEvent, error)
}

// LevelReport is the outbound contract to the correlation collaborator: one
// estimated level per (habit, day) pair, with the unit inherited from the
// habit's configuration. Logged is the separate existence check that
// distinguishes "explicitly logged zero" from "never logged" — the numeric
// level alone cannot tell them apart.
type LevelReport struct {
	HabitID          string
	HabitName        string
	Day              string
	Level            float64
	Unit             string
	ReferenceInstant time.Time
	LookbackDays     int
	Logged           bool
	Rejected         []decay.RejectedEvent
}

type Service struct {
	store EventSource
}

func New(store EventSource) *Service {
	return &Service{store: store}
}

// LevelAtReference estimates the habit's residual substance level at its
// reference instant (habitual bedtime) for the given logged day. The habit
// must carry a decay profile; a substance habit without one is a
// configuration error, never a runtime default.
func (s *Service) LevelAtReference(habit models.Habit, day string) (LevelReport, error) {
	if habit.Profile == nil {
		return LevelReport{}, fmt.Errorf("%w: habit %q has no decay profile", decay.ErrInvalidConfiguration, habit.Name)
	}
	if err := decay.ValidateProfile(*habit.Profile); err != nil {
		return LevelReport{}, fmt.Errorf("habit %q: %w", habit.Name, err)
	}

	settings, err := s.store.GetSettings()
	if err != nil {
		// No stored settings yet; the documented defaults apply.
		settings = models.Settings{
			Timezone:             constants.DefaultTimezone,
			DefaultReferenceTime: constants.DefaultReferenceTime,
		}
	}

	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return LevelReport{}, fmt.Errorf("invalid timezone %q: %w", settings.Timezone, err)
	}

	clockTime := habit.ReferenceTime
	if clockTime == "" {
		clockTime = settings.DefaultReferenceTime
	}

	ref, err := decay.ResolveReferenceInstant(day, clockTime, loc)
	if err != nil {
		return LevelReport{}, err
	}

	lookbackDays, err := decay.LookbackDaysForThreshold(habit.Profile.HalfLifeHours, habit.Profile.ThresholdPercent)
	if err != nil {
		return LevelReport{}, err
	}

	// The lookback window bounds the query range only; the estimator itself
	// sums everything it is given.
	start := ref.AddDate(0, 0, -lookbackDays)
	events, err := s.store.GetEventsInRange(habit.ID, start, ref)
	if err != nil {
		return LevelReport{}, fmt.Errorf("failed to fetch consumption events: %w", err)
	}

	est, err := decay.EstimateLevel(events, ref, *habit.Profile)
	if err != nil {
		return LevelReport{}, err
	}

	logged, err := s.hasEventOnDay(habit.ID, day, loc)
	if err != nil {
		return LevelReport{}, err
	}

	return LevelReport{
		HabitID:          habit.ID,
		HabitName:        habit.Name,
		Day:              day,
		Level:            est.Level,
		Unit:             habit.Unit,
		ReferenceInstant: est.ReferenceInstant,
		LookbackDays:     lookbackDays,
		Logged:           logged,
		Rejected:         est.Rejected,
	}, nil
}

// hasEventOnDay reports whether any consumption event (including explicit
// zero logs) exists within the calendar day in the given timezone.
func (s *Service) hasEventOnDay(habitID, day string, loc *time.Location) (bool, error) {
	dayStart, err := utils.ParseDateInLocation(day, loc)
	if err != nil {
		return false, fmt.Errorf("invalid day %q: %w", day, err)
	}
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Second)

	events, err := s.store.GetEventsInRange(habitID, dayStart, dayEnd)
	if err != nil {
		return false, fmt.Errorf("failed to check for events on %s: %w", day, err)
	}
	return len(events) > 0, nil
}
