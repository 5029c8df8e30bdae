package storage

import (
	"time"

	"github.com/Jyriad/sleepfactor/internal/models"
)

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetHabitByName(name string) (models.Habit, error)
	GetAllHabits(includeArchived, includeDeleted bool) ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	ArchiveHabit(id string) error
	UnarchiveHabit(id string) error
	DeleteHabit(id string) error
	RestoreHabit(id string) error

	// Consumption events. Events are immutable once created: there is no
	// update operation — an amount correction is a delete plus re-create.
	AddEvent(models.ConsumptionEvent) error
	GetEvent(id string) (models.ConsumptionEvent, error)
	// GetEventsInRange returns all non-deleted events for a habit with
	// consumed_at in [start, end], ordered by consumption time.
	GetEventsInRange(habitID string, start, end time.Time) ([]models.ConsumptionEvent, error)
	DeleteEvent(id string) error

	// Sleep records
	AddSleepRecord(models.SleepRecord) error
	GetSleepRecord(day string) (models.SleepRecord, error)
	GetSleepRecords(startDay, endDay string) ([]models.SleepRecord, error)
	DeleteSleepRecord(day string) error

	// Utils
	GetConfigPath() string
}
