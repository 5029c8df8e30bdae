package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Jyriad/sleepfactor/internal/constants"
	"github.com/Jyriad/sleepfactor/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "sleepfactor.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLoadBeforeInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "sleepfactor.db"))
	if err := store.Load(); err == nil {
		t.Fatal("Load() error = nil, want not-initialized error")
	}
}

func TestDefaultSettings(t *testing.T) {
	store := newTestStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if settings.Timezone != constants.DefaultTimezone {
		t.Errorf("Timezone = %q, want %q", settings.Timezone, constants.DefaultTimezone)
	}
	if settings.DefaultReferenceTime != constants.DefaultReferenceTime {
		t.Errorf("DefaultReferenceTime = %q, want %q", settings.DefaultReferenceTime, constants.DefaultReferenceTime)
	}
}

func TestSaveSettings(t *testing.T) {
	store := newTestStore(t)

	want := models.Settings{Timezone: "Europe/Berlin", DefaultReferenceTime: "23:30"}
	if err := store.SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if got != want {
		t.Errorf("GetSettings() = %+v, want %+v", got, want)
	}
}

func TestHabitLifecycle(t *testing.T) {
	store := newTestStore(t)

	habit := models.Habit{
		ID:            "habit-1",
		Name:          "caffeine",
		Kind:          constants.HabitKindSubstance,
		Unit:          "mg",
		ReferenceTime: "22:30",
		Profile:       &models.DecayProfile{HalfLifeHours: 5, ThresholdPercent: 5},
		CreatedAt:     time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("AddHabit() error = %v", err)
	}

	got, err := store.GetHabitByName("caffeine")
	if err != nil {
		t.Fatalf("GetHabitByName() error = %v", err)
	}
	if got.ID != habit.ID || got.Unit != "mg" || got.ReferenceTime != "22:30" {
		t.Errorf("GetHabitByName() = %+v, want %+v", got, habit)
	}
	if got.Profile == nil || got.Profile.HalfLifeHours != 5 || got.Profile.ThresholdPercent != 5 {
		t.Errorf("Profile = %+v, want half-life 5 threshold 5", got.Profile)
	}
	if !got.IsSubstance() {
		t.Error("IsSubstance() = false, want true")
	}

	// Update the profile in place
	got.Profile.HalfLifeHours = 6
	if err := store.UpdateHabit(got); err != nil {
		t.Fatalf("UpdateHabit() error = %v", err)
	}
	updated, err := store.GetHabit(habit.ID)
	if err != nil {
		t.Fatalf("GetHabit() error = %v", err)
	}
	if updated.Profile.HalfLifeHours != 6 {
		t.Errorf("HalfLifeHours = %v, want 6 after update", updated.Profile.HalfLifeHours)
	}

	// Archive hides the habit from the default listing
	if err := store.ArchiveHabit(habit.ID); err != nil {
		t.Fatalf("ArchiveHabit() error = %v", err)
	}
	habits, err := store.GetAllHabits(false, false)
	if err != nil {
		t.Fatalf("GetAllHabits() error = %v", err)
	}
	if len(habits) != 0 {
		t.Errorf("GetAllHabits(false, false) = %d habits, want 0 after archive", len(habits))
	}
	habits, err = store.GetAllHabits(true, false)
	if err != nil {
		t.Fatalf("GetAllHabits() error = %v", err)
	}
	if len(habits) != 1 || habits[0].ArchivedAt == nil {
		t.Errorf("GetAllHabits(true, false) = %+v, want one archived habit", habits)
	}

	if err := store.UnarchiveHabit(habit.ID); err != nil {
		t.Fatalf("UnarchiveHabit() error = %v", err)
	}

	// Soft delete and restore
	if err := store.DeleteHabit(habit.ID); err != nil {
		t.Fatalf("DeleteHabit() error = %v", err)
	}
	if _, err := store.GetHabit(habit.ID); err == nil {
		t.Error("GetHabit() after delete error = nil, want not found")
	}
	if err := store.RestoreHabit(habit.ID); err != nil {
		t.Fatalf("RestoreHabit() error = %v", err)
	}
	if _, err := store.GetHabit(habit.ID); err != nil {
		t.Errorf("GetHabit() after restore error = %v", err)
	}
}

func TestArchiveMissingHabit(t *testing.T) {
	store := newTestStore(t)
	if err := store.ArchiveHabit("no-such-id"); err == nil {
		t.Error("ArchiveHabit() error = nil, want not found")
	}
}

func TestEventRoundtrip(t *testing.T) {
	store := newTestStore(t)

	habit := models.Habit{ID: "habit-1", Name: "caffeine", CreatedAt: time.Now()}
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("AddHabit() error = %v", err)
	}

	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	events := []models.ConsumptionEvent{
		{ID: "e2", HabitID: habit.ID, ConsumedAt: base.Add(6 * time.Hour), Amount: 50, CreatedAt: base},
		{ID: "e1", HabitID: habit.ID, ConsumedAt: base, Amount: 100, CreatedAt: base},
		{ID: "e3", HabitID: "other", ConsumedAt: base, Amount: 10, CreatedAt: base},
	}
	for _, ev := range events {
		if err := store.AddEvent(ev); err != nil {
			t.Fatalf("AddEvent(%s) error = %v", ev.ID, err)
		}
	}

	got, err := store.GetEventsInRange(habit.ID, base.Add(-time.Hour), base.Add(12*time.Hour))
	if err != nil {
		t.Fatalf("GetEventsInRange() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("GetEventsInRange() = %d events, want 2", len(got))
	}
	// Ordered by consumption time, not insertion order
	if got[0].ID != "e1" || got[1].ID != "e2" {
		t.Errorf("event order = %s, %s, want e1, e2", got[0].ID, got[1].ID)
	}
	if !got[0].ConsumedAt.Equal(base) {
		t.Errorf("ConsumedAt = %v, want %v", got[0].ConsumedAt, base)
	}

	// Range bounds are inclusive
	got, err = store.GetEventsInRange(habit.ID, base, base)
	if err != nil {
		t.Fatalf("GetEventsInRange() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != "e1" {
		t.Errorf("GetEventsInRange(exact bounds) = %+v, want just e1", got)
	}
}

func TestEventTimezoneNormalization(t *testing.T) {
	// An event logged with a non-UTC offset must come back at the same
	// instant and sort correctly against UTC events.
	store := newTestStore(t)

	habit := models.Habit{ID: "habit-1", Name: "caffeine", CreatedAt: time.Now()}
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("AddHabit() error = %v", err)
	}

	offset := time.FixedZone("UTC+9", 9*3600)
	local := time.Date(2025, 3, 10, 20, 0, 0, 0, offset) // 11:00 UTC
	utc := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	if err := store.AddEvent(models.ConsumptionEvent{ID: "local", HabitID: habit.ID, ConsumedAt: local, Amount: 1, CreatedAt: local}); err != nil {
		t.Fatalf("AddEvent() error = %v", err)
	}
	if err := store.AddEvent(models.ConsumptionEvent{ID: "utc", HabitID: habit.ID, ConsumedAt: utc, Amount: 1, CreatedAt: utc}); err != nil {
		t.Fatalf("AddEvent() error = %v", err)
	}

	got, err := store.GetEventsInRange(habit.ID, utc.Add(-24*time.Hour), utc.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("GetEventsInRange() error = %v", err)
	}
	if len(got) != 2 || got[0].ID != "local" || got[1].ID != "utc" {
		t.Fatalf("event order = %+v, want local (11:00Z) before utc (12:00Z)", got)
	}
	if !got[0].ConsumedAt.Equal(local) {
		t.Errorf("ConsumedAt = %v, want same instant as %v", got[0].ConsumedAt, local)
	}
}

func TestDeleteEvent(t *testing.T) {
	store := newTestStore(t)

	habit := models.Habit{ID: "habit-1", Name: "caffeine", CreatedAt: time.Now()}
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("AddHabit() error = %v", err)
	}

	now := time.Now().UTC().Truncate(time.Second)
	ev := models.ConsumptionEvent{ID: "e1", HabitID: habit.ID, ConsumedAt: now, Amount: 100, CreatedAt: now}
	if err := store.AddEvent(ev); err != nil {
		t.Fatalf("AddEvent() error = %v", err)
	}

	if err := store.DeleteEvent("e1"); err != nil {
		t.Fatalf("DeleteEvent() error = %v", err)
	}
	if _, err := store.GetEvent("e1"); err == nil {
		t.Error("GetEvent() after delete error = nil, want not found")
	}
	got, err := store.GetEventsInRange(habit.ID, now.Add(-time.Hour), now.Add(time.Hour))
	if err != nil {
		t.Fatalf("GetEventsInRange() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("GetEventsInRange() after delete = %d events, want 0", len(got))
	}
	if err := store.DeleteEvent("e1"); err == nil {
		t.Error("DeleteEvent() twice error = nil, want already-deleted error")
	}
}

func TestSleepRecordRoundtrip(t *testing.T) {
	store := newTestStore(t)

	record := models.SleepRecord{
		ID:        "s1",
		Day:       "2025-03-10",
		BedTime:   "22:45",
		WakeTime:  "06:30",
		Quality:   4,
		Note:      "slept well",
		CreatedAt: time.Now(),
	}
	if err := store.AddSleepRecord(record); err != nil {
		t.Fatalf("AddSleepRecord() error = %v", err)
	}

	got, err := store.GetSleepRecord("2025-03-10")
	if err != nil {
		t.Fatalf("GetSleepRecord() error = %v", err)
	}
	if got.BedTime != "22:45" || got.WakeTime != "06:30" || got.Quality != 4 || got.Note != "slept well" {
		t.Errorf("GetSleepRecord() = %+v, want %+v", got, record)
	}

	// Logging the same night again replaces the record
	record.Quality = 2
	if err := store.AddSleepRecord(record); err != nil {
		t.Fatalf("AddSleepRecord() upsert error = %v", err)
	}
	got, err = store.GetSleepRecord("2025-03-10")
	if err != nil {
		t.Fatalf("GetSleepRecord() error = %v", err)
	}
	if got.Quality != 2 {
		t.Errorf("Quality = %d, want 2 after upsert", got.Quality)
	}

	records, err := store.GetSleepRecords("2025-03-01", "2025-03-31")
	if err != nil {
		t.Fatalf("GetSleepRecords() error = %v", err)
	}
	if len(records) != 1 {
		t.Errorf("GetSleepRecords() = %d records, want 1", len(records))
	}

	if err := store.DeleteSleepRecord("2025-03-10"); err != nil {
		t.Fatalf("DeleteSleepRecord() error = %v", err)
	}
	if _, err := store.GetSleepRecord("2025-03-10"); err == nil {
		t.Error("GetSleepRecord() after delete error = nil, want not found")
	}
}
