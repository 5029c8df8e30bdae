package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Jyriad/sleepfactor/internal/constants"
	"github.com/Jyriad/sleepfactor/internal/models"
)

func (s *Store) AddHabit(habit models.Habit) error {
	return s.UpdateHabit(habit)
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, name, kind, unit, reference_time, half_life_hours, threshold_percent, created_at, archived_at, deleted_at
		FROM habits WHERE id = ? AND deleted_at IS NULL`, id)
	return scanHabit(row)
}

func (s *Store) GetHabitByName(name string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, name, kind, unit, reference_time, half_life_hours, threshold_percent, created_at, archived_at, deleted_at
		FROM habits WHERE name = ? AND deleted_at IS NULL`, name)
	return scanHabit(row)
}

func (s *Store) GetAllHabits(includeArchived, includeDeleted bool) ([]models.Habit, error) {
	query := `SELECT id, name, kind, unit, reference_time, half_life_hours, threshold_percent, created_at, archived_at, deleted_at
		FROM habits WHERE 1=1`
	if !includeDeleted {
		query += " AND deleted_at IS NULL"
	}
	if !includeArchived {
		query += " AND archived_at IS NULL"
	}
	query += " ORDER BY created_at"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}

	return habits, rows.Err()
}

func (s *Store) UpdateHabit(habit models.Habit) error {
	var unit, referenceTime, archivedAt, deletedAt sql.NullString
	var halfLife, threshold sql.NullFloat64

	if habit.Unit != "" {
		unit = sql.NullString{String: habit.Unit, Valid: true}
	}
	if habit.ReferenceTime != "" {
		referenceTime = sql.NullString{String: habit.ReferenceTime, Valid: true}
	}
	if habit.Profile != nil {
		halfLife = sql.NullFloat64{Float64: habit.Profile.HalfLifeHours, Valid: true}
		threshold = sql.NullFloat64{Float64: habit.Profile.ThresholdPercent, Valid: true}
	}
	if habit.ArchivedAt != nil {
		archivedAt = sql.NullString{String: habit.ArchivedAt.Format(time.RFC3339), Valid: true}
	}
	if habit.DeletedAt != nil {
		deletedAt = sql.NullString{String: habit.DeletedAt.Format(time.RFC3339), Valid: true}
	}

	kind := habit.Kind
	if kind == "" {
		kind = constants.HabitKindGeneric
	}

	_, err := s.db.Exec(`
		INSERT INTO habits (id, name, kind, unit, reference_time, half_life_hours, threshold_percent, created_at, archived_at, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			kind = excluded.kind,
			unit = excluded.unit,
			reference_time = excluded.reference_time,
			half_life_hours = excluded.half_life_hours,
			threshold_percent = excluded.threshold_percent,
			archived_at = excluded.archived_at,
			deleted_at = excluded.deleted_at`,
		habit.ID, habit.Name, string(kind), unit, referenceTime, halfLife, threshold,
		habit.CreatedAt.Format(time.RFC3339), archivedAt, deletedAt)

	return err
}

func (s *Store) ArchiveHabit(id string) error {
	result, err := s.db.Exec(`
		UPDATE habits SET archived_at = ? WHERE id = ? AND deleted_at IS NULL AND archived_at IS NULL`,
		time.Now().Format(time.RFC3339), id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("habit not found or already archived/deleted")
	}

	return nil
}

func (s *Store) UnarchiveHabit(id string) error {
	result, err := s.db.Exec(`
		UPDATE habits SET archived_at = NULL WHERE id = ? AND deleted_at IS NULL AND archived_at IS NOT NULL`,
		id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("habit not found or not archived")
	}

	return nil
}

func (s *Store) DeleteHabit(id string) error {
	result, err := s.db.Exec(`
		UPDATE habits SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`,
		time.Now().Format(time.RFC3339), id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("habit not found or already deleted")
	}

	return nil
}

func (s *Store) RestoreHabit(id string) error {
	result, err := s.db.Exec(`
		UPDATE habits SET deleted_at = NULL WHERE id = ? AND deleted_at IS NOT NULL`,
		id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("habit not found or not deleted")
	}

	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (models.Habit, error) {
	var h models.Habit
	var kind, createdAt string
	var unit, referenceTime, archivedAt, deletedAt sql.NullString
	var halfLife, threshold sql.NullFloat64

	err := row.Scan(&h.ID, &h.Name, &kind, &unit, &referenceTime, &halfLife, &threshold, &createdAt, &archivedAt, &deletedAt)
	if err != nil {
		return models.Habit{}, err
	}

	h.Kind = constants.HabitKind(kind)
	h.Unit = unit.String
	h.ReferenceTime = referenceTime.String
	if halfLife.Valid {
		h.Profile = &models.DecayProfile{
			HalfLifeHours:    halfLife.Float64,
			ThresholdPercent: threshold.Float64,
		}
	}

	h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if archivedAt.Valid {
		t, err := time.Parse(time.RFC3339, archivedAt.String)
		if err != nil {
			return models.Habit{}, fmt.Errorf("failed to parse archived_at: %w", err)
		}
		h.ArchivedAt = &t
	}
	if deletedAt.Valid {
		t, err := time.Parse(time.RFC3339, deletedAt.String)
		if err != nil {
			return models.Habit{}, fmt.Errorf("failed to parse deleted_at: %w", err)
		}
		h.DeletedAt = &t
	}

	return h, nil
}
