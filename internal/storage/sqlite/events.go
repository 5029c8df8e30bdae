package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Jyriad/sleepfactor/internal/models"
)

// Consumption timestamps are stored as UTC RFC3339 strings so that lexical
// comparison in SQL matches chronological order regardless of the offset the
// event was logged in.

func (s *Store) AddEvent(event models.ConsumptionEvent) error {
	var deletedAt sql.NullString
	if event.DeletedAt != nil {
		deletedAt = sql.NullString{String: event.DeletedAt.UTC().Format(time.RFC3339), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO consumption_events (id, habit_id, consumed_at, amount, created_at, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		event.ID, event.HabitID,
		event.ConsumedAt.UTC().Format(time.RFC3339), event.Amount,
		event.CreatedAt.UTC().Format(time.RFC3339), deletedAt)
	return err
}

func (s *Store) GetEvent(id string) (models.ConsumptionEvent, error) {
	row := s.db.QueryRow(`
		SELECT id, habit_id, consumed_at, amount, created_at, deleted_at
		FROM consumption_events WHERE id = ? AND deleted_at IS NULL`, id)
	return scanEvent(row)
}

func (s *Store) GetEventsInRange(habitID string, start, end time.Time) ([]models.ConsumptionEvent, error) {
	rows, err := s.db.Query(`
		SELECT id, habit_id, consumed_at, amount, created_at, deleted_at
		FROM consumption_events
		WHERE habit_id = ? AND consumed_at >= ? AND consumed_at <= ? AND deleted_at IS NULL
		ORDER BY consumed_at`,
		habitID, start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.ConsumptionEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

func (s *Store) DeleteEvent(id string) error {
	result, err := s.db.Exec(`
		UPDATE consumption_events SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`,
		time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("consumption event not found or already deleted")
	}

	return nil
}

func scanEvent(row rowScanner) (models.ConsumptionEvent, error) {
	var e models.ConsumptionEvent
	var consumedAt, createdAt string
	var deletedAt sql.NullString

	err := row.Scan(&e.ID, &e.HabitID, &consumedAt, &e.Amount, &createdAt, &deletedAt)
	if err != nil {
		return models.ConsumptionEvent{}, err
	}

	e.ConsumedAt, err = time.Parse(time.RFC3339, consumedAt)
	if err != nil {
		return models.ConsumptionEvent{}, fmt.Errorf("failed to parse consumed_at: %w", err)
	}
	e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.ConsumptionEvent{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if deletedAt.Valid {
		t, err := time.Parse(time.RFC3339, deletedAt.String)
		if err != nil {
			return models.ConsumptionEvent{}, fmt.Errorf("failed to parse deleted_at: %w", err)
		}
		e.DeletedAt = &t
	}

	return e, nil
}
