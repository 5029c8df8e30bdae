package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Jyriad/sleepfactor/internal/models"
)

func (s *Store) AddSleepRecord(record models.SleepRecord) error {
	var deletedAt sql.NullString
	if record.DeletedAt != nil {
		deletedAt = sql.NullString{String: record.DeletedAt.Format(time.RFC3339), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO sleep_records (id, day, bed_time, wake_time, quality, note, created_at, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(day) DO UPDATE SET
			bed_time = excluded.bed_time,
			wake_time = excluded.wake_time,
			quality = excluded.quality,
			note = excluded.note,
			deleted_at = excluded.deleted_at`,
		record.ID, record.Day, record.BedTime, record.WakeTime, record.Quality,
		record.Note, record.CreatedAt.Format(time.RFC3339), deletedAt)
	return err
}

func (s *Store) GetSleepRecord(day string) (models.SleepRecord, error) {
	row := s.db.QueryRow(`
		SELECT id, day, bed_time, wake_time, quality, note, created_at, deleted_at
		FROM sleep_records WHERE day = ? AND deleted_at IS NULL`, day)
	return scanSleepRecord(row)
}

func (s *Store) GetSleepRecords(startDay, endDay string) ([]models.SleepRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, day, bed_time, wake_time, quality, note, created_at, deleted_at
		FROM sleep_records
		WHERE day >= ? AND day <= ? AND deleted_at IS NULL
		ORDER BY day DESC`, startDay, endDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.SleepRecord
	for rows.Next() {
		r, err := scanSleepRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

func (s *Store) DeleteSleepRecord(day string) error {
	result, err := s.db.Exec(`
		UPDATE sleep_records SET deleted_at = ? WHERE day = ? AND deleted_at IS NULL`,
		time.Now().Format(time.RFC3339), day)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("sleep record not found or already deleted")
	}

	return nil
}

func scanSleepRecord(row rowScanner) (models.SleepRecord, error) {
	var r models.SleepRecord
	var createdAt string
	var note, deletedAt sql.NullString

	err := row.Scan(&r.ID, &r.Day, &r.BedTime, &r.WakeTime, &r.Quality, &note, &createdAt, &deletedAt)
	if err != nil {
		return models.SleepRecord{}, err
	}

	r.Note = note.String
	r.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.SleepRecord{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if deletedAt.Valid {
		t, err := time.Parse(time.RFC3339, deletedAt.String)
		if err != nil {
			return models.SleepRecord{}, fmt.Errorf("failed to parse deleted_at: %w", err)
		}
		r.DeletedAt = &t
	}

	return r, nil
}
