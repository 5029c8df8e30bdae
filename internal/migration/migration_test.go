package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"002_add_note.sql": {Data: []byte("ALTER TABLE things ADD COLUMN note TEXT;")},
		"001_init.sql":     {Data: []byte("CREATE TABLE things (id TEXT PRIMARY KEY);")},
	}
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestReadMigrationFiles(t *testing.T) {
	runner := NewRunner(nil, testFS())

	migrations, err := runner.ReadMigrationFiles()
	if err != nil {
		t.Fatalf("ReadMigrationFiles() error = %v", err)
	}

	if len(migrations) != 2 {
		t.Fatalf("ReadMigrationFiles() = %d migrations, want 2", len(migrations))
	}
	// Sorted by version, not directory order
	if migrations[0].Version != 1 || migrations[0].Name != "init" {
		t.Errorf("first migration = %d %q, want 1 %q", migrations[0].Version, migrations[0].Name, "init")
	}
	if migrations[1].Version != 2 || migrations[1].Name != "add_note" {
		t.Errorf("second migration = %d %q, want 2 %q", migrations[1].Version, migrations[1].Name, "add_note")
	}
}

func TestReadMigrationFilesRejectsBadNames(t *testing.T) {
	tests := []struct {
		name string
		fs   fstest.MapFS
	}{
		{
			name: "no version prefix",
			fs:   fstest.MapFS{"init.sql": {Data: []byte("SELECT 1;")}},
		},
		{
			name: "non-numeric version",
			fs:   fstest.MapFS{"abc_init.sql": {Data: []byte("SELECT 1;")}},
		},
		{
			name: "zero version",
			fs:   fstest.MapFS{"000_init.sql": {Data: []byte("SELECT 1;")}},
		},
		{
			name: "duplicate versions",
			fs: fstest.MapFS{
				"001_a.sql": {Data: []byte("SELECT 1;")},
				"001_b.sql": {Data: []byte("SELECT 1;")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := NewRunner(nil, tt.fs)
			if _, err := runner.ReadMigrationFiles(); err == nil {
				t.Error("ReadMigrationFiles() error = nil, want error")
			}
		})
	}
}

func TestApplyMigrations(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, testFS())

	applied, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations() error = %v", err)
	}
	if applied != 2 {
		t.Errorf("ApplyMigrations() = %d, want 2", applied)
	}

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion() error = %v", err)
	}
	if version != 2 {
		t.Errorf("GetCurrentVersion() = %d, want 2", version)
	}

	// Second run is a no-op
	applied, err = runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations() rerun error = %v", err)
	}
	if applied != 0 {
		t.Errorf("ApplyMigrations() rerun = %d, want 0", applied)
	}

	if err := runner.ValidateVersion(); err != nil {
		t.Errorf("ValidateVersion() error = %v", err)
	}
}

func TestValidateVersionOutOfDate(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, testFS())

	if err := runner.SetVersion(1); err != nil {
		t.Fatalf("SetVersion() error = %v", err)
	}
	if err := runner.ValidateVersion(); err == nil {
		t.Error("ValidateVersion() error = nil, want out-of-date error")
	}
}
