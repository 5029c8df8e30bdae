package storage

import (
	"github.com/Jyriad/sleepfactor/internal/storage/postgres"
	"github.com/Jyriad/sleepfactor/internal/storage/sqlite"
)

// NewSQLiteStore creates a Provider backed by a local SQLite database file.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(path)
}

// NewPostgresStore creates a Provider backed by a PostgreSQL database.
func NewPostgresStore(connStr string) Provider {
	return postgres.New(connStr)
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries an inline password.
func HasEmbeddedCredentials(connStr string) bool {
	return postgres.HasEmbeddedCredentials(connStr)
}
