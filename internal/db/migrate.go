package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// patterns and responses hold JSON arrays of strings. Timestamps are RFC3339
// text in UTC.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS intents (
		id         TEXT PRIMARY KEY,
		tag        TEXT NOT NULL UNIQUE,
		patterns   TEXT NOT NULL DEFAULT '[]',
		responses  TEXT NOT NULL DEFAULT '[]',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}
