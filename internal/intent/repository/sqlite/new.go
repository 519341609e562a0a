package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"gems-assistant/internal/intent/repository"
	"gems-assistant/pkg/log"
)

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
}

// New creates a SQLite-backed Repository for the intent domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("intent/repository/sqlite: db is required")
	}
	return &implRepository{
		db:  db,
		l:   l,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("intent/repository/sqlite.%s", method)
}
