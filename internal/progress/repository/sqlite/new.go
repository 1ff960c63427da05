// Package sqlite provides the SQLite-backed progress repository.
package sqlite

import (
	"database/sql"
	"time"

	"completion-planner/internal/progress/repository"
	"completion-planner/internal/progress/repository/sqlite/migrations"
	"completion-planner/pkg/log"
	pkgSqlite "completion-planner/pkg/sqlite"
)

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
}

// Open opens the database at path with the progress schema applied.
func Open(path string) (*sql.DB, error) {
	return pkgSqlite.Open(path, migrations.FS)
}

// New creates a new SQLite-backed Repository for the progress domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("progress/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l, now: time.Now}
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}
