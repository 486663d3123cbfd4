// Package repo implements the data persistence layer for questions and
// answers, backed by GORM. This file contains database bootstrapping for
// Postgres (production) and SQLite (pure Go driver, dev and tests).
//
// The production schema is owned outside this service. BootstrapSchema only
// issues idempotent CREATE ... IF NOT EXISTS statements so that an empty
// SQLite file or a throwaway Postgres can serve requests.
package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"
)

// Supported drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Options configures Open.
type Options struct {
	Driver       string // postgres|sqlite
	DSN          string // Postgres connection string
	Path         string // SQLite file path
	MaxOpenConns int    // pool bound; callers queue when exhausted
	Tracing      bool   // install the OpenTelemetry GORM plugin
	Silent       bool   // silence the GORM query logger
}

// Open connects to the configured relational store and applies pool limits.
func Open(opts Options) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	switch opts.Driver {
	case DriverPostgres:
		db, err = OpenPostgres(opts.DSN, gormConfig(opts))
	case DriverSQLite:
		db, err = OpenSQLite(opts.Path, gormConfig(opts))
	default:
		return nil, fmt.Errorf("unsupported db driver %q", opts.Driver)
	}
	if err != nil {
		return nil, err
	}

	if sqlDB, err := db.DB(); err == nil {
		n := opts.MaxOpenConns
		if n <= 0 {
			n = 5
		}
		sqlDB.SetMaxOpenConns(n)
		sqlDB.SetMaxIdleConns(n)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	if opts.Tracing {
		if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
			return nil, err
		}
	}
	return db, nil
}

func gormConfig(opts Options) *gorm.Config {
	cfg := &gorm.Config{}
	if opts.Silent {
		cfg.Logger = logger.Default.LogMode(logger.Silent)
	}
	return cfg
}

// OpenPostgres opens a Postgres connection pool through pgx.
func OpenPostgres(dsn string, cfg *gorm.Config) (*gorm.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("postgres dsn is empty")
	}
	if cfg == nil {
		cfg = &gorm.Config{}
	}
	return gorm.Open(postgres.Open(dsn), cfg)
}

// sqlitePragmas are applied to every pooled connection through the DSN.
// foreign_keys is per-connection in SQLite, so a one-off Exec is not enough.
var sqlitePragmas = []string{
	"foreign_keys(1)",
	"busy_timeout(5000)",
	"journal_mode(WAL)",
	"synchronous(NORMAL)",
}

// SQLiteDSN appends the connection pragmas to path.
func SQLiteDSN(path string) string {
	var b strings.Builder
	b.WriteString(path)
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	for _, p := range sqlitePragmas {
		b.WriteString(sep)
		b.WriteString("_pragma=")
		b.WriteString(p)
		sep = "&"
	}
	return b.String()
}

// OpenSQLite opens (or creates) a SQLite database with foreign keys enforced.
func OpenSQLite(path string, cfg *gorm.Config) (*gorm.DB, error) {
	// Fail early if parent directory does not exist (instead of sqlite "out of memory (14)" on Windows).
	if dir := filepath.Dir(path); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
	}
	if cfg == nil {
		cfg = &gorm.Config{}
	}
	return gorm.Open(sqlite.Open(SQLiteDSN(path)), cfg)
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS questions (
		question_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title       TEXT NOT NULL,
		description TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS answers (
		answer_id   UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		question_id UUID NOT NULL REFERENCES questions (question_id),
		content     TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_answers_question_id ON answers (question_id)`,
}

// sqliteUUID builds a random version 4 UUID in canonical lowercase form.
const sqliteUUID = `(lower(hex(randomblob(4))) || '-' || lower(hex(randomblob(2))) || '-4' ||
	substr(lower(hex(randomblob(2))), 2) || '-' || substr('89ab', abs(random()) % 4 + 1, 1) ||
	substr(lower(hex(randomblob(2))), 2) || '-' || lower(hex(randomblob(6))))`

const sqliteNow = `(strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))`

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS questions (
		question_id TEXT PRIMARY KEY NOT NULL DEFAULT ` + sqliteUUID + `,
		title       TEXT NOT NULL,
		description TEXT NOT NULL,
		created_at  TEXT NOT NULL DEFAULT ` + sqliteNow + `
	)`,
	`CREATE TABLE IF NOT EXISTS answers (
		answer_id   TEXT PRIMARY KEY NOT NULL DEFAULT ` + sqliteUUID + `,
		question_id TEXT NOT NULL REFERENCES questions (question_id),
		content     TEXT NOT NULL,
		created_at  TEXT NOT NULL DEFAULT ` + sqliteNow + `
	)`,
	`CREATE INDEX IF NOT EXISTS idx_answers_question_id ON answers (question_id)`,
}

// BootstrapSchema creates the questions and answers tables when missing.
// Existing tables are left untouched.
func BootstrapSchema(db *gorm.DB) error {
	stmts := sqliteSchema
	if db.Dialector.Name() == DriverPostgres {
		stmts = postgresSchema
	}
	for _, s := range stmts {
		if err := db.Exec(s).Error; err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	return nil
}
