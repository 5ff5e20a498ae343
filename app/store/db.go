package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"
	_ "github.com/jackc/pgx/v5/stdlib" // postgresql driver
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // sqlite driver
)

// engine holds everything that differs between the supported databases.
// Queries are written with ? placeholders and rebound by sqlx for the driver.
type engine struct {
	driver string
	schema string
	setup  func(db *sqlx.DB) error
	locker func() RWLocker
}

var engines = map[DBType]engine{
	DBTypeSQLite: {
		driver: "sqlite",
		schema: `CREATE TABLE IF NOT EXISTS preferences (
			name TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		setup: func(db *sqlx.DB) error {
			for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA busy_timeout=5000", "PRAGMA synchronous=NORMAL"} {
				if _, err := db.Exec(pragma); err != nil { //nolint:noctx // init-time, no context available
					return fmt.Errorf("failed to set %q: %w", pragma, err)
				}
			}
			db.SetMaxOpenConns(1) // single writer
			return nil
		},
		locker: func() RWLocker { return &sync.RWMutex{} },
	},
	DBTypePostgres: {
		driver: "pgx",
		schema: `CREATE TABLE IF NOT EXISTS preferences (
			name TEXT PRIMARY KEY,
			value BYTEA NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		setup: func(db *sqlx.DB) error {
			db.SetMaxOpenConns(10)
			db.SetMaxIdleConns(2)
			db.SetConnMaxLifetime(5 * time.Minute)
			return nil
		},
		locker: func() RWLocker { return noopLocker{} },
	},
}

// Store keeps preferences in the preferences table.
type Store struct {
	db     *sqlx.DB
	dbType DBType
	mu     RWLocker
}

// New opens the database at dbURL and creates the table if needed.
// postgres:// and postgresql:// URLs select PostgreSQL, anything else is a SQLite file.
func New(dbURL string) (*Store, error) {
	dbType := detectDBType(dbURL)
	eng := engines[dbType]

	db, err := sqlx.Connect(eng.driver, dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", dbType, err)
	}
	if err := eng.setup(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to setup %s: %w", dbType, err)
	}
	if _, err := db.Exec(eng.schema); err != nil { //nolint:noctx // init-time, no context available
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	log.Printf("[DEBUG] initialized %s store", dbType)
	return &Store{db: db, dbType: dbType, mu: eng.locker()}, nil
}

func detectDBType(url string) DBType {
	lower := strings.ToLower(url)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return DBTypePostgres
	}
	return DBTypeSQLite
}

// Load returns the entry stored under key, ErrNotFound if there is none.
func (s *Store) Load(ctx context.Context, key string) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var e Entry
	query := s.db.Rebind("SELECT name, value, updated_at FROM preferences WHERE name = ?")
	err := s.db.GetContext(ctx, &e, query, key)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, ErrNotFound
	}
	if err != nil {
		return Entry{}, fmt.Errorf("failed to load %q: %w", key, err)
	}
	return e, nil
}

// Set stores value under key. updated_at moves only when the value changes.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := s.db.Rebind(`INSERT INTO preferences (name, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
		WHERE preferences.value <> excluded.value`)
	if _, err := s.db.ExecContext(ctx, query, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}
	return nil
}

// Delete removes key, ErrNotFound if it was not stored.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, s.db.Rebind("DELETE FROM preferences WHERE name = ?"), key)
	if err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
