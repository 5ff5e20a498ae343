// Package store persists named preferences in SQLite or PostgreSQL.
package store

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a key is not found in the store.
var ErrNotFound = errors.New("key not found")

// DBType identifies the database engine behind a Store.
type DBType int

// supported database engines
const (
	DBTypeSQLite DBType = iota
	DBTypePostgres
)

// String returns the engine name used in logs and errors.
func (t DBType) String() string {
	if t == DBTypePostgres {
		return "postgres"
	}
	return "sqlite"
}

// Entry is a stored value and the time it was last changed.
// Writing the same value again keeps UpdatedAt.
type Entry struct {
	Key       string    `db:"name"`
	Value     []byte    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}

// RWLocker is a subset of sync.RWMutex used to serialize sqlite access.
type RWLocker interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()
}

// noopLocker is used for postgres, which handles concurrency itself.
type noopLocker struct{}

func (noopLocker) Lock()    {}
func (noopLocker) Unlock()  {}
func (noopLocker) RLock()   {}
func (noopLocker) RUnlock() {}
