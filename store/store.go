// Package store persists named calculator values in a SQLite database.
//
// The store is the write side of the engine's variable scope: values
// saved here are handed to evaluation as a read-only snapshot. A store
// may cap the number of distinct names it holds, which is how save
// slots are rationed.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strconv"

	_ "github.com/mattn/go-sqlite3"

	"github.com/varcalc/varcalc"
)

// Store is a named-value store backed by SQLite. It is safe for
// concurrent use to the extent the underlying database handle is.
type Store struct {
	db    *sql.DB
	limit int
}

// Open opens or creates a store at path. Use ":memory:" for a store
// that lives only as long as the process. limit caps the number of
// distinct saved names; zero or negative means no cap.
func Open(path string, limit int) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	schema := `
	CREATE TABLE IF NOT EXISTS vars (
		name TEXT PRIMARY KEY,
		value REAL NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &Store{db: db, limit: limit}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Set saves a value under a name. Overwriting an existing name is
// always allowed; saving a new name when every slot is taken fails
// with QuotaError. Names must be valid variable names and values must
// be finite, since the engine refuses to resolve anything else.
func (s *Store) Set(name string, value float64) error {
	if !varcalc.ValidName(name) {
		return fmt.Errorf("invalid variable name %q", name)
	}
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return fmt.Errorf("cannot store non-finite value %g for %q", value, name)
	}
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if s.limit > 0 {
		var exists bool
		err := tx.QueryRow("SELECT EXISTS (SELECT 1 FROM vars WHERE name = ?)", name).Scan(&exists)
		if err != nil {
			return err
		}
		if !exists {
			var n int
			if err := tx.QueryRow("SELECT COUNT(*) FROM vars").Scan(&n); err != nil {
				return err
			}
			if n >= s.limit {
				return &QuotaError{Limit: s.limit}
			}
		}
	}
	if _, err := tx.Exec("INSERT OR REPLACE INTO vars (name, value) VALUES (?, ?)", name, value); err != nil {
		return err
	}
	return tx.Commit()
}

// Get looks up a saved value. The second result reports whether the
// name is saved.
func (s *Store) Get(name string) (float64, bool, error) {
	var v float64
	err := s.db.QueryRow("SELECT value FROM vars WHERE name = ?", name).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

// Delete frees the slot held by a name. Deleting a name that is not
// saved is not an error.
func (s *Store) Delete(name string) error {
	_, err := s.db.Exec("DELETE FROM vars WHERE name = ?", name)
	return err
}

// Names returns the saved names in sorted order.
func (s *Store) Names() ([]string, error) {
	rows, err := s.db.Query("SELECT name FROM vars ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Count returns the number of occupied slots.
func (s *Store) Count() (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM vars").Scan(&n)
	return n, err
}

// Snapshot returns every saved value in a fresh map, suitable as an
// evaluation scope. The caller owns the map exclusively.
func (s *Store) Snapshot() (map[string]float64, error) {
	rows, err := s.db.Query("SELECT name, value FROM vars")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	scope := make(map[string]float64)
	for rows.Next() {
		var name string
		var v float64
		if err := rows.Scan(&name, &v); err != nil {
			return nil, err
		}
		scope[name] = v
	}
	return scope, rows.Err()
}

// QuotaError indicates that the store has no free save slots.
type QuotaError struct {
	// Limit is the number of slots the store allows.
	Limit int
}

func (err *QuotaError) Error() string {
	return "no free save slots (limit " + strconv.Itoa(err.Limit) + ")"
}
