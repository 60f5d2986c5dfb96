// Package settings persists station-wide key/value preferences.
package settings

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shayulman/radiodesk/internal/db"
)

// Defaults are seeded on first run and restored for any key that was never
// overridden.
var Defaults = map[string]string{
	"station_name":     "RadioDesk",
	"station_name_he":  "רדיו-דסק",
	"default_language": "he",
	"default_volume":   "80",
}

// Store provides access to the settings table.
type Store struct {
	db *db.DB
}

// NewStore creates a settings store and seeds missing defaults.
func NewStore(ctx context.Context, d *db.DB) (*Store, error) {
	s := &Store{db: d}
	for k, v := range Defaults {
		_, err := d.ExecContext(ctx,
			`INSERT INTO settings (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO NOTHING`, k, v)
		if err != nil {
			return nil, fmt.Errorf("seeding setting %s: %w", k, err)
		}
	}
	return s, nil
}

// Get returns the value for a key. Missing keys fall back to the default,
// or sql.ErrNoRows for keys with no default.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		if def, ok := Defaults[key]; ok {
			return def, nil
		}
		return "", sql.ErrNoRows
	}
	if err != nil {
		return "", fmt.Errorf("getting setting %s: %w", key, err)
	}
	return value, nil
}

// Set stores a value, creating the key if needed.
func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	return nil
}

// All returns every stored setting as a map.
func (s *Store) All(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return nil, fmt.Errorf("listing settings: %w", err)
	}
	defer rows.Close()

	result := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scanning setting: %w", err)
		}
		result[k] = v
	}
	return result, rows.Err()
}
