package database

import (
	"database/sql"
	"fmt"
	"time"
)

// KV is the key/value persistence collaborator backing the state hub. It
// satisfies hub.Storage.
type KV struct {
	db *sql.DB
}

// NewKV creates a KV store on an existing database connection.
func NewKV(db *sql.DB) *KV {
	return &KV{db: db}
}

// Get returns the stored value for key. A missing key is (="", ok=false)
// with no error.
func (s *KV) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *KV) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}
