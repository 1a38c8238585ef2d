package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/adamspd/bible-quiz-engine/utils"
	_ "github.com/mattn/go-sqlite3"
)

// KV is the durable key-value contract the engines depend on. Absent and
// corrupt values both read back as "not found" so callers always fall back
// to their documented defaults.
type KV interface {
	Load(key string, out interface{}) bool
	Save(key string, value interface{}) error
}

// Store persists JSON blobs in a single sqlite table, the device-local
// equivalent of the browser's localStorage the progress data originally
// lived in. A save is a single upsert statement, so a concurrent reader
// sees either the previous value or the new one, never a partial write.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	utils.LogDB("Opening progress store at: %s", path)

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open progress store: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping progress store: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS progress (
        key TEXT PRIMARY KEY,
        value TEXT NOT NULL,
        updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
    )`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create progress table: %w", err)
	}

	utils.LogDB("Progress store ready")
	return &Store{db: db}, nil
}

// Load reads the value stored under key into out. It returns false when the
// key is absent or its value no longer parses; a parse failure is logged and
// treated as absence, never surfaced.
func (s *Store) Load(key string, out interface{}) bool {
	start := time.Now()

	var raw string
	err := s.db.QueryRow(`SELECT value FROM progress WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		utils.LogDB("No value for key '%s', using defaults", key)
		return false
	}
	if err != nil {
		utils.LogError("Failed to read key '%s': %v", key, err)
		return false
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		utils.LogError("Corrupt value for key '%s', using defaults: %v", key, err)
		return false
	}

	utils.LogDB("Loaded key '%s' (%d bytes) in %v", key, len(raw), time.Since(start))
	return true
}

// Save serializes value and upserts it under key.
func (s *Store) Save(key string, value interface{}) error {
	start := time.Now()

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key '%s': %w", key, err)
	}

	_, err = s.db.Exec(`INSERT INTO progress (key, value, updated_at)
        VALUES (?, ?, CURRENT_TIMESTAMP)
        ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, string(raw))
	if err != nil {
		return fmt.Errorf("failed to save key '%s': %w", key, err)
	}

	utils.LogDB("Saved key '%s' (%d bytes) in %v", key, len(raw), time.Since(start))
	return nil
}

func (s *Store) Close() error {
	utils.LogShutdown("Closing progress store")
	return s.db.Close()
}
