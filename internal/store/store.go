// Package store handles persistence of per-user mood records.
//
// Architecture:
// - SQLite database holding one JSON document per user (mood_records)
// - Corrupt documents optionally copied to quarantined_records before reset
// - A file lock so only one process owns the database
//
// Directory structure:
//
//	<data dir>/
//	├── moodtrack.db     # SQLite database
//	└── moodtrack.lock   # process lock
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/mindguard-ai/moodtrack/internal/mood"
)

// Store persists user mood records.
type Store struct {
	db   *sql.DB
	lock *flock.Flock

	// QuarantineCorrupt copies unreadable documents aside before the user
	// record is reinitialized. When false the corrupt payload is dropped.
	quarantineCorrupt bool

	mu        sync.Mutex
	userLocks map[string]*sync.Mutex
}

// Options configures a Store.
type Options struct {
	QuarantineCorrupt bool
}

// Open creates the data directory, acquires the process lock, and opens the
// database.
func Open(baseDir string, opts Options) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	lock := flock.New(filepath.Join(baseDir, "moodtrack.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire store lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("another process already owns the store at %s", baseDir)
	}

	dbPath := filepath.Join(baseDir, "moodtrack.db")
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{
		db:                db,
		lock:              lock,
		quarantineCorrupt: opts.QuarantineCorrupt,
		userLocks:         make(map[string]*sync.Mutex),
	}

	if err := s.initSchema(); err != nil {
		db.Close()
		_ = lock.Unlock()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

// initSchema creates the database tables.
func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS mood_records (
		user_id TEXT PRIMARY KEY,
		record TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS quarantined_records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT NOT NULL,
		record TEXT NOT NULL,
		quarantined_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// WithUser runs fn while holding the mutation lock for userID. Operations on
// different users proceed in parallel; read-modify-persist for one user is
// serialized so concurrent appends cannot lose writes.
func (s *Store) WithUser(userID string, fn func() error) error {
	s.mu.Lock()
	lock, ok := s.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.userLocks[userID] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	defer lock.Unlock()
	return fn()
}

// Load returns the persisted record for a user, or a fresh empty record when
// none exists. Absence is not an error. An unreadable document is treated as
// absent: it is logged, optionally quarantined, and replaced by the
// empty-state default. Load never fails on missing or corrupt state.
func (s *Store) Load(userID string) *mood.UserRecord {
	var raw string
	err := s.db.QueryRow(`SELECT record FROM mood_records WHERE user_id = ?`, userID).Scan(&raw)
	if err == sql.ErrNoRows {
		return mood.NewUserRecord(userID)
	}
	if err != nil {
		log.Printf("[store] Failed to load record for %s: %v", userID, err)
		return mood.NewUserRecord(userID)
	}

	var record mood.UserRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		log.Printf("[store] Corrupt record for %s, reinitializing: %v", userID, err)
		s.quarantine(userID, raw)
		return mood.NewUserRecord(userID)
	}
	if record.UserID != userID {
		log.Printf("[store] Record for %s carries user_id %q, reinitializing", userID, record.UserID)
		s.quarantine(userID, raw)
		return mood.NewUserRecord(userID)
	}
	if record.Observations == nil {
		record.Observations = []mood.Observation{}
	}
	if record.Insights == nil {
		record.Insights = []mood.Insight{}
	}
	return &record
}

// quarantine copies a corrupt payload aside when configured to do so.
func (s *Store) quarantine(userID, raw string) {
	if !s.quarantineCorrupt {
		return
	}
	_, err := s.db.Exec(`INSERT INTO quarantined_records (user_id, record) VALUES (?, ?)`, userID, raw)
	if err != nil {
		log.Printf("[store] Failed to quarantine record for %s: %v", userID, err)
	}
}

// Save serializes the full record, overwriting any prior state for the user.
// On failure the in-memory record is left intact; there is no retry.
func (s *Store) Save(record *mood.UserRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to serialize record for %s: %w", record.UserID, err)
	}

	_, err = s.db.Exec(`
		INSERT INTO mood_records (user_id, record, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id) DO UPDATE SET record = excluded.record, updated_at = CURRENT_TIMESTAMP
	`, record.UserID, string(data))
	if err != nil {
		return fmt.Errorf("failed to persist record for %s: %w", record.UserID, err)
	}
	return nil
}

// Stats summarizes the store contents.
type Stats struct {
	Users        int
	Observations int
	Insights     int
	Quarantined  int
}

// Stats walks every stored record and counts users, observations, and
// insights.
func (s *Store) Stats() (Stats, error) {
	var stats Stats

	rows, err := s.db.Query(`SELECT user_id, record FROM mood_records`)
	if err != nil {
		return stats, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var userID, raw string
		if err := rows.Scan(&userID, &raw); err != nil {
			return stats, err
		}
		stats.Users++

		var record mood.UserRecord
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			log.Printf("[store] Skipping corrupt record for %s in stats: %v", userID, err)
			continue
		}
		stats.Observations += len(record.Observations)
		stats.Insights += len(record.Insights)
	}
	if err := rows.Err(); err != nil {
		return stats, err
	}

	if err := s.db.QueryRow(`SELECT COUNT(*) FROM quarantined_records`).Scan(&stats.Quarantined); err != nil {
		return stats, err
	}
	return stats, nil
}

// Close releases the database and the process lock.
func (s *Store) Close() error {
	err := s.db.Close()
	if unlockErr := s.lock.Unlock(); unlockErr != nil && err == nil {
		err = unlockErr
	}
	return err
}
