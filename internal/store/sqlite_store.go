package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"nynf/internal/logging"
	"nynf/internal/txn"
)

// sqliteStore implements the Store interface on SQLite. Records live in an
// append-only table ordered by rowid; drafts and preferences share a
// key/value table.
type sqliteStore struct {
	db     *sql.DB
	logger *logging.Logger
}

// NewSQLiteStore creates a SQLite-backed store under basePath
func NewSQLiteStore(basePath string) (Store, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	dbPath := filepath.Join(basePath, "nynf.db")
	return newSQLiteStore("file:" + dbPath + "?_journal_mode=WAL")
}

// NewMemorySQLiteStore creates an in-memory store, used by tests
func NewMemorySQLiteStore() (Store, error) {
	return newSQLiteStore(":memory:")
}

func newSQLiteStore(dsn string) (Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &sqliteStore{
		db:     db,
		logger: logging.NewDefaultLogger("store"),
	}

	if err := store.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

func (s *sqliteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS transactions (
		id TEXT PRIMARY KEY,
		record TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`

	_, err := s.db.Exec(schema)
	return err
}

func (s *sqliteStore) Append(record txn.Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	_, err = s.db.Exec("INSERT INTO transactions (id, record) VALUES (?, ?)", record.ID, string(data))
	if err != nil {
		return fmt.Errorf("failed to append record: %w", err)
	}
	return nil
}

func (s *sqliteStore) All() []txn.Record {
	rows, err := s.db.Query("SELECT record FROM transactions ORDER BY rowid")
	if err != nil {
		s.logger.Warn("failed to read transactions, treating as empty: %v", err)
		return []txn.Record{}
	}
	defer func() { _ = rows.Close() }()

	records := []txn.Record{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			s.logger.Warn("failed to scan record row: %v", err)
			continue
		}

		var record txn.Record
		if err := json.Unmarshal([]byte(data), &record); err != nil {
			s.logger.Warn("corrupt record row, skipping: %v", err)
			continue
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		s.logger.Warn("failed to iterate records: %v", err)
	}
	return records
}

func (s *sqliteStore) SaveDraft(key string, draft Draft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	return s.setKV(key, string(data))
}

func (s *sqliteStore) LoadDraft(key string) (Draft, bool) {
	value, ok := s.getKV(key)
	if !ok {
		return Draft{}, false
	}

	var draft Draft
	if err := json.Unmarshal([]byte(value), &draft); err != nil {
		s.logger.Warn("corrupt draft for %s, treating as empty: %v", key, err)
		return Draft{}, false
	}
	if draft.IsEmpty() {
		return Draft{}, false
	}
	return draft, true
}

func (s *sqliteStore) ClearDraft(key string) {
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		s.logger.Warn("failed to clear draft %s: %v", key, err)
	}
}

func (s *sqliteStore) SetPreference(key, value string) error {
	return s.setKV(key, value)
}

func (s *sqliteStore) Preference(key string) string {
	value, _ := s.getKV(key)
	return value
}

func (s *sqliteStore) setKV(key, value string) error {
	_, err := s.db.Exec(
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	if err != nil {
		return fmt.Errorf("failed to store %s: %w", key, err)
	}
	return nil
}

func (s *sqliteStore) getKV(key string) (string, bool) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err != nil {
		if err != sql.ErrNoRows {
			s.logger.Warn("failed to read %s: %v", key, err)
		}
		return "", false
	}
	return value, true
}
