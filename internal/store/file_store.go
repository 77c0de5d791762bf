package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"nynf/internal/logging"
	"nynf/internal/txn"
)

// fileStore keeps each storage key as one JSON file under a base
// directory, the local key/value layout the original persisted state used.
type fileStore struct {
	basePath string
	logger   *logging.Logger
}

// NewFileStore creates a file-backed store rooted at basePath
func NewFileStore(basePath string) (Store, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &fileStore{
		basePath: basePath,
		logger:   logging.NewDefaultLogger("store"),
	}, nil
}

func (s *fileStore) Append(record txn.Record) error {
	records := s.All()
	records = append(records, record)
	return s.write(KeyTransactions, records)
}

func (s *fileStore) All() []txn.Record {
	var records []txn.Record
	if !s.read(KeyTransactions, &records) {
		return []txn.Record{}
	}
	return records
}

func (s *fileStore) SaveDraft(key string, draft Draft) error {
	return s.write(key, draft)
}

func (s *fileStore) LoadDraft(key string) (Draft, bool) {
	var draft Draft
	if !s.read(key, &draft) || draft.IsEmpty() {
		return Draft{}, false
	}
	return draft, true
}

func (s *fileStore) ClearDraft(key string) {
	if err := os.Remove(s.filePath(key)); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("failed to clear draft %s: %v", key, err)
	}
}

func (s *fileStore) SetPreference(key, value string) error {
	return s.write(key, value)
}

func (s *fileStore) Preference(key string) string {
	var value string
	if !s.read(key, &value) {
		return ""
	}
	return value
}

func (s *fileStore) filePath(key string) string {
	return filepath.Join(s.basePath, key+".json")
}

// read unmarshals the blob for key into out. A missing or unparseable
// blob reads as absent, never as an error.
func (s *fileStore) read(key string, out any) bool {
	data, err := os.ReadFile(s.filePath(key))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("failed to read %s: %v", key, err)
		}
		return false
	}

	if err := json.Unmarshal(data, out); err != nil {
		s.logger.Warn("corrupt blob for %s, treating as empty: %v", key, err)
		return false
	}
	return true
}

// write marshals value and replaces the blob for key atomically
func (s *fileStore) write(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	filePath := s.filePath(key)
	tempPath := filePath + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tempPath, filePath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to rename file: %w", err)
	}

	return nil
}
