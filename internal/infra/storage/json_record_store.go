// File: internal/infra/storage/json_record_store.go
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"womens-health-tracker/internal/domain"
	"womens-health-tracker/internal/domain/model"
	"womens-health-tracker/internal/domain/ports/repository"
)

// storeIndent matches the 4-space pretty printing of store files written by
// earlier releases; existing user_data.json files must keep loading and
// diffing cleanly.
const storeIndent = "    "

// Compile-time check
var _ repository.RecordRepository = (*JSONRecordStore)(nil)

// JSONRecordStore is a flat-file adapter for repository.RecordRepository.
// The full store lives in memory and the backing file is rewritten wholesale
// after every write. There is no cross-process locking: two processes sharing
// one file will clobber each other, which the serial interactive driver never
// does.
type JSONRecordStore struct {
	mu      sync.RWMutex
	path    string
	records map[string]*model.UserRecord
	log     *zerolog.Logger
}

// NewJSONRecordStore opens the store at path, loading whatever is persisted
// there. A missing file yields an empty store. A malformed file yields an
// empty store too, after the corrupt file is quarantined by rename so the
// old data survives for manual recovery.
func NewJSONRecordStore(path string, logger *zerolog.Logger) (*JSONRecordStore, error) {
	s := &JSONRecordStore{
		path:    path,
		records: make(map[string]*model.UserRecord),
		log:     logger,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *JSONRecordStore) load() error {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read store %s: %w", s.path, err)
	}

	var records map[string]*model.UserRecord
	if err := json.Unmarshal(b, &records); err != nil {
		s.log.Warn().Err(domain.ErrCorruptStore).Str("path", s.path).
			Msg("store file failed to parse; reinitializing with empty data")
		s.quarantine()
		return nil
	}
	for _, rec := range records {
		rec.Normalize()
	}
	if records != nil {
		s.records = records
	}
	return nil
}

// quarantine renames the unreadable store file out of the way instead of
// letting the next save overwrite it.
func (s *JSONRecordStore) quarantine() {
	backup := fmt.Sprintf("%s.corrupt-%s", s.path, time.Now().Format("20060102150405"))
	if err := os.Rename(s.path, backup); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("could not quarantine corrupt store file")
		return
	}
	s.log.Info().Str("backup", backup).Msg("corrupt store file quarantined")
}

// persist rewrites the whole store file. Callers hold the write lock.
func (s *JSONRecordStore) persist() error {
	b, err := encodeStore(s.records)
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write store %s: %w", s.path, err)
	}
	return nil
}

// encodeStore produces the wire form of the full store: pretty-printed JSON,
// 4-space indent, no HTML escaping and no trailing newline, byte-compatible
// with files written by earlier releases.
func encodeStore(records map[string]*model.UserRecord) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", storeIndent)
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Find looks up a record by username and returns a deep copy.
func (s *JSONRecordStore) Find(ctx context.Context, username string) (*model.UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return rec.Clone(), nil
}

// Exists reports whether the username is registered.
func (s *JSONRecordStore) Exists(ctx context.Context, username string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.records[username]
	return ok, nil
}

// Save inserts or replaces the record and rewrites the store file.
func (s *JSONRecordStore) Save(ctx context.Context, username string, rec *model.UserRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[username] = rec.Clone()
	return s.persist()
}

// Count returns the number of registered usernames.
func (s *JSONRecordStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}
