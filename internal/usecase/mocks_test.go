// File: internal/usecase/mocks_test.go
package usecase

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"womens-health-tracker/internal/domain"
	"womens-health-tracker/internal/domain/model"
)

// memRecordRepo is a small in-memory implementation used by unit tests.
type memRecordRepo struct {
	mu      sync.RWMutex
	store   map[string]*model.UserRecord
	saveErr error // used by tests to simulate persistence failures
}

func newMemRecordRepo() *memRecordRepo {
	return &memRecordRepo{store: make(map[string]*model.UserRecord)}
}

func (m *memRecordRepo) Find(ctx context.Context, username string) (*model.UserRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.store[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return rec.Clone(), nil
}

func (m *memRecordRepo) Exists(ctx context.Context, username string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.store[username]
	return ok, nil
}

func (m *memRecordRepo) Save(ctx context.Context, username string, rec *model.UserRecord) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store[username] = rec.Clone()
	return nil
}

func (m *memRecordRepo) Count(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.store), nil
}

func newTestLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}
