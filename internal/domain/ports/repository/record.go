package repository

import (
	"context"

	"womens-health-tracker/internal/domain/model"
)

// -----------------------------
// Records
// -----------------------------

// RecordRepository is the explicit handle to the persisted record store.
// Every operation goes through an injected instance; there is no ambient
// singleton. Implementations persist the full store after every successful
// write and promise nothing across processes.
type RecordRepository interface {
	// Find returns a deep copy of the record, or domain.ErrUserNotFound.
	Find(ctx context.Context, username string) (*model.UserRecord, error)
	// Exists reports whether the username is registered.
	Exists(ctx context.Context, username string) (bool, error)
	// Save inserts or replaces the record and persists the whole store.
	Save(ctx context.Context, username string, rec *model.UserRecord) error
	// Count returns the number of registered usernames.
	Count(ctx context.Context) (int, error)
}
