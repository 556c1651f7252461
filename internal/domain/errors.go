package domain

import "errors"

var (
	// Common domain errors
	ErrDuplicateUser  = errors.New("user already exists")
	ErrUserNotFound   = errors.New("user not found")
	ErrInvalidDate    = errors.New("invalid date")
	ErrNoCycleDetails = errors.New("no cycle details set")
	ErrCorruptStore   = errors.New("persisted store is corrupted")
)
