/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/

// Package memory persists the application state as JSON documents under
// string keys. Backends: SQLite (default), files, Redis and in-process memory.
package memory

import (
	"context"
	"errors"
)

// Keys of the persisted documents. Each value is overwritten wholesale on save.
const (
	KeyPlan       = "fitness_plan"
	KeyProfile    = "user_profile"
	KeyQuoteCache = "daily_quote_cache"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("not found")

// Store is a key-value store of JSON documents.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}
