// Package store provides the key/blob persistence layer backing entity
// collections. Each collection is serialized as a single value under a fixed
// key; callers own serialization and concurrency beyond single-writer use.
package store

import (
	"context"
	"errors"
)

// ErrKeyNotFound signals that no value has ever been written for the key.
var ErrKeyNotFound = errors.New("store: key not found")

// Store is the minimal contract for collection blob persistence.
type Store interface {
	// Read returns the blob stored under key, or ErrKeyNotFound.
	Read(ctx context.Context, key string) ([]byte, error)
	// Write replaces the blob stored under key.
	Write(ctx context.Context, key string, value []byte) error
	// Delete removes the key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
}
