// Package metadata is a tiny key/value table in the local SQLite store.
package metadata

import (
	"context"
)

// Repository reads and writes metadata values. Get returns (nil, nil) for an
// absent key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}
