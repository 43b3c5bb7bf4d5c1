// Package storage is the key/value persistence adapter: string values under
// string keys, with interchangeable backends chosen once at startup.
package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}
