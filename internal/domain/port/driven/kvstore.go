package driven

import (
	"context"
	"errors"
)

// Sentinel errors returned by KVStore implementations and their callers.
var (
	// ErrStorageUnavailable indicates the key-value store could not be read or written.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrInvalidKey indicates the adapter cannot address the given key.
	ErrInvalidKey = errors.New("invalid storage key")
)

// KVStore defines the driven port for a process-independent string key-value store.
// A missing key is reported as ok == false with a nil error, never as an error.
type KVStore interface {
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)
	SetItem(ctx context.Context, key, value string) error
}
