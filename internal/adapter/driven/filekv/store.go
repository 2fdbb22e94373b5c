// Package filekv stores each key-value pair as a file in a directory.
package filekv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/ericfisherdev/skylands/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.KVStore = (*Store)(nil)

const fileExt = ".json"

// Store is a KVStore that keeps one file per key under dir. Writes replace the
// file atomically so readers never observe a partially written value.
type Store struct {
	dir string
}

// New creates the directory if needed and returns a Store rooted at it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %q: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// GetItem returns the value stored under key. ok is false if the key is absent.
func (s *Store) GetItem(ctx context.Context, key string) (string, bool, error) {
	path, err := s.pathFor(key)
	if err != nil {
		return "", false, err
	}
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read item %q: %w", key, err)
	}
	return string(data), true, nil
}

// SetItem atomically replaces the file for key with value.
func (s *Store) SetItem(ctx context.Context, key, value string) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := atomic.WriteFile(path, strings.NewReader(value)); err != nil {
		return fmt.Errorf("write item %q: %w", key, err)
	}
	return nil
}

// pathFor maps key to a file inside dir. Only ASCII letters, digits, '-' and
// '_' are accepted so a key can never escape the directory.
func (s *Store) pathFor(key string) (string, error) {
	if key == "" {
		return "", driven.ErrInvalidKey
	}
	for _, ch := range key {
		if !isValidKeyChar(ch) {
			return "", fmt.Errorf("%w: %q", driven.ErrInvalidKey, key)
		}
	}
	return filepath.Join(s.dir, key+fileExt), nil
}

func isValidKeyChar(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9') ||
		ch == '-' || ch == '_'
}
