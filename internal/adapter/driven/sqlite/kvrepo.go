package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ericfisherdev/skylands/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.KVStore = (*KVRepo)(nil)

// KVRepo is the SQLite implementation of the KVStore port interface.
// Each key is a single row in kv_items.
type KVRepo struct {
	db *DB
}

// NewKVRepo creates a new KVRepo.
func NewKVRepo(db *DB) *KVRepo {
	return &KVRepo{db: db}
}

// GetItem returns the value stored under key. ok is false if the key is absent.
func (r *KVRepo) GetItem(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, driven.ErrInvalidKey
	}

	const query = `SELECT value FROM kv_items WHERE key = ?`
	var value string
	err := r.db.Reader.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get item %q: %w", key, err)
	}
	return value, true, nil
}

// SetItem stores or replaces the value under key.
func (r *KVRepo) SetItem(ctx context.Context, key, value string) error {
	if key == "" {
		return driven.ErrInvalidKey
	}

	const query = `
		INSERT INTO kv_items (key, value, updated_at)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`
	_, err := r.db.Writer.ExecContext(ctx, query, key, value)
	if err != nil {
		return fmt.Errorf("set item %q: %w", key, err)
	}
	return nil
}
