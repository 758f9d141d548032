// Package storage is the client's durable key/value store: the access token
// slot and per-collection filter preferences, kept in a local sqlite file so
// they survive restarts. Single writer, last-writer-wins.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/maintdesk/maintdesk/internal/dbx"
)

// Well-known setting keys.
const (
	keyAccessToken = "access_token"
	keyFilterFmt   = "filters/%s"
)

// Store reads and writes settings rows. It works against either *sql.DB or a
// transaction via dbx.DBTX.
type Store struct {
	db dbx.DBTX
}

func New(db dbx.DBTX) *Store {
	return &Store{db: db}
}

func (s *Store) get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings[%s]: %w", key, err)
	}
	return value, nil
}

func (s *Store) set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set settings[%s]: %w", key, err)
	}
	return nil
}

func (s *Store) delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete settings[%s]: %w", key, err)
	}
	return nil
}

// AccessToken returns the stored token, or "" when logged out. It satisfies
// api.TokenSource.
func (s *Store) AccessToken(ctx context.Context) (string, error) {
	v, err := s.get(ctx, keyAccessToken)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// SetAccessToken overwrites the single token slot.
func (s *Store) SetAccessToken(ctx context.Context, token string) error {
	return s.set(ctx, keyAccessToken, []byte(token))
}

// ClearAccessToken removes the token slot (logout).
func (s *Store) ClearAccessToken(ctx context.Context) error {
	return s.delete(ctx, keyAccessToken)
}

// SaveFilter persists a filter-preference struct under the collection name
// ("tickets", "machines", "users").
func (s *Store) SaveFilter(ctx context.Context, collection string, filter any) error {
	raw, err := json.Marshal(filter)
	if err != nil {
		return fmt.Errorf("encoding %s filter: %w", collection, err)
	}
	return s.set(ctx, fmt.Sprintf(keyFilterFmt, collection), raw)
}

// LoadFilter restores a previously saved filter into dst. It reports whether
// a saved value existed; when it returns false, dst is left untouched so the
// caller's defaults apply.
func (s *Store) LoadFilter(ctx context.Context, collection string, dst any) (bool, error) {
	raw, err := s.get(ctx, fmt.Sprintf(keyFilterFmt, collection))
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decoding %s filter: %w", collection, err)
	}
	return true, nil
}

// SaveAllFilters persists several collections' filter preferences in a single
// transaction, so a crash mid-save cannot leave a torn preference set. Used
// by the CLI on shutdown.
func SaveAllFilters(ctx context.Context, db *sql.DB, filters map[string]any) error {
	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		s := New(tx)
		for collection, f := range filters {
			if err := s.SaveFilter(ctx, collection, f); err != nil {
				return err
			}
		}
		return nil
	})
}
