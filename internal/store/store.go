// Package store persists the small amount of client state that survives
// restarts: the credential, the derived identity, and the theme preference.
// It is the local analogue of the browser profile the web product kept this
// state in, backed by an embedded Badger database.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/travelapp/travelplanner-client/internal/errors"
)

// Fixed storage keys. Other packages address state through these only.
const (
	KeyToken    = "session:token"
	KeyIdentity = "session:identity"
	KeyTheme    = "settings:theme"
)

// ErrNotFound is returned when a key has no value.
var ErrNotFound = errors.NotFound("key not found")

// Store wraps a Badger database holding client state.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

// Open opens (or creates) the store at path.
func Open(path string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	// Badger's own logger is chatty at info level; route it through ours at
	// debug only.
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open store at %s: %w", path, err)
	}

	return &Store{db: db, logger: logger}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// GetString returns the value for key, or ErrNotFound.
func (s *Store) GetString(key string) (string, error) {
	var value string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			value = string(val)
			return nil
		})
	})
	if err != nil {
		return "", err
	}
	return value, nil
}

// SetString stores value under key.
func (s *Store) SetString(key, value string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// GetJSON unmarshals the value for key into out, or returns ErrNotFound.
func (s *Store) GetJSON(key string, out any) error {
	raw, err := s.GetString(key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// SetJSON marshals value and stores it under key.
func (s *Store) SetJSON(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.SetString(key, string(raw))
}
