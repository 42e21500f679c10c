package storage

import (
	"encoding/json"

	"github.com/rs/zerolog/log"
)

// Backend is the raw persistence medium under the store. Implementations
// must be safe for concurrent use.
type Backend interface {
	// Load returns the raw value at key. The second result is false when
	// the key is absent.
	Load(key string) ([]byte, bool, error)
	Save(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// Store is the JSON codec over a Backend. Reads fall back to a
// caller-supplied default on any failure; writes are fire-and-forget.
// Failures never propagate to the caller, they are logged at warn level.
type Store struct {
	backend Backend
	prefix  string
}

// New creates a store over the given backend. Every key is namespaced with
// prefix to keep entities from colliding in a shared medium.
func New(backend Backend, prefix string) *Store {
	return &Store{backend: backend, prefix: prefix}
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

func (s *Store) fullKey(key string) string {
	return s.prefix + key
}

// Get reads and decodes the value at key. On a missing key, a read error or
// an undecodable value it returns def.
func Get[T any](s *Store, key string, def T) T {
	raw, ok, err := s.backend.Load(s.fullKey(key))
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Failed to read from storage")
		return def
	}
	if !ok {
		return def
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Failed to decode stored value")
		return def
	}
	return value
}

// Set encodes value and writes it at key. A rejected write is dropped;
// callers must not assume the write succeeded.
func Set(s *Store, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Failed to encode value for storage")
		return
	}
	if err := s.backend.Save(s.fullKey(key), raw); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Failed to write to storage")
	}
}

// Remove deletes the value at key, if any.
func (s *Store) Remove(key string) {
	if err := s.backend.Delete(s.fullKey(key)); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Failed to remove from storage")
	}
}
