package storage

import "sync"

// MemoryBackend keeps values in an in-process map. It is the test medium
// and the fallback when no durable path is configured.
type MemoryBackend struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string][]byte)}
}

// Load returns the value at key.
func (b *MemoryBackend) Load(key string) ([]byte, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	raw, ok := b.values[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return cp, true, nil
}

// Save stores value at key, overwriting any previous value.
func (b *MemoryBackend) Save(key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	cp := make([]byte, len(value))
	copy(cp, value)
	b.values[key] = cp
	return nil
}

// Delete removes the value at key.
func (b *MemoryBackend) Delete(key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.values, key)
	return nil
}

// Close is a no-op for the in-memory backend.
func (b *MemoryBackend) Close() error {
	return nil
}
