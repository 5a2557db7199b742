package repositories

import (
	"context"
	"sync"
)

// MemoryBackend keeps the document in process memory. Nothing survives a restart.
type MemoryBackend struct {
	mu   sync.RWMutex
	data []byte
}

// NewMemoryBackend creates an empty MemoryBackend
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

// Load returns a copy of the stored document
func (b *MemoryBackend) Load(ctx context.Context) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.data == nil {
		return nil, ErrSnapshotNotFound
	}
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out, nil
}

// Save stores a copy of data
func (b *MemoryBackend) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stored := make([]byte, len(data))
	copy(stored, data)

	b.mu.Lock()
	b.data = stored
	b.mu.Unlock()
	return nil
}

// Close is a no-op
func (b *MemoryBackend) Close() error { return nil }

// Name returns "memory"
func (b *MemoryBackend) Name() string { return "memory" }
