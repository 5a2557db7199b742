package repositories

import (
	"context"
	"errors"
	"io/fs"

	"github.com/yigit/studentforce/internal/pkg/filestorage"
)

// FileBackend stores the document as <key>.json inside a storage directory
type FileBackend struct {
	storage filestorage.FileStorage
	name    string
}

// NewFileBackend creates a FileBackend writing key through storage
func NewFileBackend(storage filestorage.FileStorage, key string) *FileBackend {
	return &FileBackend{storage: storage, name: key + ".json"}
}

// Load reads the document file
func (b *FileBackend) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := b.storage.ReadFile(b.name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrSnapshotNotFound
		}
		return nil, err
	}
	return data, nil
}

// Save atomically replaces the document file
func (b *FileBackend) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.storage.WriteFile(b.name, data)
}

// Close is a no-op
func (b *FileBackend) Close() error { return nil }

// Name returns "file"
func (b *FileBackend) Name() string { return "file" }
