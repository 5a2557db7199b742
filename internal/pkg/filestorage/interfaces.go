package filestorage

import (
	"io"
)

// FileInfo represents information about an archived file
type FileInfo struct {
	Path     string // Path relative to the storage root
	Filename string // Original filename
	FileSize int64  // Size in bytes
}

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// ReadFile returns the content of name, or an error wrapping fs.ErrNotExist
	ReadFile(name string) ([]byte, error)

	// WriteFile atomically replaces name with data
	WriteFile(name string, data []byte) error

	// Archive copies r into subPath under a unique name derived from filename
	Archive(r io.Reader, filename, subPath string) (*FileInfo, error)

	// DeleteFile removes a file from storage
	DeleteFile(name string) error

	// GetFullPath returns the full filesystem path for a stored name
	GetFullPath(name string) string
}
