package filestorage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/yigit/studentforce/internal/pkg/logger"
)

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string // The root directory where files will be stored
}

// NewLocalStorage creates a new LocalStorage instance rooted at basePath,
// creating the directory when needed.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{basePath: basePath}, nil
}

// ReadFile reads a file relative to the storage root
func (ls *LocalStorage) ReadFile(name string) ([]byte, error) {
	path := ls.GetFullPath(name)
	if path == "" {
		return nil, fmt.Errorf("invalid file name: %q", name)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// WriteFile writes data to a temporary file next to name and renames it into
// place, so readers never observe a partially written file.
func (ls *LocalStorage) WriteFile(name string, data []byte) error {
	path := ls.GetFullPath(name)
	if path == "" {
		return fmt.Errorf("invalid file name: %q", name)
	}

	tmp, err := os.CreateTemp(ls.basePath, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Failed to create temporary file")
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		logger.Error().Err(err).Str("path", path).Msg("Failed to move file into place")
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// Archive copies r into subPath under a collision-free name that keeps the
// extension of filename.
func (ls *LocalStorage) Archive(r io.Reader, filename, subPath string) (*FileInfo, error) {
	fullDirPath := ls.basePath
	if subPath != "" {
		fullDirPath = filepath.Join(ls.basePath, subPath)
		if err := os.MkdirAll(fullDirPath, 0o755); err != nil {
			logger.Error().Err(err).Str("path", fullDirPath).Msg("Failed to create subdirectory")
			return nil, fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	uniqueFilename := uuid.New().String() + filepath.Ext(filename)
	dstPath := filepath.Join(fullDirPath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return nil, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, r)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy file content")
		_ = os.Remove(dstPath)
		return nil, fmt.Errorf("failed to save file content: %w", err)
	}

	info := &FileInfo{
		Path:     filepath.Join(subPath, uniqueFilename),
		Filename: filename,
		FileSize: size,
	}
	logger.Info().Str("filename", filename).Str("saved_as", info.Path).Int64("size", size).Msg("File archived")
	return info, nil
}

// DeleteFile removes a file from the storage root.
// Returns nil if the file doesn't exist.
func (ls *LocalStorage) DeleteFile(name string) error {
	path := ls.GetFullPath(name)
	if path == "" {
		return fmt.Errorf("invalid file name: %q", name)
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("path", path).Msg("File to delete does not exist")
			return nil
		}
		logger.Error().Err(err).Str("path", path).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// GetFullPath returns the filesystem path of name. Names that would escape the
// storage root yield "".
func (ls *LocalStorage) GetFullPath(name string) string {
	clean := filepath.Clean("/" + name)
	if clean == "/" {
		return ""
	}
	return filepath.Join(ls.basePath, clean)
}
