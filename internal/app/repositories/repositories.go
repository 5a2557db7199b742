package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/studentforce/internal/app/models"
	"github.com/yigit/studentforce/internal/pkg/apperrors"
)

// ErrSnapshotNotFound is returned by a Backend when no document is stored under its key
var ErrSnapshotNotFound = apperrors.ErrSnapshotNotFound

// Backend is a key-value transport for the raw snapshot document.
// Each backend is bound to a single key.
type Backend interface {
	// Load returns the stored document or ErrSnapshotNotFound.
	Load(ctx context.Context) ([]byte, error)
	// Save replaces the stored document.
	Save(ctx context.Context, data []byte) error
	// Close releases the underlying connection, if any.
	Close() error
	// Name identifies the transport in logs.
	Name() string
}

// SnapshotRepository reads and writes whole snapshots through a Backend,
// applying the versioned document codec.
type SnapshotRepository struct {
	backend Backend
	log     zerolog.Logger
}

// NewSnapshotRepository creates a new SnapshotRepository
func NewSnapshotRepository(backend Backend, log zerolog.Logger) *SnapshotRepository {
	return &SnapshotRepository{
		backend: backend,
		log:     log.With().Str("backend", backend.Name()).Logger(),
	}
}

// Load fetches and decodes the persisted snapshot. Legacy documents are
// upgraded in memory; the caller decides whether to write them back.
func (r *SnapshotRepository) Load(ctx context.Context) (*models.Snapshot, error) {
	data, err := r.backend.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrSnapshotNotFound) {
			return nil, err
		}
		r.log.Error().Err(err).Msg("Error reading snapshot document")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}

	snapshot, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// Save encodes and writes the snapshot. Any failure wraps apperrors.ErrPersistence.
func (r *SnapshotRepository) Save(ctx context.Context, snapshot *models.Snapshot) error {
	data, err := Encode(snapshot)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}

	if err := r.backend.Save(ctx, data); err != nil {
		r.log.Error().Err(err).Int("bytes", len(data)).Msg("Error writing snapshot document")
		return fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}

	r.log.Debug().Int("bytes", len(data)).Msg("Snapshot document saved")
	return nil
}

// Close closes the underlying backend
func (r *SnapshotRepository) Close() error {
	return r.backend.Close()
}
