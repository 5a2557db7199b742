package repositories

import (
	"encoding/json"
	"fmt"

	"github.com/yigit/studentforce/internal/app/models"
	"github.com/yigit/studentforce/internal/pkg/apperrors"
)

// upgrade moves a decoded document from version n to n+1
type upgrade func(s *models.Snapshot) error

// upgrades is indexed by the version being upgraded from.
var upgrades = map[int]upgrade{
	// Version 0 is the unversioned layout: the same collections without a
	// version field, and assignments whose endDate may be missing.
	0: func(s *models.Snapshot) error {
		s.Normalize()
		return nil
	},
}

type documentHeader struct {
	Version *int `json:"version"`
}

// DocumentVersion returns the schema version recorded in data. Documents
// without a version field report 0.
func DocumentVersion(data []byte) (int, error) {
	var header documentHeader
	if err := json.Unmarshal(data, &header); err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrSnapshotInvalid, err)
	}
	if header.Version == nil {
		return 0, nil
	}
	return *header.Version, nil
}

// Encode serializes a snapshot as a version-stamped JSON document.
// The snapshot itself is not modified.
func Encode(s *models.Snapshot) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: snapshot is nil", apperrors.ErrSnapshotInvalid)
	}
	doc := s.Clone()
	doc.Version = models.SchemaVersion
	doc.Normalize()

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// Decode parses a snapshot document, upgrading older layouts and validating
// the result. Newer versions fail with apperrors.ErrSnapshotVersion; malformed
// or structurally invalid documents fail with apperrors.ErrSnapshotInvalid.
func Decode(data []byte) (*models.Snapshot, error) {
	version, err := DocumentVersion(data)
	if err != nil {
		return nil, err
	}
	if version > models.SchemaVersion || version < 0 {
		return nil, fmt.Errorf("%w: document version %d, supported %d",
			apperrors.ErrSnapshotVersion, version, models.SchemaVersion)
	}

	snapshot := &models.Snapshot{}
	if err := json.Unmarshal(data, snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSnapshotInvalid, err)
	}

	for v := version; v < models.SchemaVersion; v++ {
		step, ok := upgrades[v]
		if !ok {
			return nil, fmt.Errorf("%w: no upgrade from version %d", apperrors.ErrSnapshotVersion, v)
		}
		if err := step(snapshot); err != nil {
			return nil, fmt.Errorf("upgrade from version %d: %w", v, err)
		}
	}

	snapshot.Version = models.SchemaVersion
	snapshot.Normalize()
	if err := snapshot.Validate(); err != nil {
		return nil, err
	}
	return snapshot, nil
}
