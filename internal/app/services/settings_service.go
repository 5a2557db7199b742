package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/studentforce/internal/app/models"
	"github.com/yigit/studentforce/internal/app/repositories"
	"github.com/yigit/studentforce/internal/app/store"
	"github.com/yigit/studentforce/internal/pkg/apperrors"
	"github.com/yigit/studentforce/internal/pkg/filestorage"
	"github.com/yigit/studentforce/internal/pkg/spreadsheet"
)

// importArchiveDir is the storage sub path for archived uploads
const importArchiveDir = "imports"

// SettingsService covers the current user and whole-dataset operations
type SettingsService struct {
	store   *store.Store
	archive filestorage.FileStorage
	log     zerolog.Logger
}

// NewSettingsService creates a new settings service instance
func NewSettingsService(s *store.Store) *SettingsService {
	return &SettingsService{store: s, log: zerolog.Nop()}
}

// WithArchive keeps a copy of every uploaded workbook in storage
func (s *SettingsService) WithArchive(storage filestorage.FileStorage, log zerolog.Logger) *SettingsService {
	s.archive = storage
	s.log = log
	return s
}

// CurrentUser returns the signed-in user
func (s *SettingsService) CurrentUser() models.User {
	return s.store.Snapshot().CurrentUser
}

// UpdateCurrentUser changes the user's name, email or avatar
func (s *SettingsService) UpdateCurrentUser(ctx context.Context, patch models.UserPatch) (models.User, error) {
	merged := patch.Apply(s.CurrentUser())
	v := violations{}
	v.required("name", merged.Name, "Name is required")
	v.email("email", merged.Email)
	if err := v.err(); err != nil {
		return models.User{}, err
	}
	return s.store.UpdateCurrentUser(ctx, patch)
}

// Export encodes the current snapshot as a versioned JSON document
func (s *SettingsService) Export() ([]byte, error) {
	return repositories.Encode(s.store.Snapshot())
}

// ExportWorkbook renders the current snapshot as an xlsx workbook
func (s *SettingsService) ExportWorkbook() ([]byte, error) {
	var buf bytes.Buffer
	if err := spreadsheet.WriteSnapshot(&buf, s.store.Snapshot()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Import replaces every record with the given JSON document. Legacy documents
// are upgraded; malformed ones are rejected and nothing changes.
func (s *SettingsService) Import(ctx context.Context, document []byte) error {
	snapshot, err := repositories.Decode(document)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrSnapshotInvalid, apperrors.ErrSnapshotVersion) {
			return apperrors.NewCustomError(apperrors.ErrBadRequest, err.Error())
		}
		return err
	}
	return s.store.Replace(ctx, snapshot)
}

// Reset restores the seed dataset
func (s *SettingsService) Reset(ctx context.Context) error {
	return s.store.Reset(ctx)
}

// Clear removes every record but keeps the current user
func (s *SettingsService) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}

// RowError describes one rejected spreadsheet row
type RowError struct {
	Row    int                    `json:"row"`
	Fields map[string]interface{} `json:"fields"`
}

// ImportResult summarizes a student spreadsheet import
type ImportResult struct {
	Imported []string   `json:"imported"`
	Rejected []RowError `json:"rejected"`
}

// ImportStudents adds every valid student row of an xlsx upload. Invalid rows
// are reported and skipped; a persistence failure stops the import.
func (s *SettingsService) ImportStudents(ctx context.Context, workbook []byte, filename string) (ImportResult, error) {
	rows, err := spreadsheet.ReadStudents(bytes.NewReader(workbook))
	if err != nil {
		return ImportResult{}, apperrors.NewCustomError(apperrors.ErrBadRequest, err.Error())
	}

	if s.archive != nil {
		info, err := s.archive.Archive(bytes.NewReader(workbook), filename, importArchiveDir)
		if err != nil {
			s.log.Warn().Err(err).Str("filename", filename).Msg("Failed to archive student import")
		} else {
			s.log.Info().Str("path", info.Path).Int64("size", info.FileSize).Msg("Archived student import")
		}
	}

	result := ImportResult{Imported: []string{}, Rejected: []RowError{}}
	for _, row := range rows {
		st := row.Student
		if st.Status == "" {
			st.Status = models.StudentActive
		}
		if err := validateStudent(st); err != nil {
			result.Rejected = append(result.Rejected, RowError{Row: row.Row, Fields: apperrors.DetailsOf(err)})
			continue
		}
		id, err := s.store.AddStudent(ctx, st)
		if err != nil {
			return result, fmt.Errorf("error importing row %d: %w", row.Row, err)
		}
		result.Imported = append(result.Imported, id)
	}
	return result, nil
}
