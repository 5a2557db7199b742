package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
	"github.com/yigit/studentforce/internal/app/models"
	"github.com/yigit/studentforce/internal/pkg/apperrors"
	"github.com/yigit/studentforce/internal/pkg/filestorage"
	"github.com/yigit/studentforce/internal/seed"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := seed.Build()

	data, err := Encode(original)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(original, decoded) {
		t.Fatalf("round trip changed the snapshot")
	}
}

func TestEncodeEmptyCollectionsAsArrays(t *testing.T) {
	data, err := Encode(&models.Snapshot{CurrentUser: seed.CurrentUser()})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"students", "courses", "professors", "marks", "enrollments", "assignments"} {
		if string(raw[key]) != "[]" {
			t.Fatalf("expected %s to encode as [], got %s", key, raw[key])
		}
	}
	if string(raw["version"]) != "1" {
		t.Fatalf("expected version 1, got %s", raw["version"])
	}
}

func TestDecodeUpgradesLegacyDocument(t *testing.T) {
	data, err := Encode(seed.Build())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	delete(raw, "version")
	delete(raw, "assignments")
	legacy, _ := json.Marshal(raw)

	if v, err := DocumentVersion(legacy); err != nil || v != 0 {
		t.Fatalf("expected legacy version 0, got %d (%v)", v, err)
	}

	snapshot, err := Decode(legacy)
	if err != nil {
		t.Fatalf("decode legacy: %v", err)
	}
	if snapshot.Version != models.SchemaVersion {
		t.Fatalf("expected upgraded version %d, got %d", models.SchemaVersion, snapshot.Version)
	}
	if snapshot.Assignments == nil || len(snapshot.Assignments) != 0 {
		t.Fatalf("expected missing collection to become empty, got %v", snapshot.Assignments)
	}
	if len(snapshot.Students) != 10 {
		t.Fatalf("expected 10 students, got %d", len(snapshot.Students))
	}
}

func TestDecodeRejectsBadDocuments(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"not json", "{oops", apperrors.ErrSnapshotInvalid},
		{"newer version", `{"version": 99, "currentUser": {"id": "u", "role": "Admin"}}`, apperrors.ErrSnapshotVersion},
		{"wrong shape", `{"version": 1, "students": {"id": "x"}}`, apperrors.ErrSnapshotInvalid},
		{"duplicate ids", `{"version": 1, "students": [{"id": "a", "status": "Active"}, {"id": "a", "status": "Active"}], "currentUser": {"id": "u", "role": "Admin"}}`, apperrors.ErrSnapshotInvalid},
		{"unknown status", `{"version": 1, "courses": [{"id": "c", "status": "Archived"}], "currentUser": {"id": "u", "role": "Admin"}}`, apperrors.ErrSnapshotInvalid},
		{"no current user", `{"version": 1}`, apperrors.ErrSnapshotInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.doc))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestMemoryBackend(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()

	if _, err := backend.Load(ctx); !errors.Is(err, ErrSnapshotNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	payload := []byte(`{"version":1}`)
	if err := backend.Save(ctx, payload); err != nil {
		t.Fatalf("save: %v", err)
	}
	payload[0] = 'x'

	got, err := backend.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != `{"version":1}` {
		t.Fatalf("expected stored copy, got %s", got)
	}
}

func TestFileBackendPersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	storage, err := filestorage.NewLocalStorage(dir)
	if err != nil {
		t.Fatalf("storage: %v", err)
	}
	backend := NewFileBackend(storage, "studentforceData")

	if _, err := backend.Load(ctx); !errors.Is(err, ErrSnapshotNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	repo := NewSnapshotRepository(backend, zerolog.Nop())
	if err := repo.Save(ctx, seed.Build()); err != nil {
		t.Fatalf("save: %v", err)
	}

	reopened, err := filestorage.NewLocalStorage(dir)
	if err != nil {
		t.Fatalf("storage: %v", err)
	}
	loaded, err := NewSnapshotRepository(NewFileBackend(reopened, "studentforceData"), zerolog.Nop()).Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded.Marks) != 11 {
		t.Fatalf("expected 11 marks, got %d", len(loaded.Marks))
	}
}

type failingBackend struct{ MemoryBackend }

func (b *failingBackend) Save(ctx context.Context, data []byte) error {
	return errors.New("disk full")
}

func TestSnapshotRepositoryWrapsPersistenceErrors(t *testing.T) {
	repo := NewSnapshotRepository(&failingBackend{}, zerolog.Nop())
	err := repo.Save(context.Background(), seed.Build())
	if !errors.Is(err, apperrors.ErrPersistence) {
		t.Fatalf("expected persistence error, got %v", err)
	}
}
