package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/yigit/studentforce/internal/pkg/apperrors"
)

func fileConfigEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("STORAGE_DRIVER", "file")
	t.Setenv("STORAGE_DIR", dir)
	t.Setenv("SERVER_MODE", "production")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("ID_GENERATOR", "sequence")
	t.Setenv("ID_PREFIX", "t")
	return dir
}

func TestBuildDependenciesWithFileStorage(t *testing.T) {
	dir := fileConfigEnv(t)

	cfg, _, err := LoadConfigAndSetupLogger(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	deps, err := BuildDependencies(context.Background(), cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("build dependencies: %v", err)
	}
	defer deps.Close()

	if _, err := os.Stat(filepath.Join(dir, "studentforceData.json")); err != nil {
		t.Fatalf("seed should be persisted on first start: %v", err)
	}

	router := SetupRouter(cfg, deps, zerolog.Nop())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"storage":"file"`) {
		t.Fatalf("unexpected health response %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	body := `{"name":"Compilers","code":"CS501","description":"Parsing and code generation.","semester":"Fall 2024","credits":3,"duration":16}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/courses", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("create course returned %d %s", w.Code, w.Body.String())
	}

	reopened, err := BuildDependencies(context.Background(), cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	if _, ok := reopened.Store.GetCourseByID("t-1"); !ok {
		t.Fatalf("created course should survive a restart")
	}
}

func TestBuildDependenciesRejectsUnknownDriver(t *testing.T) {
	dir := fileConfigEnv(t)

	cfg, _, err := LoadConfigAndSetupLogger(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	cfg.Storage.Driver = "sqlite"

	_, err = BuildDependencies(context.Background(), cfg, zerolog.Nop())
	if !errors.Is(err, apperrors.ErrUnsupportedDriver) {
		t.Fatalf("expected ErrUnsupportedDriver, got %v", err)
	}
}
