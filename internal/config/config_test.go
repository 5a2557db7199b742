package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaultsWhenFileMissing(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Server.Port)
	}
	if cfg.Storage.Driver != DriverFile || cfg.Storage.Key != "studentforceData" {
		t.Fatalf("unexpected storage defaults: %+v", cfg.Storage)
	}
	if cfg.Reports.RecentLimit != 5 || cfg.Reports.TopDepartments != 5 {
		t.Fatalf("unexpected report defaults: %+v", cfg.Reports)
	}
}

func TestLoadConfigYAMLThenEnv(t *testing.T) {
	chdir(t, t.TempDir())
	path := writeConfig(t, `
server:
  port: "9090"
storage:
  driver: memory
reports:
  recent_limit: 3
`)
	t.Setenv("REPORTS_RECENT_LIMIT", "7")
	t.Setenv("STUDENTFORCE_SERVER_PORT", "7070")
	t.Setenv("SERVER_PORT", "6060")
	t.Setenv("STORAGE_ARCHIVE_IMPORTS", "yes")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "7070" {
		t.Fatalf("expected prefixed env to win, got %s", cfg.Server.Port)
	}
	if cfg.Storage.Driver != DriverMemory {
		t.Fatalf("expected yaml driver, got %s", cfg.Storage.Driver)
	}
	if cfg.Reports.RecentLimit != 7 {
		t.Fatalf("expected env limit 7, got %d", cfg.Reports.RecentLimit)
	}
	if !cfg.Storage.ArchiveImports {
		t.Fatalf("expected archive imports enabled")
	}
}

func TestLoadConfigReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("ID_GENERATOR=sequence\nID_PREFIX=rec\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	// godotenv sets process variables; register them for cleanup.
	t.Setenv("ID_GENERATOR", "")
	os.Unsetenv("ID_GENERATOR")
	t.Setenv("ID_PREFIX", "")
	os.Unsetenv("ID_PREFIX")

	cfg, err := LoadConfig(filepath.Join(dir, "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.IDs.Generator != "sequence" || cfg.IDs.Prefix != "rec" {
		t.Fatalf("expected .env values, got %+v", cfg.IDs)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	chdir(t, t.TempDir())
	cases := map[string]string{
		"driver":    "storage:\n  driver: cassandra\n",
		"timeout":   "server:\n  read_timeout: soon\n",
		"limit":     "reports:\n  recent_limit: 0\n",
		"generator": "ids:\n  generator: snowflake\n",
		"yaml":      "server: [",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, body)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestDuration(t *testing.T) {
	if Duration("2s", time.Second) != 2*time.Second {
		t.Fatalf("expected parsed duration")
	}
	if Duration("", time.Second) != time.Second {
		t.Fatalf("expected fallback duration")
	}
}
