package migrations

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestEmbeddedMigrationsOrdered(t *testing.T) {
	migrations, err := Embedded()
	if err != nil {
		t.Fatalf("embedded: %v", err)
	}
	if len(migrations) < 1 {
		t.Fatalf("expected at least one migration")
	}
	if migrations[0].Version != "001" || !strings.Contains(migrations[0].SQL, "CREATE TABLE IF NOT EXISTS snapshots") {
		t.Fatalf("unexpected first migration: %+v", migrations[0])
	}
	for i := 1; i < len(migrations); i++ {
		if migrations[i-1].Version >= migrations[i].Version {
			t.Fatalf("migrations out of order: %s then %s", migrations[i-1].Name, migrations[i].Name)
		}
	}
}

func TestCollectSkipsNonSQLAndRejectsDuplicates(t *testing.T) {
	fsys := fstest.MapFS{
		"m/002_b.sql": {Data: []byte("SELECT 2;")},
		"m/001_a.sql": {Data: []byte("SELECT 1;")},
		"m/README.md": {Data: []byte("notes")},
		"m/sub/x.sql": {Data: []byte("SELECT 3;")},
	}
	migrations, err := Collect(fsys, "m")
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(migrations) != 2 || migrations[0].Name != "001_a.sql" || migrations[1].Version != "002" {
		t.Fatalf("unexpected migrations: %+v", migrations)
	}

	fsys["m/002_c.sql"] = &fstest.MapFile{Data: []byte("SELECT 4;")}
	if _, err := Collect(fsys, "m"); err == nil {
		t.Fatalf("expected duplicate version error")
	}
}
