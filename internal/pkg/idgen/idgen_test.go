package idgen

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGeneratorUnique(t *testing.T) {
	gen := UUIDGenerator{}
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := gen.NewID()
		if _, err := uuid.Parse(id); err != nil {
			t.Fatalf("expected uuid, got %q: %v", id, err)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = struct{}{}
	}
}

func TestSequenceGenerator(t *testing.T) {
	gen := NewSequenceGenerator("st")
	if got := gen.NewID(); got != "st-1" {
		t.Fatalf("expected st-1, got %s", got)
	}
	if got := gen.NewID(); got != "st-2" {
		t.Fatalf("expected st-2, got %s", got)
	}

	bare := NewSequenceGenerator("")
	if got := bare.NewID(); got != "1" {
		t.Fatalf("expected 1, got %s", got)
	}
}

func TestNewSelectsGenerator(t *testing.T) {
	if _, ok := New("sequence", "x").(*SequenceGenerator); !ok {
		t.Fatalf("expected sequence generator")
	}
	if _, ok := New("uuid", "").(UUIDGenerator); !ok {
		t.Fatalf("expected uuid generator")
	}
}
