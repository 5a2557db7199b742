package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUndefinedTable(t *testing.T) {
	err := fmt.Errorf("error loading snapshot: %w", &pgconn.PgError{Code: "42P01"})
	if !IsUndefinedTable(err) {
		t.Fatalf("expected wrapped 42P01 to match")
	}
	if IsUndefinedTable(errors.New("42P01")) {
		t.Fatalf("plain errors must not match")
	}
}

func TestIsCheckViolation(t *testing.T) {
	err := &pgconn.PgError{Code: "23514", ConstraintName: "snapshots_schema_version_check"}
	if !IsCheckViolation(err, "snapshots_schema_version_check") {
		t.Fatalf("expected constraint to match")
	}
	if IsCheckViolation(err, "other_check") {
		t.Fatalf("constraint name must be compared")
	}
}
