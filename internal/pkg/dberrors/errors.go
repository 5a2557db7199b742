package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn" // Import pgconn for PgError
)

// SQLSTATE codes the snapshot backend reacts to
const (
	codeUndefinedTable = "42P01"
	codeCheckViolation = "23514"
)

// IsUndefinedTable reports whether err is a PostgreSQL error for a missing
// relation, which happens when the migrations have not been applied.
func IsUndefinedTable(err error) bool {
	return hasCode(err, codeUndefinedTable)
}

// IsCheckViolation reports whether err is a CHECK constraint failure for the
// named constraint.
func IsCheckViolation(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeCheckViolation && pgErr.ConstraintName == constraintName
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
