package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/studentforce/internal/pkg/apperrors"
	"github.com/yigit/studentforce/internal/pkg/dberrors"
	"github.com/yigit/studentforce/internal/pkg/logger"
)

const (
	snapshotsTable         = "snapshots"
	schemaVersionCheckName = "snapshots_schema_version_check"
)

// ErrSchemaMissing is returned when the snapshots table does not exist
var ErrSchemaMissing = errors.New("snapshots table is missing, run the migrations")

// PostgresBackend stores the document as a jsonb row in the snapshots table
type PostgresBackend struct {
	db  *pgxpool.Pool
	key string
	// Use squirrel instance with placeholder format
	sb squirrel.StatementBuilderType
}

// NewPostgresBackend creates a new PostgresBackend
func NewPostgresBackend(db *pgxpool.Pool, key string) *PostgresBackend {
	return &PostgresBackend{
		db:  db,
		key: key,
		sb:  squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Load selects the document stored under the backend key
func (b *PostgresBackend) Load(ctx context.Context) ([]byte, error) {
	sql, args, err := b.sb.Select("document").
		From(snapshotsTable).
		Where(squirrel.Eq{"key": b.key}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building load snapshot SQL")
		return nil, fmt.Errorf("failed to build load snapshot query: %w", err)
	}

	var document []byte
	err = b.db.QueryRow(ctx, sql, args...).Scan(&document)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSnapshotNotFound
		}
		if dberrors.IsUndefinedTable(err) {
			return nil, ErrSchemaMissing
		}
		logger.Error().Err(err).Str("key", b.key).Msg("Error scanning snapshot row")
		return nil, fmt.Errorf("error loading snapshot: %w", err)
	}

	return document, nil
}

// Save upserts the document under the backend key
func (b *PostgresBackend) Save(ctx context.Context, data []byte) error {
	version, err := DocumentVersion(data)
	if err != nil {
		return err
	}

	sql, args, err := b.sb.Insert(snapshotsTable).
		Columns("key", "document", "schema_version", "updated_at").
		Values(b.key, string(data), version, time.Now().UTC()).
		Suffix("ON CONFLICT (key) DO UPDATE SET document = EXCLUDED.document, " +
			"schema_version = EXCLUDED.schema_version, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building save snapshot SQL")
		return fmt.Errorf("failed to build save snapshot query: %w", err)
	}

	if _, err := b.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUndefinedTable(err) {
			return ErrSchemaMissing
		}
		if dberrors.IsCheckViolation(err, schemaVersionCheckName) {
			return fmt.Errorf("%w: schema version %d rejected", apperrors.ErrSnapshotVersion, version)
		}
		logger.Error().Err(err).Str("key", b.key).Msg("Error executing save snapshot query")
		return fmt.Errorf("error saving snapshot: %w", err)
	}
	return nil
}

// Close is a no-op; the pool is owned by the caller that opened it
func (b *PostgresBackend) Close() error { return nil }

// Name returns "postgres"
func (b *PostgresBackend) Name() string { return "postgres" }
