package postgres

import (
	"context"
	"errors"
	"fmt"

	"launchdash/domain/core"
	"launchdash/domain/launch"
	apperrors "launchdash/internal/errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Postgres SQLSTATE codes the repository translates.
const (
	codeUndefinedColumn = "42703"
	codeUndefinedTable  = "42P01"
)

// LaunchRepository reads and seeds launch records in PostgreSQL
type LaunchRepository struct {
	db    *sqlx.DB
	table string
}

// NewLaunchRepository creates a repository over the named table
func NewLaunchRepository(db *sqlx.DB, table string) *LaunchRepository {
	if table == "" {
		table = "launches"
	}
	return &LaunchRepository{db: db, table: table}
}

// Describe names the table for logs and dataset provenance
func (r *LaunchRepository) Describe() string {
	return "postgres:" + r.table
}

// Load returns every launch in insertion order
func (r *LaunchRepository) Load(ctx context.Context) ([]launch.Record, error) {
	var records []launch.Record
	err := r.db.SelectContext(ctx, &records, fmt.Sprintf(`
		SELECT launch_site, payload_mass_kg, class, booster_version_category
		FROM %s
		ORDER BY id
	`, pq.QuoteIdentifier(r.table)))
	if err != nil {
		return nil, r.translate(err)
	}
	return records, nil
}

// ReplaceAll swaps the table contents for records inside one transaction
func (r *LaunchRepository) ReplaceAll(ctx context.Context, records []launch.Record) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, apperrors.DatabaseError("failed to begin transaction", err)
	}
	defer tx.Rollback()

	table := pq.QuoteIdentifier(r.table)
	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return 0, r.translate(err)
	}

	insert := fmt.Sprintf(`
		INSERT INTO %s (launch_site, payload_mass_kg, class, booster_version_category)
		VALUES (:launch_site, :payload_mass_kg, :class, :booster_version_category)
	`, table)
	for i, rec := range records {
		if _, err := tx.NamedExecContext(ctx, insert, rec); err != nil {
			return i, r.translate(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, apperrors.DatabaseError("failed to commit launches", err)
	}
	return len(records), nil
}

func (r *LaunchRepository) translate(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeUndefinedColumn:
			return core.NewMissingColumnError(r.Describe(), []string{pqErr.Message})
		case codeUndefinedTable:
			return fmt.Errorf("%w: table %s", core.ErrNotFound, r.table)
		}
	}
	return apperrors.DatabaseError("launch query failed", err)
}
