package migration

import (
	"context"
	"fmt"

	"launchdash/internal/errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Migrator defines the interface for database migration operations
type Migrator interface {
	Run(ctx context.Context, db *sqlx.DB) error
	Version() string
}

// MigrationRunner creates the launch records schema
type MigrationRunner struct {
	version string
	table   string
}

// NewRunner creates a migration runner for the named launches table
func NewRunner(table string) *MigrationRunner {
	if table == "" {
		table = "launches"
	}
	return &MigrationRunner{
		version: "1.0.0",
		table:   table,
	}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in the correct order
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createLaunchesTable(ctx, db); err != nil {
		return errors.Wrapf(err, "failed to create %s table", r.table)
	}

	if err := r.createIndexes(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create indexes")
	}

	return nil
}

// CreateTableSQL returns the DDL for the launches table.
func (r *MigrationRunner) CreateTableSQL() string {
	return fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id BIGSERIAL PRIMARY KEY,
			launch_site TEXT NOT NULL CHECK (launch_site <> ''),
			payload_mass_kg DOUBLE PRECISION NOT NULL CHECK (payload_mass_kg >= 0),
			class SMALLINT NOT NULL CHECK (class IN (0, 1)),
			booster_version_category TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)
	`, pq.QuoteIdentifier(r.table))
}

func (r *MigrationRunner) createLaunchesTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, r.CreateTableSQL())
	return err
}

func (r *MigrationRunner) createIndexes(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, fmt.Sprintf(
		`CREATE INDEX IF NOT EXISTS %s ON %s (launch_site)`,
		pq.QuoteIdentifier("idx_"+r.table+"_launch_site"),
		pq.QuoteIdentifier(r.table),
	))
	return err
}
