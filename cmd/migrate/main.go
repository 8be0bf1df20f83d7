package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"launchdash/adapters/postgres"
	"launchdash/adapters/tabular"
	"launchdash/domain/launch"
	"launchdash/internal"
	"launchdash/internal/errors"
	"launchdash/internal/migration"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

type migrateOptions struct {
	databaseURL string
	table       string
	dataFile    string
	sheet       string
	schemaOnly  bool
}

func main() {
	if err := godotenv.Load(); err != nil {
		internal.DefaultLogger.Debug("[Migrate] No .env file found, using system environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &migrateOptions{}

	cmd := &cobra.Command{
		Use:   "launchdash-migrate",
		Short: "Create the launches table and seed it from a CSV or XLSX file",
		Long: `Create the launches table and seed it from a CSV or XLSX file.

Existing rows are replaced in a single transaction, so the dashboard
never observes a half-seeded table.

Example: launchdash-migrate --database-url postgres://localhost/launches --data spacex_launch_dash.csv`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, internal.DefaultLogger)
		},
	}

	cmd.Flags().StringVar(&opts.databaseURL, "database-url", os.Getenv("DATABASE_URL"), "Postgres connection string")
	cmd.Flags().StringVar(&opts.table, "table", envOr("DATABASE_TABLE", "launches"), "Launches table name")
	cmd.Flags().StringVar(&opts.dataFile, "data", envOr("DATA_FILE", "spacex_launch_dash.csv"), "CSV or XLSX launch records file")
	cmd.Flags().StringVar(&opts.sheet, "sheet", envOr("DATA_SHEET", "Sheet1"), "Worksheet to read from XLSX files")
	cmd.Flags().BoolVar(&opts.schemaOnly, "schema-only", false, "Create the table without seeding it")

	return cmd
}

func run(ctx context.Context, opts *migrateOptions, logger *internal.Logger) error {
	if opts.databaseURL == "" {
		return errors.ConfigInvalid("DATABASE_URL is required (flag --database-url)")
	}

	var records []launch.Record
	if !opts.schemaOnly {
		// Validate the file before touching the database.
		source := tabular.NewFileSource(opts.dataFile, opts.sheet, logger)
		loaded, err := source.Load(ctx)
		if err != nil {
			return errors.LoadError(source.Describe(), err)
		}
		if _, err := launch.NewDataset(source.Describe(), loaded); err != nil {
			return errors.LoadError(source.Describe(), err)
		}
		records = loaded
	}

	db, err := sqlx.ConnectContext(ctx, "postgres", opts.databaseURL)
	if err != nil {
		return errors.DatabaseError("failed to connect to database", err)
	}
	defer db.Close()

	runner := migration.NewRunner(opts.table)
	if err := runner.Run(ctx, db); err != nil {
		return err
	}
	logger.Info("[Migrate] Schema version %s applied to %s", runner.Version(), opts.table)

	if opts.schemaOnly {
		return nil
	}

	n, err := postgres.NewLaunchRepository(db, opts.table).ReplaceAll(ctx, records)
	if err != nil {
		return errors.Wrapf(err, "seeded %d of %d launches before failing", n, len(records))
	}
	logger.Info("[Migrate] Seeded %d launches from %s into %s", n, opts.dataFile, opts.table)
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
