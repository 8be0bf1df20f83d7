package main

import (
	"context"
	"embed"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"launchdash/adapters/postgres"
	"launchdash/adapters/tabular"
	"launchdash/internal"
	"launchdash/internal/config"
	"launchdash/internal/dataset"
	"launchdash/internal/errors"
	"launchdash/internal/migration"
	"launchdash/ports"
	"launchdash/ui"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"
)

//go:embed ui/templates/** ui/static/*
var embeddedFiles embed.FS

// initDatabase opens the Postgres connection and makes sure the launches table exists
func initDatabase(ctx context.Context, appConfig *config.Config) (*sqlx.DB, error) {
	if appConfig.Database.URL == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}

	db, err := sqlx.ConnectContext(ctx, "postgres", appConfig.Database.URL)
	if err != nil {
		return nil, errors.DatabaseError("failed to connect to database", err)
	}

	migrator := migration.NewRunner(appConfig.Database.Table)
	if err := migrator.Run(ctx, db); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "database migration failed")
	}

	return db, nil
}

// newLaunchSource picks the configured data source
func newLaunchSource(ctx context.Context, appConfig *config.Config, logger *internal.Logger) (ports.LaunchSource, func(), error) {
	if appConfig.Data.Source == config.SourcePostgres {
		db, err := initDatabase(ctx, appConfig)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewLaunchRepository(db, appConfig.Database.Table), func() { db.Close() }, nil
	}
	return tabular.NewFileSource(appConfig.Data.File, appConfig.Data.Sheet, logger), func() {}, nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		internal.DefaultLogger.Debug("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		internal.DefaultLogger.Error("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	logger := internal.NewFormattedLogger(internal.ParseLogLevel(appConfig.Logging.Level), appConfig.Logging.Format)
	internal.DefaultLogger = logger
	defer logger.Sync()

	if err := run(appConfig, logger); err != nil {
		logger.Error("launch dashboard stopped: %v", err)
		logger.Sync()
		os.Exit(1)
	}
}

func run(appConfig *config.Config, logger *internal.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, closeSource, err := newLaunchSource(ctx, appConfig, logger)
	if err != nil {
		return err
	}
	defer closeSource()

	// The dataset is fully loaded before any handler exists.
	result, err := dataset.NewLoader(source, logger).Load(ctx)
	if err != nil {
		return err
	}

	gin.SetMode(appConfig.Server.GinMode)
	server := ui.NewServer(embeddedFiles, logger)
	if err := server.Initialize(result, ui.Options{
		Title:       appConfig.UI.Title,
		PayloadStep: appConfig.UI.PayloadStep,
		NotesFile:   appConfig.UI.NotesFile,
	}); err != nil {
		return errors.Wrap(err, "failed to initialize server")
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Start(gctx, ":"+appConfig.Server.Port, appConfig.Server.ShutdownTimeout)
	})

	if appConfig.Profiling.Enabled {
		pprofServer := &http.Server{
			Addr:              ":" + appConfig.Profiling.Port,
			Handler:           http.DefaultServeMux,
			ReadHeaderTimeout: 10 * time.Second,
		}
		g.Go(func() error {
			logger.Info("Performance profiling server starting on :%s", appConfig.Profiling.Port)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), appConfig.Server.ShutdownTimeout)
			defer cancel()
			return pprofServer.Shutdown(shutdownCtx)
		})
	}

	return g.Wait()
}
