// Package dataset builds the in-memory launch Dataset from a configured source.
package dataset

import (
	"context"
	"time"

	"launchdash/domain/launch"
	"launchdash/internal"
	"launchdash/internal/errors"
	"launchdash/ports"
)

// Result is a loaded Dataset together with its derived payload scalars.
type Result struct {
	Dataset          *launch.Dataset
	MinPayloadMassKg float64
	MaxPayloadMassKg float64
	Summary          launch.PayloadSummary
}

// Loader reads a LaunchSource once and validates it into a Dataset.
type Loader struct {
	source ports.LaunchSource
	logger *internal.Logger
}

// NewLoader creates a loader for source.
func NewLoader(source ports.LaunchSource, logger *internal.Logger) *Loader {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Loader{source: source, logger: logger}
}

// Load reads and validates every record. Any failure, including an empty source,
// is returned as a LOAD_ERROR.
func (l *Loader) Load(ctx context.Context) (*Result, error) {
	start := time.Now()
	name := l.source.Describe()

	records, err := l.source.Load(ctx)
	if err != nil {
		l.logger.Error("[Loader] Failed to read %s: %v", name, err)
		return nil, errors.LoadError(name, err)
	}

	ds, err := launch.NewDataset(name, records)
	if err != nil {
		l.logger.Error("[Loader] Rejected %s: %v", name, err)
		return nil, errors.LoadError(name, err)
	}

	summary, err := Summarize(ds)
	if err != nil {
		return nil, errors.LoadError(name, err)
	}

	l.logger.Info("[Loader] Loaded %d launches from %s in %s (snapshot %s, sites %v, payload %.0f-%.0f kg)",
		ds.Len(), name, time.Since(start).Round(time.Millisecond), ds.ID(), ds.Sites(),
		ds.MinPayloadMassKg(), ds.MaxPayloadMassKg())

	return &Result{
		Dataset:          ds,
		MinPayloadMassKg: ds.MinPayloadMassKg(),
		MaxPayloadMassKg: ds.MaxPayloadMassKg(),
		Summary:          summary,
	}, nil
}
