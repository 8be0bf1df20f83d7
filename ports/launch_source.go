package ports

import (
	"context"

	"launchdash/domain/launch"
)

// LaunchSource yields the raw launch rows the Dataset is built from.
type LaunchSource interface {
	// Load reads every launch record in source order.
	Load(ctx context.Context) ([]launch.Record, error)
	// Describe names the source for logs and provenance, e.g. a file path or table.
	Describe() string
}
