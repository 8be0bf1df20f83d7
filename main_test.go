package main

import (
	"context"
	"io/fs"
	"testing"

	"launchdash/internal"
	"launchdash/internal/config"
	"launchdash/internal/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedAssets(t *testing.T) {
	for _, name := range []string{
		"ui/templates/index.html",
		"ui/templates/layout/header.html",
		"ui/templates/controls/payload_slider.html",
		"ui/templates/notes.md",
		"ui/static/js/dashboard.js",
		"ui/static/css/dashboard.css",
	} {
		_, err := fs.Stat(embeddedFiles, name)
		assert.NoError(t, err, name)
	}
}

func TestBundledDatasetLoads(t *testing.T) {
	t.Setenv("DATA_SOURCE", "file")
	t.Setenv("DATA_FILE", "spacex_launch_dash.csv")
	appConfig, err := config.Load()
	require.NoError(t, err)

	source, closeSource, err := newLaunchSource(context.Background(), appConfig, internal.NewNopLogger())
	require.NoError(t, err)
	defer closeSource()

	result, err := dataset.NewLoader(source, internal.NewNopLogger()).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 56, result.Dataset.Len())
	assert.Equal(t, []string{"CCAFS LC-40", "VAFB SLC-4E", "KSC LC-39A", "CCAFS SLC-40"}, result.Dataset.Sites())
	assert.Equal(t, float64(0), result.MinPayloadMassKg)
	assert.Equal(t, float64(9600), result.MaxPayloadMassKg)
}

func TestPostgresSourceRequiresURL(t *testing.T) {
	appConfig := &config.Config{Data: config.DataConfig{Source: config.SourcePostgres}}
	_, _, err := newLaunchSource(context.Background(), appConfig, internal.NewNopLogger())
	assert.Error(t, err)
}
