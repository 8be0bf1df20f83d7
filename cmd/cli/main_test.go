package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

const launchCSV = `Flight Number,Launch Site,class,Payload Mass (kg),Booster Version,Booster Version Category
1,CCAFS LC-40,0,0,F9 v1.0  B0003,v1.0
2,CCAFS LC-40,1,2395,F9 FT B1021.1,FT
3,KSC LC-39A,1,2490,F9 FT B1031.1,FT
4,KSC LC-39A,0,6070,F9 B4 B1039.2,B4
5,VAFB SLC-4E,1,9600,F9 FT B1036.1,FT
`

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	data := filepath.Join(t.TempDir(), "launches.csv")
	require.NoError(t, os.WriteFile(data, []byte(launchCSV), 0o644))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--data", data))
	err := cmd.Execute()
	return out.String(), err
}

func TestSitesCommand(t *testing.T) {
	out, err := runCLI(t, "sites")
	require.NoError(t, err)

	options := gjson.Parse(out)
	assert.Equal(t, int64(4), options.Get("#").Int())
	assert.Equal(t, "ALL", options.Get("0.value").String())
	assert.Equal(t, "VAFB SLC-4E", options.Get("3.label").String())
}

func TestSummaryCommand(t *testing.T) {
	out, err := runCLI(t, "summary")
	require.NoError(t, err)

	summary := gjson.Parse(out)
	assert.Equal(t, int64(5), summary.Get("records").Int())
	assert.Equal(t, float64(9600), summary.Get("payload.max").Float())
	assert.Equal(t, float64(2490), summary.Get("payload.median").Float())
}

func TestPieCommand(t *testing.T) {
	out, err := runCLI(t, "pie")
	require.NoError(t, err)
	assert.Equal(t, "Total Successful Launches for All Sites", gjson.Get(out, "title").String())

	out, err = runCLI(t, "pie", "KSC LC-39A", "--format", "yaml")
	require.NoError(t, err)

	var spec map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &spec))
	assert.Equal(t, "pie", spec["kind"])
	assert.Equal(t, "Total Success vs Failure for KSC LC-39A", spec["title"])
	assert.Len(t, spec["slices"], 2)

	_, err = runCLI(t, "pie", "Boca Chica")
	assert.Error(t, err)
}

func TestScatterCommand(t *testing.T) {
	out, err := runCLI(t, "scatter", "--site", "CCAFS LC-40", "--low", "2000", "--high", "6000")
	require.NoError(t, err)

	spec := gjson.Parse(out)
	assert.Equal(t, "Correlation between Payload and Success for CCAFS LC-40", spec.Get("title").String())
	assert.Equal(t, int64(1), spec.Get("series.#").Int())
	assert.Equal(t, float64(2395), spec.Get("series.0.points.0.x").Float())

	_, err = runCLI(t, "scatter", "--low", "6000", "--high", "2000")
	assert.Error(t, err)
}

func TestRejectsUnknownFormat(t *testing.T) {
	_, err := runCLI(t, "sites", "--format", "toml")
	assert.ErrorContains(t, err, "unsupported --format")
}

func TestMissingDataFile(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"sites", "--data", filepath.Join(t.TempDir(), "missing.csv")})
	assert.ErrorContains(t, cmd.Execute(), "failed to load launch data")
}
