package api

import (
	"net/url"
	"testing"

	"launchdash/domain/core"
	"launchdash/domain/launch"
	"launchdash/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelectionDefaults(t *testing.T) {
	ds := testResult(t).Dataset

	sel, err := ParseSelection(url.Values{}, ds)
	require.NoError(t, err)
	assert.True(t, sel.IsAllSites())
	assert.Equal(t, launch.PayloadRange{Low: 0, High: 9600}, sel.Payload)
}

func TestParseSelectionClampsBounds(t *testing.T) {
	ds := testResult(t).Dataset

	sel, err := ParseSelection(url.Values{"site": {"KSC LC-39A"}, "low": {"-500"}, "high": {"12000"}}, ds)
	require.NoError(t, err)
	assert.Equal(t, "KSC LC-39A", sel.Site)
	assert.Equal(t, launch.PayloadRange{Low: 0, High: 9600}, sel.Payload)
}

func TestParseSelectionErrors(t *testing.T) {
	ds := testResult(t).Dataset

	_, err := ParseSelection(url.Values{"site": {"Nowhere"}}, ds)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidInput(err))
	assert.ErrorIs(t, err, core.ErrUnknownSite)
	assert.Contains(t, err.Error(), `"Nowhere"`)

	_, err = ParseSelection(url.Values{"low": {"3000"}, "high": {"2000"}}, ds)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvertedRange)
	assert.True(t, errors.IsInvalidInput(err))

	_, err = ParseSelection(url.Values{"high": {"NaN"}}, ds)
	assert.True(t, errors.IsInvalidInput(err))
}

func TestSiteOptionsAndSlider(t *testing.T) {
	ds := testResult(t).Dataset

	options := SiteOptions(ds)
	require.Len(t, options, 4)
	assert.Equal(t, SiteOption{Label: "All Sites", Value: launch.AllSites}, options[0])
	assert.Equal(t, "CCAFS LC-40", options[1].Value)

	slider := NewSlider(ds, 1000)
	assert.Equal(t, float64(0), slider.Min)
	assert.Equal(t, float64(9600), slider.Max)
	assert.Equal(t, [2]float64{0, 9600}, slider.Value)
	assert.Equal(t, []Mark{{Value: 0, Label: "0"}, {Value: 9600, Label: "9600"}}, slider.Marks)
}
