package charts

import (
	"sync"
	"testing"

	"launchdash/domain/chart"
	"launchdash/domain/launch"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDataset(t *testing.T, records ...launch.Record) *launch.Dataset {
	t.Helper()
	ds, err := launch.NewDataset("test", records)
	require.NoError(t, err)
	return ds
}

func scenarioDataset(t *testing.T) *launch.Dataset {
	return newDataset(t,
		launch.Record{LaunchSite: "A", PayloadMassKg: 500, Class: 1, BoosterVersionCategory: "v1"},
		launch.Record{LaunchSite: "A", PayloadMassKg: 1500, Class: 0, BoosterVersionCategory: "v1"},
		launch.Record{LaunchSite: "B", PayloadMassKg: 3000, Class: 1, BoosterVersionCategory: "v2"},
	)
}

// launchDataset mirrors the shape of the real launch table.
func launchDataset(t *testing.T) *launch.Dataset {
	return newDataset(t,
		launch.Record{LaunchSite: "CCAFS LC-40", PayloadMassKg: 0, Class: 0, BoosterVersionCategory: "v1.0"},
		launch.Record{LaunchSite: "CCAFS LC-40", PayloadMassKg: 525, Class: 0, BoosterVersionCategory: "v1.0"},
		launch.Record{LaunchSite: "CCAFS LC-40", PayloadMassKg: 677, Class: 0, BoosterVersionCategory: "v1.0"},
		launch.Record{LaunchSite: "VAFB SLC-4E", PayloadMassKg: 500, Class: 0, BoosterVersionCategory: "v1.1"},
		launch.Record{LaunchSite: "CCAFS LC-40", PayloadMassKg: 3170, Class: 0, BoosterVersionCategory: "v1.1"},
		launch.Record{LaunchSite: "CCAFS LC-40", PayloadMassKg: 2395, Class: 1, BoosterVersionCategory: "FT"},
		launch.Record{LaunchSite: "KSC LC-39A", PayloadMassKg: 2490, Class: 1, BoosterVersionCategory: "FT"},
		launch.Record{LaunchSite: "KSC LC-39A", PayloadMassKg: 5600, Class: 1, BoosterVersionCategory: "FT"},
		launch.Record{LaunchSite: "VAFB SLC-4E", PayloadMassKg: 9600, Class: 1, BoosterVersionCategory: "FT"},
		launch.Record{LaunchSite: "KSC LC-39A", PayloadMassKg: 6070, Class: 0, BoosterVersionCategory: "B4"},
		launch.Record{LaunchSite: "CCAFS SLC-40", PayloadMassKg: 4850, Class: 1, BoosterVersionCategory: "B4"},
		launch.Record{LaunchSite: "CCAFS SLC-40", PayloadMassKg: 3600, Class: 0, BoosterVersionCategory: "B5"},
		launch.Record{LaunchSite: "KSC LC-39A", PayloadMassKg: 3681, Class: 1, BoosterVersionCategory: "B5"},
	)
}

func TestSiteSuccessScenario(t *testing.T) {
	ds := scenarioDataset(t)

	all := SiteSuccess(launch.AllSites, ds)
	assert.Equal(t, chart.KindPie, all.Kind)
	assert.Equal(t, "Total Successful Launches for All Sites", all.Title)
	assert.Equal(t, []chart.Slice{{Label: "A", Value: 1}, {Label: "B", Value: 1}}, all.Slices)

	siteA := SiteSuccess("A", ds)
	assert.Equal(t, "Total Success vs Failure for A", siteA.Title)
	assert.Equal(t, []chart.Slice{{Label: "1", Value: 1}, {Label: "0", Value: 1}}, siteA.Slices)
}

func TestPayloadScatterScenario(t *testing.T) {
	ds := scenarioDataset(t)
	r := launch.PayloadRange{Low: 0, High: 2000}

	all := PayloadScatter(launch.AllSites, r, ds)
	assert.Equal(t, chart.KindScatter, all.Kind)
	assert.Equal(t, "Correlation between Payload and Success for All Sites", all.Title)
	require.Len(t, all.Points(), 2)
	for _, p := range all.Points() {
		assert.Equal(t, "A", p.Hover["Launch Site"])
	}

	siteB := PayloadScatter("B", r, ds)
	assert.Equal(t, "Correlation between Payload and Success for B", siteB.Title)
	assert.Empty(t, siteB.Points())
}

func TestSiteSuccessAllCountsSuccesses(t *testing.T) {
	ds := launchDataset(t)
	spec := SiteSuccess(launch.AllSites, ds)

	var successes float64
	for _, rec := range ds.Records() {
		if rec.Succeeded() {
			successes++
		}
	}
	assert.Equal(t, successes, spec.Total())
	assert.Len(t, spec.Slices, len(ds.Sites()))

	for i, site := range ds.Sites() {
		assert.Equal(t, site, spec.Slices[i].Label)
	}
	v, ok := spec.SliceValue("CCAFS LC-40")
	require.True(t, ok)
	assert.Equal(t, 1.0, v)
}

func TestSiteSuccessPartitionsSite(t *testing.T) {
	ds := launchDataset(t)

	for _, site := range ds.Sites() {
		t.Run(site, func(t *testing.T) {
			spec := SiteSuccess(site, ds)
			matching := ds.Filter(func(r launch.Record) bool { return r.LaunchSite == site })
			assert.Equal(t, float64(len(matching)), spec.Total())

			var wins float64
			for _, rec := range matching {
				wins += float64(rec.Class)
			}
			got, _ := spec.SliceValue("1")
			assert.Equal(t, wins, got)
			assert.LessOrEqual(t, len(spec.Slices), 2)
		})
	}
}

func TestSiteSuccessUnknownSiteIsEmpty(t *testing.T) {
	spec := SiteSuccess("Boca Chica", launchDataset(t))
	assert.Equal(t, "Total Success vs Failure for Boca Chica", spec.Title)
	assert.NotNil(t, spec.Slices)
	assert.Empty(t, spec.Slices)
	assert.Zero(t, spec.Total())
}

func TestPayloadScatterRangeIsInclusive(t *testing.T) {
	ds := launchDataset(t)

	spec := PayloadScatter(launch.AllSites, launch.PayloadRange{Low: 2395, High: 3170}, ds)
	xs := map[float64]bool{}
	for _, p := range spec.Points() {
		xs[p.X] = true
	}
	assert.True(t, xs[2395], "low bound must be included")
	assert.True(t, xs[3170], "high bound must be included")
	assert.Len(t, spec.Points(), 3)

	narrowed := PayloadScatter(launch.AllSites, launch.PayloadRange{Low: 2396, High: 3169}, ds)
	for _, p := range narrowed.Points() {
		assert.NotEqual(t, 2395.0, p.X)
		assert.NotEqual(t, 3170.0, p.X)
	}
	assert.Len(t, narrowed.Points(), 1)
}

func TestPayloadScatterComposesSiteFilter(t *testing.T) {
	ds := launchDataset(t)
	r := launch.PayloadRange{Low: 500, High: 6000}

	for _, site := range ds.Sites() {
		spec := PayloadScatter(site, r, ds)
		for _, p := range spec.Points() {
			assert.Equal(t, site, p.Hover["Launch Site"])
			assert.True(t, r.Contains(p.X))
		}
	}

	kscOnly := PayloadScatter("KSC LC-39A", r, ds)
	assert.Len(t, kscOnly.Points(), 3)
}

func TestPayloadScatterSeriesByBooster(t *testing.T) {
	ds := launchDataset(t)
	spec := PayloadScatter(launch.AllSites, ds.FullRange(), ds)

	require.Len(t, spec.Points(), ds.Len())
	names := make([]string, len(spec.Series))
	for i, s := range spec.Series {
		names[i] = s.Name
		assert.Equal(t, spec.Colors[s.Name], s.Color)
		for _, p := range s.Points {
			assert.Contains(t, []float64{0, 1}, p.Y)
		}
	}
	assert.Equal(t, []string{"v1.0", "v1.1", "FT", "B4", "B5"}, names)
	assert.Equal(t, []string{"Launch Site"}, spec.HoverFields)
	assert.Equal(t, "Payload Mass (kg)", spec.XAxis)
	require.NotNil(t, spec.Correlation)
	assert.InDelta(t, 0, *spec.Correlation, 1)
}

func TestPayloadScatterEmptyAndInverted(t *testing.T) {
	ds := launchDataset(t)

	empty := PayloadScatter(launch.AllSites, launch.PayloadRange{Low: 9700, High: 20000}, ds)
	assert.Empty(t, empty.Points())
	assert.Nil(t, empty.Correlation)

	inverted := PayloadScatter(launch.AllSites, launch.PayloadRange{Low: 5000, High: 1000}, ds)
	assert.Empty(t, inverted.Points())
}

func TestPayloadScatterConstantAxisHasNoCorrelation(t *testing.T) {
	ds := newDataset(t,
		launch.Record{LaunchSite: "A", PayloadMassKg: 100, Class: 1, BoosterVersionCategory: "v1"},
		launch.Record{LaunchSite: "A", PayloadMassKg: 200, Class: 1, BoosterVersionCategory: "v1"},
	)
	spec := PayloadScatter(launch.AllSites, ds.FullRange(), ds)
	assert.Len(t, spec.Points(), 2)
	assert.Nil(t, spec.Correlation)
}

func TestAggregatorsAreDeterministic(t *testing.T) {
	ds := launchDataset(t)
	r := launch.PayloadRange{Low: 0, High: 5000}

	for _, site := range append([]string{launch.AllSites}, ds.Sites()...) {
		if diff := cmp.Diff(SiteSuccess(site, ds), SiteSuccess(site, ds)); diff != "" {
			t.Errorf("SiteSuccess(%q) mismatch (-first +second):\n%s", site, diff)
		}
		if diff := cmp.Diff(PayloadScatter(site, r, ds), PayloadScatter(site, r, ds)); diff != "" {
			t.Errorf("PayloadScatter(%q) mismatch (-first +second):\n%s", site, diff)
		}
	}
}

func TestAggregatorsConcurrentUse(t *testing.T) {
	ds := launchDataset(t)
	want := PayloadScatter(launch.AllSites, ds.FullRange(), ds)
	wantPie := SiteSuccess(launch.AllSites, ds)

	var wg sync.WaitGroup
	errs := make(chan string, 32)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if diff := cmp.Diff(want, PayloadScatter(launch.AllSites, ds.FullRange(), ds)); diff != "" {
				errs <- diff
			}
			if diff := cmp.Diff(wantPie, SiteSuccess(launch.AllSites, ds)); diff != "" {
				errs <- diff
			}
		}()
	}
	wg.Wait()
	close(errs)
	for diff := range errs {
		t.Errorf("concurrent result differs:\n%s", diff)
	}
}
