package charts

import (
	"fmt"
	"math"

	"launchdash/domain/chart"
	"launchdash/domain/launch"

	"gonum.org/v1/gonum/stat"
)

const (
	payloadAxis     = "Payload Mass (kg)"
	classAxis       = "class"
	launchSiteHover = "Launch Site"
)

// PayloadScatter builds the payload-versus-outcome scatter chart.
//
// Records are kept when their payload lies in r (inclusive) and, unless
// selectedSite is launch.AllSites, when they were launched from selectedSite.
// Points are grouped into one series per booster version category. An inverted
// range or an empty match yields a chart with no points.
func PayloadScatter(selectedSite string, r launch.PayloadRange, ds *launch.Dataset) chart.Spec {
	matching := ds.Filter(func(rec launch.Record) bool {
		if !r.Contains(rec.PayloadMassKg) {
			return false
		}
		return selectedSite == launch.AllSites || rec.LaunchSite == selectedSite
	})

	titleSite := selectedSite
	if selectedSite == launch.AllSites {
		titleSite = "All Sites"
	}

	groups := groupBy(matching, func(rec launch.Record) string { return rec.BoosterVersionCategory })
	colors := chart.AssignColors(keys(groups))

	series := make([]chart.Series, 0, len(groups))
	for _, g := range groups {
		points := make([]chart.Point, 0, len(g.Records))
		for _, rec := range g.Records {
			points = append(points, chart.Point{
				X:     rec.PayloadMassKg,
				Y:     float64(rec.Class),
				Hover: map[string]string{launchSiteHover: rec.LaunchSite},
			})
		}
		series = append(series, chart.Series{Name: g.Key, Color: colors[g.Key], Points: points})
	}

	return chart.Spec{
		Kind:        chart.KindScatter,
		Title:       fmt.Sprintf("Correlation between Payload and Success for %s", titleSite),
		XAxis:       payloadAxis,
		YAxis:       classAxis,
		Series:      series,
		HoverFields: []string{launchSiteHover},
		Colors:      colors,
		ShowLegend:  true,
		Correlation: correlation(matching),
	}
}

// correlation returns the Pearson coefficient of payload against class, or nil
// when fewer than two points exist or either axis is constant.
func correlation(records []launch.Record) *float64 {
	if len(records) < 2 {
		return nil
	}
	xs := make([]float64, len(records))
	ys := make([]float64, len(records))
	for i, rec := range records {
		xs[i] = rec.PayloadMassKg
		ys[i] = float64(rec.Class)
	}
	if stat.Variance(xs, nil) == 0 || stat.Variance(ys, nil) == 0 {
		return nil
	}
	c := stat.Correlation(xs, ys, nil)
	if math.IsNaN(c) {
		return nil
	}
	return &c
}
