package charts

import (
	"fmt"
	"strconv"

	"launchdash/domain/chart"
	"launchdash/domain/launch"
)

const allSitesSuccessTitle = "Total Successful Launches for All Sites"

// SiteSuccess builds the launch-outcome pie chart.
//
// For launch.AllSites there is one slice per site sized by the sum of its outcome
// classes, which counts successes only. For a single site there is one slice per
// distinct outcome class ("1" or "0") sized by how often it occurs. A site with no
// records yields a chart with no slices.
func SiteSuccess(selectedSite string, ds *launch.Dataset) chart.Spec {
	var (
		title  string
		groups []group
		value  func([]launch.Record) float64
	)

	if selectedSite == launch.AllSites {
		title = allSitesSuccessTitle
		groups = groupBy(ds.Records(), func(r launch.Record) string { return r.LaunchSite })
		value = sumClass
	} else {
		title = fmt.Sprintf("Total Success vs Failure for %s", selectedSite)
		matching := ds.Filter(func(r launch.Record) bool { return r.LaunchSite == selectedSite })
		groups = groupBy(matching, func(r launch.Record) string { return strconv.Itoa(r.Class) })
		value = func(records []launch.Record) float64 { return float64(len(records)) }
	}

	slices := make([]chart.Slice, 0, len(groups))
	for _, g := range groups {
		slices = append(slices, chart.Slice{Label: g.Key, Value: value(g.Records)})
	}

	return chart.Spec{
		Kind:       chart.KindPie,
		Title:      title,
		Slices:     slices,
		Colors:     chart.AssignColors(keys(groups)),
		ShowLegend: true,
	}
}
