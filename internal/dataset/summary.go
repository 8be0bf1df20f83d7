package dataset

import (
	"launchdash/domain/launch"

	"github.com/montanaflynn/stats"
)

// Summarize describes the payload mass distribution of ds.
func Summarize(ds *launch.Dataset) (launch.PayloadSummary, error) {
	data := make(stats.Float64Data, ds.Len())
	for i := 0; i < ds.Len(); i++ {
		data[i] = ds.At(i).PayloadMassKg
	}

	summary := launch.PayloadSummary{Count: len(data)}
	var err error

	if summary.Min, err = stats.Min(data); err != nil {
		return summary, err
	}
	if summary.Max, err = stats.Max(data); err != nil {
		return summary, err
	}
	if summary.Mean, err = stats.Mean(data); err != nil {
		return summary, err
	}
	if summary.Median, err = stats.Median(data); err != nil {
		return summary, err
	}

	// Percentile rejects very small inputs; fall back to the extremes there.
	summary.Q1 = percentileOr(data, 25, summary.Min)
	summary.Q3 = percentileOr(data, 75, summary.Max)

	return summary, nil
}

func percentileOr(data stats.Float64Data, percent, fallback float64) float64 {
	v, err := stats.Percentile(data, percent)
	if err != nil {
		return fallback
	}
	return v
}
