package api

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"launchdash/domain/core"
	"launchdash/domain/launch"
	"launchdash/internal/errors"
)

// ParseSelection turns query parameters into a Selection over ds.
//
// A missing site means launch.AllSites and missing bounds mean the dataset
// extremes. Unknown sites, non-numeric bounds and low > high are rejected as
// INVALID_INPUT. Bounds outside the dataset extremes are clamped, which never
// changes which records match.
func ParseSelection(q url.Values, ds *launch.Dataset) (launch.Selection, error) {
	sel := launch.Selection{Site: strings.TrimSpace(q.Get("site")), Payload: ds.FullRange()}
	if sel.Site == "" {
		sel.Site = launch.AllSites
	}
	if !sel.IsAllSites() && !ds.HasSite(sel.Site) {
		return sel, errors.WithCode(errors.CodeInvalidInput,
			errors.Wrapf(core.ErrUnknownSite, "site %q", sel.Site))
	}

	var err error
	if sel.Payload.Low, err = parseBound(q, "low", sel.Payload.Low); err != nil {
		return sel, err
	}
	if sel.Payload.High, err = parseBound(q, "high", sel.Payload.High); err != nil {
		return sel, err
	}
	if sel.Payload.Low > sel.Payload.High {
		return sel, errors.WithCode(errors.CodeInvalidInput,
			errors.Wrapf(core.ErrInvertedRange, "low %g > high %g", sel.Payload.Low, sel.Payload.High))
	}

	sel.Payload = sel.Payload.Clamp(ds.MinPayloadMassKg(), ds.MaxPayloadMassKg())
	return sel, nil
}

func parseBound(q url.Values, key string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.InvalidInput(fmt.Sprintf("%s must be a finite number, got %q", key, raw))
	}
	return v, nil
}

// SiteOption is one entry of the site dropdown.
type SiteOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SiteOptions lists "All Sites" followed by each site in dataset order.
func SiteOptions(ds *launch.Dataset) []SiteOption {
	sites := ds.Sites()
	options := make([]SiteOption, 0, len(sites)+1)
	options = append(options, SiteOption{Label: "All Sites", Value: launch.AllSites})
	for _, site := range sites {
		options = append(options, SiteOption{Label: site, Value: site})
	}
	return options
}

// Slider describes the payload range control.
type Slider struct {
	Min   float64    `json:"min"`
	Max   float64    `json:"max"`
	Step  float64    `json:"step"`
	Value [2]float64 `json:"value"`
	Marks []Mark     `json:"marks"`
}

// Mark labels one slider position.
type Mark struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// NewSlider spans the dataset payloads, marked at the integer extremes, with the
// whole range selected.
func NewSlider(ds *launch.Dataset, step float64) Slider {
	min, max := ds.MinPayloadMassKg(), ds.MaxPayloadMassKg()
	marks := []Mark{{Value: math.Trunc(min), Label: strconv.Itoa(int(min))}}
	if int(max) != int(min) {
		marks = append(marks, Mark{Value: math.Trunc(max), Label: strconv.Itoa(int(max))})
	}
	return Slider{
		Min:   min,
		Max:   max,
		Step:  step,
		Value: [2]float64{min, max},
		Marks: marks,
	}
}
