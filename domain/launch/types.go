package launch

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"launchdash/domain/core"
)

// AllSites is the selector value that disables site filtering.
const AllSites = "ALL"

// Record is a single launch row.
type Record struct {
	LaunchSite             string  `json:"launch_site" db:"launch_site"`
	PayloadMassKg          float64 `json:"payload_mass_kg" db:"payload_mass_kg"`
	Class                  int     `json:"class" db:"class"`
	BoosterVersionCategory string  `json:"booster_version_category" db:"booster_version_category"`
}

// Succeeded reports whether the launch outcome class is a success.
func (r Record) Succeeded() bool {
	return r.Class == 1
}

// Validate checks the row invariants every Dataset relies on.
func (r Record) Validate() error {
	if strings.TrimSpace(r.LaunchSite) == "" {
		return fmt.Errorf("launch site is empty")
	}
	if math.IsNaN(r.PayloadMassKg) || math.IsInf(r.PayloadMassKg, 0) {
		return fmt.Errorf("payload mass is not a finite number")
	}
	if r.PayloadMassKg < 0 {
		return fmt.Errorf("payload mass %.2f is negative", r.PayloadMassKg)
	}
	if r.Class != 0 && r.Class != 1 {
		return fmt.Errorf("outcome class %d is not 0 or 1", r.Class)
	}
	return nil
}

// PayloadRange is an inclusive payload mass interval in kilograms.
type PayloadRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Contains reports whether mass lies in [Low, High]. An inverted range contains nothing.
func (r PayloadRange) Contains(mass float64) bool {
	if r.Low > r.High {
		return false
	}
	return mass >= r.Low && mass <= r.High
}

// Clamp narrows the range to [min, max].
func (r PayloadRange) Clamp(min, max float64) PayloadRange {
	return PayloadRange{
		Low:  math.Max(r.Low, min),
		High: math.Min(r.High, max),
	}
}

// Selection is the dashboard control state for one redraw.
type Selection struct {
	Site    string       `json:"site"`
	Payload PayloadRange `json:"payload"`
}

// IsAllSites reports whether the selection covers every site.
func (s Selection) IsAllSites() bool {
	return s.Site == AllSites
}

// Dataset is an immutable, ordered table of launch records.
type Dataset struct {
	id          core.SnapshotID
	fingerprint core.Hash
	source      string
	loadedAt    time.Time

	records    []Record
	sites      []string
	siteSet    map[string]struct{}
	minPayload float64
	maxPayload float64
}

// NewDataset validates and copies records into a Dataset.
func NewDataset(source string, records []Record) (*Dataset, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w in %s", core.ErrNoRecords, source)
	}

	ds := &Dataset{
		id:         core.SnapshotID(core.NewID()),
		source:     source,
		loadedAt:   time.Now().UTC(),
		records:    make([]Record, len(records)),
		siteSet:    make(map[string]struct{}),
		minPayload: math.Inf(1),
		maxPayload: math.Inf(-1),
	}

	rows := make([][]string, len(records))
	for i, rec := range records {
		if err := rec.Validate(); err != nil {
			return nil, core.NewInvalidRecordError(i+1, err)
		}
		ds.records[i] = rec
		rows[i] = []string{rec.LaunchSite, core.FormatFloat(rec.PayloadMassKg), strconv.Itoa(rec.Class), rec.BoosterVersionCategory}
		if _, seen := ds.siteSet[rec.LaunchSite]; !seen {
			ds.siteSet[rec.LaunchSite] = struct{}{}
			ds.sites = append(ds.sites, rec.LaunchSite)
		}
		ds.minPayload = math.Min(ds.minPayload, rec.PayloadMassKg)
		ds.maxPayload = math.Max(ds.maxPayload, rec.PayloadMassKg)
	}
	ds.fingerprint = core.HashRows(rows)

	return ds, nil
}

// ID returns the snapshot identifier assigned at load time.
func (d *Dataset) ID() core.SnapshotID { return d.id }

// Fingerprint hashes the record contents; equal tables share a fingerprint.
func (d *Dataset) Fingerprint() core.Hash { return d.fingerprint }

// Source describes where the records came from.
func (d *Dataset) Source() string { return d.source }

// LoadedAt is the UTC time the Dataset was built.
func (d *Dataset) LoadedAt() time.Time { return d.loadedAt }

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.records) }

// At returns the record at position i.
func (d *Dataset) At(i int) Record { return d.records[i] }

// Records returns a copy of all records in load order.
func (d *Dataset) Records() []Record {
	out := make([]Record, len(d.records))
	copy(out, d.records)
	return out
}

// Sites returns the distinct launch sites in first-occurrence order.
func (d *Dataset) Sites() []string {
	out := make([]string, len(d.sites))
	copy(out, d.sites)
	return out
}

// HasSite reports whether site occurs in the Dataset.
func (d *Dataset) HasSite(site string) bool {
	_, ok := d.siteSet[site]
	return ok
}

// MinPayloadMassKg is the smallest payload across all records.
func (d *Dataset) MinPayloadMassKg() float64 { return d.minPayload }

// MaxPayloadMassKg is the largest payload across all records.
func (d *Dataset) MaxPayloadMassKg() float64 { return d.maxPayload }

// FullRange spans every payload in the Dataset.
func (d *Dataset) FullRange() PayloadRange {
	return PayloadRange{Low: d.minPayload, High: d.maxPayload}
}

// Filter returns the records matching keep, preserving order.
func (d *Dataset) Filter(keep func(Record) bool) []Record {
	out := make([]Record, 0, len(d.records))
	for _, rec := range d.records {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// PayloadSummary describes the payload mass distribution.
type PayloadSummary struct {
	Count  int     `json:"count" yaml:"count"`
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	Mean   float64 `json:"mean" yaml:"mean"`
	Median float64 `json:"median" yaml:"median"`
	Q1     float64 `json:"q1" yaml:"q1"`
	Q3     float64 `json:"q3" yaml:"q3"`
}
