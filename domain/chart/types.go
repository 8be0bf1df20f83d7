package chart

// Kind selects how a Spec is drawn.
type Kind string

const (
	KindPie     Kind = "pie"
	KindScatter Kind = "scatter"
)

// Spec is a declarative, renderer-agnostic chart description.
// Pie charts populate Slices; scatter charts populate Series.
type Spec struct {
	Kind        Kind              `json:"kind" yaml:"kind"`
	Title       string            `json:"title" yaml:"title"`
	XAxis       string            `json:"xAxis,omitempty" yaml:"x_axis,omitempty"`
	YAxis       string            `json:"yAxis,omitempty" yaml:"y_axis,omitempty"`
	Slices      []Slice           `json:"slices,omitempty" yaml:"slices,omitempty"`
	Series      []Series          `json:"series,omitempty" yaml:"series,omitempty"`
	HoverFields []string          `json:"hoverFields,omitempty" yaml:"hover_fields,omitempty"`
	Colors      map[string]string `json:"colors,omitempty" yaml:"colors,omitempty"`
	ShowLegend  bool              `json:"showLegend" yaml:"show_legend"`

	// Pearson correlation of the plotted x and y values, when defined.
	Correlation *float64 `json:"correlation,omitempty" yaml:"correlation,omitempty"`
}

// Slice is one wedge of a pie chart.
type Slice struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
}

// Series groups scatter points that share a colour category.
type Series struct {
	Name   string  `json:"name" yaml:"name"`
	Color  string  `json:"color,omitempty" yaml:"color,omitempty"`
	Points []Point `json:"points" yaml:"points"`
}

// Point is one scatter marker. Hover values are display-only.
type Point struct {
	X     float64           `json:"x" yaml:"x"`
	Y     float64           `json:"y" yaml:"y"`
	Hover map[string]string `json:"hover,omitempty" yaml:"hover,omitempty"`
}

// Total sums slice values.
func (s Spec) Total() float64 {
	var total float64
	for _, sl := range s.Slices {
		total += sl.Value
	}
	return total
}

// Points flattens every series in series order.
func (s Spec) Points() []Point {
	var n int
	for _, series := range s.Series {
		n += len(series.Points)
	}
	out := make([]Point, 0, n)
	for _, series := range s.Series {
		out = append(out, series.Points...)
	}
	return out
}

// SliceValue returns the value of the slice labelled label.
func (s Spec) SliceValue(label string) (float64, bool) {
	for _, sl := range s.Slices {
		if sl.Label == label {
			return sl.Value, true
		}
	}
	return 0, false
}

// Default color palette for slices and series.
var palette = []string{
	"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
	"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// AssignColors maps each label to a palette entry in the order given.
func AssignColors(labels []string) map[string]string {
	colors := make(map[string]string, len(labels))
	for i, label := range labels {
		colors[label] = palette[i%len(palette)]
	}
	return colors
}
