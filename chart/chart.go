package chart

import (
	"github.com/vizlite-org/vizlite/dataset"
)

// ============================================================================
// CHART — Declarative chart builder
// ============================================================================
// A Chart assembles a specification conforming to the Vega-Lite grammar:
// data reference, encoding channels, mark type, dimensions. Builder methods
// are copy-on-write: every call returns a derived chart and leaves the
// receiver untouched, so charts can be shared and forked freely. The bound
// dataset itself is shared by reference, never copied.
//
// The builder performs no validation of its own; the spec is checked when
// it is serialized or rendered, matching the grammar's downstream-validation
// contract.
// ============================================================================

// SchemaURL identifies the grammar version every top-level spec declares.
const SchemaURL = "https://vega.github.io/schema/vega-lite/v2.json"

// Default chart dimensions in pixels.
const (
	DefaultWidth  = 400
	DefaultHeight = 300
)

type composeOp string

const (
	opLayer   composeOp = "layer"
	opHConcat composeOp = "hconcat"
	opVConcat composeOp = "vconcat"
)

// Chart is an immutable chart specification under construction.
type Chart struct {
	data    *dataset.Table
	dataRef map[string]any // explicit data reference (url/name), wins over data

	mark      string
	markProps map[string]any

	encoding  map[Channel]FieldDef
	channels  []Channel // encoding insertion order
	width     int
	height    int
	title     string
	selection map[string]any
	config    map[string]any

	// Composition: when op is set, charts holds the sub-specs and the unit
	// fields above (mark, encoding, dimensions) are unused.
	op     composeOp
	charts []*Chart
}

// New creates a chart bound to a dataset, with default dimensions.
func New(data *dataset.Table) *Chart {
	return &Chart{
		data:   data,
		width:  DefaultWidth,
		height: DefaultHeight,
	}
}

// NewFromURL creates a chart whose data is referenced by URL.
// The renderer front end fetches the data; no rows pass through the builder.
func NewFromURL(url string) *Chart {
	return &Chart{
		dataRef: map[string]any{"url": url},
		width:   DefaultWidth,
		height:  DefaultHeight,
	}
}

// Data returns the bound dataset (nil for URL-referenced or composed charts).
func (c *Chart) Data() *dataset.Table { return c.data }

// clone returns a shallow-plus-maps copy. The dataset is shared.
func (c *Chart) clone() *Chart {
	out := *c
	if c.markProps != nil {
		out.markProps = make(map[string]any, len(c.markProps))
		for k, v := range c.markProps {
			out.markProps[k] = v
		}
	}
	if c.encoding != nil {
		out.encoding = make(map[Channel]FieldDef, len(c.encoding))
		for k, v := range c.encoding {
			out.encoding[k] = v
		}
		out.channels = make([]Channel, len(c.channels))
		copy(out.channels, c.channels)
	}
	if c.selection != nil {
		out.selection = make(map[string]any, len(c.selection))
		for k, v := range c.selection {
			out.selection[k] = v
		}
	}
	if c.config != nil {
		out.config = make(map[string]any, len(c.config))
		for k, v := range c.config {
			out.config[k] = v
		}
	}
	if c.charts != nil {
		out.charts = make([]*Chart, len(c.charts))
		copy(out.charts, c.charts)
	}
	return &out
}

// Title sets the chart title.
func (c *Chart) Title(title string) *Chart {
	out := c.clone()
	out.title = title
	return out
}

// Size sets chart width and height in pixels.
func (c *Chart) Size(width, height int) *Chart {
	out := c.clone()
	out.width = width
	out.height = height
	return out
}

// Interactive binds an interval selection to the axis scales, making the
// rendered chart pannable and zoomable. name must be unique among the
// chart's selections.
func (c *Chart) Interactive(name string, bindX, bindY bool) *Chart {
	var encodings []string
	if bindX {
		encodings = append(encodings, "x")
	}
	if bindY {
		encodings = append(encodings, "y")
	}

	out := c.clone()
	if out.selection == nil {
		out.selection = make(map[string]any)
	}
	out.selection[name] = map[string]any{
		"bind":      "scales",
		"type":      "interval",
		"encodings": encodings,
	}
	return out
}

// WithConfig merges top-level config entries (axis, mark, background
// defaults). Later calls win on key collisions. Themes apply through this.
func (c *Chart) WithConfig(entries map[string]any) *Chart {
	out := c.clone()
	if out.config == nil {
		out.config = make(map[string]any, len(entries))
	}
	for k, v := range entries {
		out.config[k] = v
	}
	return out
}

// ============================================================================
// COMPOSITION
// ============================================================================

// Layer overlays charts in a single coordinate space.
func Layer(charts ...*Chart) *Chart {
	return &Chart{op: opLayer, charts: charts}
}

// HConcat places charts side by side.
func HConcat(charts ...*Chart) *Chart {
	return &Chart{op: opHConcat, charts: charts}
}

// VConcat stacks charts vertically.
func VConcat(charts ...*Chart) *Chart {
	return &Chart{op: opVConcat, charts: charts}
}
