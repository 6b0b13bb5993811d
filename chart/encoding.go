package chart

import "github.com/vizlite-org/vizlite/schema"

// ============================================================================
// ENCODING — Visual channel → field mappings
// ============================================================================
// An encoding maps a visual channel (x axis, color, size, ...) to a data
// field and its measurement type. Channels accept either a full FieldDef or
// a shorthand string ("Horsepower:Q", "mean(Acceleration)", "count()").
// ============================================================================

// Channel is a visual channel name from the grammar.
type Channel string

const (
	X       Channel = "x"
	Y       Channel = "y"
	X2      Channel = "x2"
	Y2      Channel = "y2"
	Color   Channel = "color"
	Fill    Channel = "fill"
	Opacity Channel = "opacity"
	Shape   Channel = "shape"
	Size    Channel = "size"
	Text    Channel = "text"
	Tooltip Channel = "tooltip"
	Order   Channel = "order"
	Detail  Channel = "detail"
	Row     Channel = "row"
	Column  Channel = "column"
)

var validChannels = map[Channel]bool{
	X: true, Y: true, X2: true, Y2: true, Color: true, Fill: true,
	Opacity: true, Shape: true, Size: true, Text: true, Tooltip: true,
	Order: true, Detail: true, Row: true, Column: true,
}

// FieldDef describes one channel encoding.
// Type may be left empty when the chart carries a dataset; it is then
// inferred from the column's values at serialization time.
type FieldDef struct {
	Field     string
	Type      schema.FieldType
	Aggregate string
	TimeUnit  string
	Bin       bool
	Title     string
	Scale     map[string]any
}

// toMap builds the grammar's encoding-channel mapping, omitting unset keys.
func (d FieldDef) toMap() map[string]any {
	m := make(map[string]any, 4)
	if d.Field != "" {
		m["field"] = d.Field
	}
	if d.Type != "" {
		m["type"] = string(d.Type)
	}
	if d.Aggregate != "" {
		m["aggregate"] = d.Aggregate
	}
	if d.TimeUnit != "" {
		m["timeUnit"] = d.TimeUnit
	}
	if d.Bin {
		m["bin"] = true
	}
	if d.Title != "" {
		m["title"] = d.Title
	}
	if len(d.Scale) > 0 {
		m["scale"] = d.Scale
	}
	return m
}

// EncodeField maps a channel to an explicit field definition.
// Re-encoding a channel replaces its previous mapping.
func (c *Chart) EncodeField(ch Channel, def FieldDef) *Chart {
	out := c.clone()
	if out.encoding == nil {
		out.encoding = make(map[Channel]FieldDef)
	}
	if _, exists := out.encoding[ch]; !exists {
		out.channels = append(out.channels, ch)
	}
	out.encoding[ch] = def
	return out
}

// Encode maps a channel using shorthand syntax.
// A malformed shorthand is carried into the spec and reported when the spec
// is validated, keeping Encode chainable.
func (c *Chart) Encode(ch Channel, shorthand string) *Chart {
	def, err := ParseShorthand(shorthand)
	if err != nil {
		def = FieldDef{Field: shorthand}
	}
	return c.EncodeField(ch, def)
}

// Channel shortcuts for the common x/y/color pattern.

func (c *Chart) EncodeX(shorthand string) *Chart     { return c.Encode(X, shorthand) }
func (c *Chart) EncodeY(shorthand string) *Chart     { return c.Encode(Y, shorthand) }
func (c *Chart) EncodeColor(shorthand string) *Chart { return c.Encode(Color, shorthand) }
func (c *Chart) EncodeSize(shorthand string) *Chart  { return c.Encode(Size, shorthand) }
func (c *Chart) EncodeShape(shorthand string) *Chart { return c.Encode(Shape, shorthand) }

func (c *Chart) EncodeTooltip(shorthand string) *Chart { return c.Encode(Tooltip, shorthand) }
