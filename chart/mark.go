package chart

// ============================================================================
// MARKS — Geometric shapes for data records
// ============================================================================

// Mark types recognized by the grammar.
const (
	MarkArea     = "area"
	MarkBar      = "bar"
	MarkCircle   = "circle"
	MarkGeoshape = "geoshape"
	MarkLine     = "line"
	MarkPoint    = "point"
	MarkRect     = "rect"
	MarkRule     = "rule"
	MarkSquare   = "square"
	MarkText     = "text"
	MarkTick     = "tick"
)

var validMarks = map[string]bool{
	MarkArea: true, MarkBar: true, MarkCircle: true, MarkGeoshape: true,
	MarkLine: true, MarkPoint: true, MarkRect: true, MarkRule: true,
	MarkSquare: true, MarkText: true, MarkTick: true,
}

// Mark sets the mark type, optionally with mark properties (e.g., "opacity",
// "filled", "color"). With properties the spec carries a mark definition
// object; without, a bare mark string.
func (c *Chart) Mark(mark string, props ...map[string]any) *Chart {
	out := c.clone()
	out.mark = mark
	out.markProps = nil
	if len(props) > 0 && len(props[0]) > 0 {
		out.markProps = make(map[string]any, len(props[0]))
		for k, v := range props[0] {
			out.markProps[k] = v
		}
	}
	return out
}

// Per-mark shortcuts mirroring the grammar's mark vocabulary.

func (c *Chart) MarkArea(props ...map[string]any) *Chart   { return c.Mark(MarkArea, props...) }
func (c *Chart) MarkBar(props ...map[string]any) *Chart    { return c.Mark(MarkBar, props...) }
func (c *Chart) MarkCircle(props ...map[string]any) *Chart { return c.Mark(MarkCircle, props...) }
func (c *Chart) MarkLine(props ...map[string]any) *Chart   { return c.Mark(MarkLine, props...) }
func (c *Chart) MarkPoint(props ...map[string]any) *Chart  { return c.Mark(MarkPoint, props...) }
func (c *Chart) MarkRect(props ...map[string]any) *Chart   { return c.Mark(MarkRect, props...) }
func (c *Chart) MarkRule(props ...map[string]any) *Chart   { return c.Mark(MarkRule, props...) }
func (c *Chart) MarkSquare(props ...map[string]any) *Chart { return c.Mark(MarkSquare, props...) }
func (c *Chart) MarkText(props ...map[string]any) *Chart   { return c.Mark(MarkText, props...) }
func (c *Chart) MarkTick(props ...map[string]any) *Chart   { return c.Mark(MarkTick, props...) }

func (c *Chart) MarkGeoshape(props ...map[string]any) *Chart {
	return c.Mark(MarkGeoshape, props...)
}
