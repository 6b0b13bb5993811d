package render

import "github.com/vizlite-org/vizlite/chart"

// ============================================================================
// JSON RENDERER — Raw specification output
// ============================================================================

// JSONRenderer emits the validated spec in the grammar's JSON wire format,
// suitable for embedding in a document or handing to a rendering front end.
type JSONRenderer struct {
	Indent bool

	// Transformer overrides how the data reference is produced.
	// Nil means inline values with the default row limit.
	Transformer chart.DataTransformer
}

func (r *JSONRenderer) ContentType() string { return "application/json" }

func (r *JSONRenderer) Render(c *chart.Chart) ([]byte, error) {
	if r.Transformer != nil {
		spec, err := c.SpecWith(r.Transformer)
		if err != nil {
			return nil, err
		}
		return marshalSpec(spec, r.Indent)
	}
	if r.Indent {
		return c.JSONIndent()
	}
	return c.JSON()
}
