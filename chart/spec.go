package chart

import (
	"encoding/json"
	"fmt"

	"github.com/vizlite-org/vizlite/dataset"
	"github.com/vizlite-org/vizlite/schema"
)

// ============================================================================
// SPEC BUILDING — Chart → grammar mapping
// ============================================================================
// Spec() produces the nested mapping the grammar's JSON wire format
// serializes to: $schema (top level only), data reference, mark, encoding,
// width, height. The data entry is produced by a DataTransformer; the
// default embeds rows inline, guarded by a row limit.
// ============================================================================

// DataTransformer converts a table into the spec's data reference entry.
// Implementations may embed rows inline or write the table somewhere and
// reference it by URL.
type DataTransformer func(t *dataset.Table) (map[string]any, error)

// DefaultMaxRows caps how many rows the inline transformer embeds.
// Oversized inline data bloats documents and stalls front ends.
const DefaultMaxRows = 5000

// InlineData returns a transformer embedding rows directly in the spec.
// Tables longer than maxRows fail validation; pass a larger limit or switch
// to a URL-referencing transformer for big data.
func InlineData(maxRows int) DataTransformer {
	return func(t *dataset.Table) (map[string]any, error) {
		if maxRows > 0 && t.Len() > maxRows {
			return nil, validationErrorf("data",
				"table has %d rows, exceeding the %d-row inline limit", t.Len(), maxRows)
		}
		return map[string]any{"values": t.Records()}, nil
	}
}

// Spec builds the specification mapping using the default inline transformer.
// Returns a ValidationError when the chart does not conform to the grammar.
func (c *Chart) Spec() (map[string]any, error) {
	return c.SpecWith(InlineData(DefaultMaxRows))
}

// SpecWith builds the specification mapping with an explicit data transformer.
func (c *Chart) SpecWith(tr DataTransformer) (map[string]any, error) {
	return c.buildSpec(tr, true)
}

// JSON serializes the spec to the grammar's JSON wire format.
func (c *Chart) JSON() ([]byte, error) {
	spec, err := c.Spec()
	if err != nil {
		return nil, err
	}
	return json.Marshal(spec)
}

// JSONIndent serializes the spec as indented JSON, for files and humans.
func (c *Chart) JSONIndent() ([]byte, error) {
	spec, err := c.Spec()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(spec, "", "  ")
}

func (c *Chart) buildSpec(tr DataTransformer, topLevel bool) (map[string]any, error) {
	spec := make(map[string]any)
	if topLevel {
		// Sub-specs of layered/concatenated charts omit $schema.
		spec["$schema"] = SchemaURL
	}
	if c.title != "" {
		spec["title"] = c.title
	}
	if len(c.config) > 0 {
		spec["config"] = c.config
	}

	// Composed chart: sub-specs only.
	if c.op != "" {
		if len(c.charts) == 0 {
			return nil, validationErrorf(string(c.op), "composition has no charts")
		}
		subs := make([]map[string]any, len(c.charts))
		for i, sub := range c.charts {
			s, err := sub.buildSpec(tr, false)
			if err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", c.op, i, err)
			}
			subs[i] = s
		}
		spec[string(c.op)] = subs
		return spec, nil
	}

	resolved, err := c.resolveEncoding()
	if err != nil {
		return nil, err
	}
	if err := c.validate(resolved); err != nil {
		return nil, err
	}

	switch {
	case c.dataRef != nil:
		spec["data"] = c.dataRef
	case c.data != nil:
		entry, err := tr(c.data)
		if err != nil {
			return nil, err
		}
		spec["data"] = entry
	}

	if len(c.markProps) > 0 {
		def := map[string]any{"type": c.mark}
		for k, v := range c.markProps {
			def[k] = v
		}
		spec["mark"] = def
	} else {
		spec["mark"] = c.mark
	}

	if len(resolved) > 0 {
		enc := make(map[string]any, len(resolved))
		for ch, def := range resolved {
			enc[string(ch)] = def.toMap()
		}
		spec["encoding"] = enc
	}

	if c.width > 0 {
		spec["width"] = c.width
	}
	if c.height > 0 {
		spec["height"] = c.height
	}
	if len(c.selection) > 0 {
		spec["selection"] = c.selection
	}
	return spec, nil
}

// resolveEncoding fills in measurement types the caller omitted, inferring
// them from the bound dataset's column values.
func (c *Chart) resolveEncoding() (map[Channel]FieldDef, error) {
	if len(c.encoding) == 0 {
		return nil, nil
	}
	out := make(map[Channel]FieldDef, len(c.encoding))
	for ch, def := range c.encoding {
		if def.Type == "" && def.Field != "" {
			if c.data == nil || !c.data.HasColumn(def.Field) {
				return nil, validationErrorf("encoding."+string(ch),
					"field %q has no declared type and no data to infer it from", def.Field)
			}
			def.Type = schema.TypeOf(c.data, def.Field)
		}
		out[ch] = def
	}
	return out, nil
}
