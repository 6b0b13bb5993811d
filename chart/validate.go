package chart

// ============================================================================
// SPEC VALIDATION
// ============================================================================
// Runs when a spec is serialized or rendered, never during construction.
// Checks the parts of the schema a builder can get wrong: mark vocabulary,
// channel vocabulary, measurement types, and field references against the
// bound dataset's columns.
// ============================================================================

func (c *Chart) validate(resolved map[Channel]FieldDef) error {
	if c.mark == "" {
		return validationErrorf("mark", "no mark type set")
	}
	if !validMarks[c.mark] {
		return validationErrorf("mark", "unknown mark type %q", c.mark)
	}

	if c.width < 0 || c.height < 0 {
		return validationErrorf("", "negative chart dimensions %dx%d", c.width, c.height)
	}

	for ch, def := range resolved {
		path := "encoding." + string(ch)

		if !validChannels[ch] {
			return validationErrorf(path, "unknown encoding channel %q", ch)
		}
		if def.Field == "" && def.Aggregate != "count" {
			return validationErrorf(path, "no field set")
		}
		if !def.Type.Valid() {
			return validationErrorf(path, "unknown measurement type %q", def.Type)
		}
		if def.Aggregate != "" && !validAggregates[def.Aggregate] {
			return validationErrorf(path, "unknown aggregate %q", def.Aggregate)
		}

		// Field references must resolve against inline data. URL-referenced
		// data is opaque here; the rendering front end checks those.
		if c.data != nil && def.Field != "" && !c.data.HasColumn(def.Field) {
			return validationErrorf(path, "field %q is not a column of dataset %q",
				def.Field, c.data.Name())
		}
	}
	return nil
}
