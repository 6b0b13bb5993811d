package chart

import (
	"fmt"
	"strings"

	"github.com/vizlite-org/vizlite/schema"
)

// ============================================================================
// SHORTHAND PARSER — Compact encoding syntax
// ============================================================================
// Shorthands pack field, aggregate, and type into one string:
//
//   "Horsepower"              field only, type inferred from data
//   "Horsepower:Q"            field + type code
//   "mean(Acceleration)"      aggregate + field
//   "mean(Acceleration):Q"    aggregate + field + type
//   "count()"                 counting aggregate, no field
//
// Type codes: Q quantitative, O ordinal, N nominal, T temporal. Full type
// names are accepted too ("Horsepower:quantitative").
// ============================================================================

var typeCodes = map[string]schema.FieldType{
	"q":            schema.Quantitative,
	"o":            schema.Ordinal,
	"n":            schema.Nominal,
	"t":            schema.Temporal,
	"quantitative": schema.Quantitative,
	"ordinal":      schema.Ordinal,
	"nominal":      schema.Nominal,
	"temporal":     schema.Temporal,
}

// Aggregate operations recognized by the grammar.
var validAggregates = map[string]bool{
	"argmax": true, "argmin": true, "average": true, "count": true,
	"distinct": true, "max": true, "mean": true, "median": true,
	"min": true, "missing": true, "q1": true, "q3": true,
	"stderr": true, "stdev": true, "stdevp": true, "sum": true,
	"valid": true, "values": true, "variance": true, "variancep": true,
}

// ParseShorthand converts shorthand syntax into a FieldDef.
func ParseShorthand(shorthand string) (FieldDef, error) {
	s := strings.TrimSpace(shorthand)
	if s == "" {
		return FieldDef{}, fmt.Errorf("empty encoding shorthand")
	}

	var def FieldDef

	// Split a trailing ":type" suffix. Only the last colon counts, so field
	// names containing colons keep working when the suffix is a type code.
	if idx := strings.LastIndex(s, ":"); idx >= 0 {
		if t, ok := typeCodes[strings.ToLower(strings.TrimSpace(s[idx+1:]))]; ok {
			def.Type = t
			s = strings.TrimSpace(s[:idx])
		}
	}

	// Aggregate wrapper: "agg(field)".
	if open := strings.Index(s, "("); open >= 0 && strings.HasSuffix(s, ")") {
		agg := strings.TrimSpace(s[:open])
		field := strings.TrimSpace(s[open+1 : len(s)-1])

		if !validAggregates[strings.ToLower(agg)] {
			return FieldDef{}, fmt.Errorf("unknown aggregate %q in shorthand %q", agg, shorthand)
		}
		def.Aggregate = strings.ToLower(agg)
		def.Field = field

		if def.Aggregate == "count" && field == "" {
			// count() needs no field; it defaults to quantitative.
			if def.Type == "" {
				def.Type = schema.Quantitative
			}
			return def, nil
		}
		if field == "" {
			return FieldDef{}, fmt.Errorf("aggregate %q requires a field in shorthand %q", agg, shorthand)
		}
		// Aggregated values are numeric unless the caller says otherwise.
		if def.Type == "" {
			def.Type = schema.Quantitative
		}
		return def, nil
	}

	def.Field = s
	if def.Field == "" {
		return FieldDef{}, fmt.Errorf("shorthand %q has no field", shorthand)
	}
	return def, nil
}
