package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vizlite-org/vizlite/schema"
)

func TestParseShorthand(t *testing.T) {
	tests := []struct {
		in   string
		want FieldDef
	}{
		{"Horsepower", FieldDef{Field: "Horsepower"}},
		{"Horsepower:Q", FieldDef{Field: "Horsepower", Type: schema.Quantitative}},
		{"Origin:N", FieldDef{Field: "Origin", Type: schema.Nominal}},
		{"Cylinders:O", FieldDef{Field: "Cylinders", Type: schema.Ordinal}},
		{"Year:T", FieldDef{Field: "Year", Type: schema.Temporal}},
		{"Horsepower:quantitative", FieldDef{Field: "Horsepower", Type: schema.Quantitative}},
		{"horsepower:q", FieldDef{Field: "horsepower", Type: schema.Quantitative}},
		{" Weight_in_lbs : Q ", FieldDef{Field: "Weight_in_lbs", Type: schema.Quantitative}},

		{"mean(Acceleration)", FieldDef{Field: "Acceleration", Aggregate: "mean", Type: schema.Quantitative}},
		{"mean(Acceleration):T", FieldDef{Field: "Acceleration", Aggregate: "mean", Type: schema.Temporal}},
		{"SUM(Revenue):Q", FieldDef{Field: "Revenue", Aggregate: "sum", Type: schema.Quantitative}},
		{"count()", FieldDef{Aggregate: "count", Type: schema.Quantitative}},
		{"count():N", FieldDef{Aggregate: "count", Type: schema.Nominal}},

		// A non-type suffix after the colon is part of the field name.
		{"ratio:odd", FieldDef{Field: "ratio:odd"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseShorthand(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseShorthandErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"unknown aggregate", "frobnicate(Horsepower)"},
		{"aggregate without field", "mean()"},
		{"type code only", ":Q"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseShorthand(tt.in)
			assert.Error(t, err)
		})
	}
}
