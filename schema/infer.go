package schema

import (
	"strings"
	"time"

	"github.com/vizlite-org/vizlite/dataset"
)

// ============================================================================
// TYPE INFERENCE — Heuristic measurement-type classification
// ============================================================================
// Inspects column values and assigns each field a measurement type from the
// chart grammar. No configuration needed for well-structured tabular data.
//
// Classification per column:
//   1. Sample values → detect value kind (numeric, date, bool, string)
//   2. Kind + cardinality → measurement type:
//        numeric            → quantitative
//        integer, few uniques → ordinal (coded scales like cylinder counts)
//        date patterns      → temporal
//        bool, string       → nominal
// ============================================================================

// FieldType is a measurement type from the chart grammar.
type FieldType string

const (
	Quantitative FieldType = "quantitative"
	Ordinal      FieldType = "ordinal"
	Nominal      FieldType = "nominal"
	Temporal     FieldType = "temporal"
)

// Valid reports whether t is a recognized measurement type.
func (t FieldType) Valid() bool {
	switch t {
	case Quantitative, Ordinal, Nominal, Temporal:
		return true
	}
	return false
}

// InferOptions controls inference behavior.
type InferOptions struct {
	SampleSize int // Max values to inspect per column (0 = default 1000)
}

// Infer classifies every column of a table.
func Infer(t *dataset.Table, opts ...InferOptions) map[string]FieldType {
	opt := InferOptions{SampleSize: 1000}
	if len(opts) > 0 && opts[0].SampleSize > 0 {
		opt = opts[0]
	}

	out := make(map[string]FieldType, len(t.Columns()))
	for _, col := range t.Columns() {
		out[col] = inferColumn(t, col, opt.SampleSize)
	}
	return out
}

// TypeOf classifies a single column. Columns with no non-null values
// default to nominal.
func TypeOf(t *dataset.Table, column string) FieldType {
	return inferColumn(t, column, 1000)
}

func inferColumn(t *dataset.Table, column string, sampleSize int) FieldType {
	values := t.ColumnValues(column)
	if len(values) > sampleSize {
		values = values[:sampleSize]
	}
	if len(values) == 0 {
		return Nominal
	}

	numCount := 0
	dateCount := 0
	boolCount := 0
	wholeCount := 0
	uniqueSet := make(map[any]bool)

	for _, v := range values {
		uniqueSet[v] = true
		switch val := v.(type) {
		case float64:
			numCount++
			if val == float64(int64(val)) {
				wholeCount++
			}
		case bool:
			boolCount++
		case string:
			if isDateString(val) {
				dateCount++
			}
		}
	}

	// 80%+ of non-null values must agree for the non-string kinds.
	threshold := int(float64(len(values)) * 0.8)
	if threshold < 1 {
		threshold = 1
	}

	switch {
	case boolCount >= threshold:
		return Nominal

	case dateCount >= threshold:
		return Temporal

	case numCount >= threshold:
		// All-integer columns with few distinct values are coded scales
		// (cylinder counts, priority levels); ordinal reads better than a
		// continuous axis. Ratio guard keeps small datasets quantitative.
		uniqueRatio := float64(len(uniqueSet)) / float64(len(values))
		if wholeCount == numCount && len(uniqueSet) < 10 && uniqueRatio < 0.3 {
			return Ordinal
		}
		return Quantitative

	default:
		return Nominal
	}
}

// ============================================================================
// DATE DETECTION
// ============================================================================

var dateFormats = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

func isDateString(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) < 8 {
		// Bare years and short codes stay nominal/quantitative.
		return false
	}
	for _, layout := range dateFormats {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
