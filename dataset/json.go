package dataset

import (
	"encoding/json"
	"fmt"
	"sort"
)

// ============================================================================
// JSON LOADER — Parses an array of objects into a Table
// ============================================================================

// FromJSON parses a JSON array of flat objects into a Table.
// Column order follows first appearance across records. Nested values are
// kept as-is; the grammar's renderer decides what to do with them.
func FromJSON(name string, data []byte) (*Table, error) {
	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse JSON records: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("JSON has no records")
	}

	// JSON objects carry no key order; sort per record for deterministic output.
	var columns []string
	seen := make(map[string]bool)
	for _, rec := range records {
		keys := make([]string, 0, len(rec))
		for k := range rec {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				columns = append(columns, k)
			}
		}
	}

	rows := make([]Row, len(records))
	for i, rec := range records {
		rows[i] = Row(rec)
	}
	return New(name, columns, rows), nil
}
