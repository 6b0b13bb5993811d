package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ============================================================================
// CSV LOADER — Parses CSV bytes into a Table
// ============================================================================
// Consumers read the CSV from wherever it lives (file, S3, stdin). This
// loader converts raw bytes into rows: numeric cells become float64, empty
// cells become nil, everything else stays a string. Malformed rows are
// skipped rather than failing the whole load.
// ============================================================================

// FromCSV parses CSV bytes into a Table. The first row must be a header.
func FromCSV(name string, data []byte) (*Table, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if len(headers) == 0 {
		return nil, fmt.Errorf("CSV has no columns")
	}

	columns := make([]string, len(headers))
	for i, h := range headers {
		columns[i] = strings.TrimSpace(h)
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}

		row := make(Row, len(columns))
		for i, col := range columns {
			if i >= len(record) {
				break
			}
			row[col] = parseCell(record[i])
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("CSV has no data rows")
	}
	return New(name, columns, rows), nil
}

// parseCell converts a raw CSV cell into a typed value.
func parseCell(raw string) any {
	v := strings.TrimSpace(raw)
	if v == "" || v == "null" || v == "NULL" || v == "N/A" || v == "n/a" {
		return nil
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return v
}
