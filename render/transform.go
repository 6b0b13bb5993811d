package render

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vizlite-org/vizlite/chart"
	"github.com/vizlite-org/vizlite/dataset"
)

// ============================================================================
// DATA TRANSFORMERS — How a spec references its data
// ============================================================================
// The spec's data entry can embed rows inline or point at them by URL.
// Inline is self-contained but bounded (chart.DefaultMaxRows); the file
// transformer writes the table as a JSON sidecar and references it
// relatively, which is what a renderer front end serving from disk expects.
// ============================================================================

// Transformer names accepted by NewTransformer.
const (
	TransformInline = "inline"
	TransformFile   = "file"
)

// NewTransformer builds a data transformer by name. dir is where the file
// transformer writes sidecar data files; it is ignored for inline.
func NewTransformer(name, dir string) (chart.DataTransformer, error) {
	switch name {
	case TransformInline, "":
		return chart.InlineData(chart.DefaultMaxRows), nil
	case TransformFile:
		return FileData(dir), nil
	default:
		return nil, fmt.Errorf("unknown data transformer %q (available: %s, %s)",
			name, TransformInline, TransformFile)
	}
}

// FileData returns a transformer that writes the table to <dir>/<name>.json
// and references it by relative URL. Unnamed tables get "data.json".
func FileData(dir string) chart.DataTransformer {
	return func(t *dataset.Table) (map[string]any, error) {
		name := t.Name()
		if name == "" {
			name = "data"
		}
		filename := name + ".json"

		data, err := json.Marshal(t.Records())
		if err != nil {
			return nil, fmt.Errorf("failed to serialize dataset %q: %w", name, err)
		}
		if dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create data directory: %w", err)
			}
		}
		if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
			return nil, fmt.Errorf("failed to write data file: %w", err)
		}

		return map[string]any{"url": filename}, nil
	}
}
