package dataset

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"
)

// ============================================================================
// BUILT-IN DATASETS — Embedded sample data, loaded by name
// ============================================================================
// Small excerpts of well-known demo datasets, embedded so examples and tests
// run without network access. Load("cars") returns the same *Table on every
// call; built-ins are immutable like any other Table.
// ============================================================================

//go:embed data/*.json data/*.csv
var builtinFS embed.FS

var (
	builtinMu    sync.Mutex
	builtinCache = map[string]*Table{}
)

// Names returns the available built-in dataset names, sorted.
func Names() []string {
	entries, err := builtinFS.ReadDir("data")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		names = append(names, strings.TrimSuffix(name, path.Ext(name)))
	}
	sort.Strings(names)
	return names
}

// Load returns a built-in dataset by name (e.g., "cars").
// Unknown names fail with the list of available datasets.
func Load(name string) (*Table, error) {
	builtinMu.Lock()
	defer builtinMu.Unlock()

	if t, ok := builtinCache[name]; ok {
		return t, nil
	}

	for _, load := range []struct {
		ext   string
		parse func(string, []byte) (*Table, error)
	}{
		{".json", FromJSON},
		{".csv", FromCSV},
	} {
		data, err := builtinFS.ReadFile("data/" + name + load.ext)
		if err != nil {
			continue
		}
		t, err := load.parse(name, data)
		if err != nil {
			return nil, fmt.Errorf("failed to load built-in dataset %q: %w", name, err)
		}
		builtinCache[name] = t
		return t, nil
	}

	return nil, fmt.Errorf("unknown dataset %q (available: %s)", name, strings.Join(Names(), ", "))
}
