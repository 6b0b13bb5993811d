package theme

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/vizlite-org/vizlite/chart"
)

// ============================================================================
// THEMES — Named config defaults for charts
// ============================================================================
// A theme is a set of top-level config entries (background, axis, mark
// defaults) applied to a chart before rendering. Built-ins cover the common
// cases; consumers register their own or load them from YAML files.
// ============================================================================

var (
	mu       sync.RWMutex
	registry = map[string]map[string]any{
		"default": {},
		"dark": {
			"background": "#333333",
			"title":      map[string]any{"color": "#ffffff"},
			"axis": map[string]any{
				"labelColor":  "#cccccc",
				"titleColor":  "#cccccc",
				"gridColor":   "#555555",
				"domainColor": "#cccccc",
			},
		},
		"minimal": {
			"axis": map[string]any{"grid": false},
			"view": map[string]any{"strokeWidth": 0},
		},
	}
)

// Names returns registered theme names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Register adds or replaces a named theme.
func Register(name string, config map[string]any) {
	mu.Lock()
	defer mu.Unlock()
	registry[name] = config
}

// Apply merges a named theme's config into the chart.
func Apply(c *chart.Chart, name string) (*chart.Chart, error) {
	mu.RLock()
	config, ok := registry[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown theme %q (available: %v)", name, Names())
	}
	if len(config) == 0 {
		return c, nil
	}
	return c.WithConfig(config), nil
}

// ============================================================================
// YAML THEME FILES
// ============================================================================

type themeFile struct {
	Name   string         `yaml:"name"`
	Config map[string]any `yaml:"config"`
}

// LoadFile registers a theme from a YAML file and returns its name.
//
//	name: corporate
//	config:
//	  background: "#fafafa"
//	  mark:
//	    color: "#4F46E5"
func LoadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read theme file: %w", err)
	}

	var tf themeFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return "", fmt.Errorf("failed to parse theme file %s: %w", path, err)
	}
	if tf.Name == "" {
		return "", fmt.Errorf("theme file %s has no name", path)
	}
	if tf.Config == nil {
		tf.Config = map[string]any{}
	}

	Register(tf.Name, tf.Config)
	return tf.Name, nil
}
