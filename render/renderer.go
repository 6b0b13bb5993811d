package render

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vizlite-org/vizlite/chart"
)

// ============================================================================
// RENDERER REGISTRY — Alternate output paths for a chart
// ============================================================================
// A Renderer turns a chart into a display artifact. Two ship built-in:
//
//   "html"  self-contained HTML document embedding the interactive chart
//   "json"  the raw specification in the grammar's wire format
//
// Renderers validate the spec on the way through: a malformed chart fails
// with chart.ValidationError and produces no artifact.
// ============================================================================

// Renderer produces a display artifact from a chart.
type Renderer interface {
	// Render returns the artifact bytes.
	Render(c *chart.Chart) ([]byte, error)
	// ContentType is the artifact's MIME type, for HTTP serving.
	ContentType() string
}

var (
	mu        sync.RWMutex
	renderers = map[string]Renderer{}
)

func init() {
	Register("json", &JSONRenderer{Indent: true})
	Register("html", NewHTMLRenderer())
}

// Register adds or replaces a named renderer.
func Register(name string, r Renderer) {
	mu.Lock()
	defer mu.Unlock()
	renderers[name] = r
}

// Get returns a renderer by name.
func Get(name string) (Renderer, error) {
	mu.RLock()
	defer mu.RUnlock()
	r, ok := renderers[name]
	if !ok {
		return nil, fmt.Errorf("unknown renderer %q (available: %v)", name, names())
	}
	return r, nil
}

// Names returns registered renderer names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	return names()
}

func names() []string {
	out := make([]string, 0, len(renderers))
	for n := range renderers {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
