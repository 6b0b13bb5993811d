package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/google/uuid"

	"github.com/vizlite-org/vizlite/chart"
)

// ============================================================================
// HTML RENDERER — Embedded interactive chart
// ============================================================================
// Produces a self-contained HTML document that loads the grammar's JavaScript
// runtime from a CDN and mounts the chart into a uniquely-identified
// container element, so several rendered documents can be concatenated into
// one page without id collisions.
// ============================================================================

const defaultCDN = "https://cdn.jsdelivr.net/npm"

// Runtime library versions matching the grammar version in chart.SchemaURL.
var runtimeLibs = []string{"vega@3", "vega-lite@2", "vega-embed@3"}

var htmlTemplate = template.Must(template.New("chart").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
{{- range .Scripts}}
  <script src="{{.}}"></script>
{{- end}}
</head>
<body>
  <div id="{{.ContainerID}}"></div>
  <script type="text/javascript">
    var spec = {{.Spec}};
    vegaEmbed("#{{.ContainerID}}", spec).catch(console.error);
  </script>
</body>
</html>
`))

// HTMLRenderer renders charts as embeddable HTML documents.
type HTMLRenderer struct {
	// CDN is the script host prefix for the runtime libraries.
	CDN string

	// Transformer overrides how the data reference is produced.
	// Nil means inline values with the default row limit.
	Transformer chart.DataTransformer
}

// NewHTMLRenderer returns an HTML renderer with the default CDN.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{CDN: defaultCDN}
}

func (r *HTMLRenderer) ContentType() string { return "text/html; charset=utf-8" }

func (r *HTMLRenderer) Render(c *chart.Chart) ([]byte, error) {
	tr := r.Transformer
	if tr == nil {
		tr = chart.InlineData(chart.DefaultMaxRows)
	}
	spec, err := c.SpecWith(tr)
	if err != nil {
		return nil, err
	}

	specJSON, err := marshalSpec(spec, true)
	if err != nil {
		return nil, err
	}

	cdn := r.CDN
	if cdn == "" {
		cdn = defaultCDN
	}
	scripts := make([]string, len(runtimeLibs))
	for i, lib := range runtimeLibs {
		scripts[i] = cdn + "/" + lib
	}

	title, _ := spec["title"].(string)
	if title == "" {
		title = "Chart"
	}

	var buf bytes.Buffer
	err = htmlTemplate.Execute(&buf, struct {
		Title       string
		Scripts     []string
		ContainerID string
		Spec        string
	}{
		Title:       title,
		Scripts:     scripts,
		ContainerID: "vis-" + uuid.NewString(),
		Spec:        string(specJSON),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render HTML template: %w", err)
	}
	return buf.Bytes(), nil
}

// marshalSpec serializes a spec mapping, optionally indented.
func marshalSpec(spec map[string]any, indent bool) ([]byte, error) {
	if indent {
		return json.MarshalIndent(spec, "", "  ")
	}
	return json.Marshal(spec)
}
