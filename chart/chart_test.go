package chart

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vizlite-org/vizlite/dataset"
	"github.com/vizlite-org/vizlite/schema"
)

// ============================================================================
// Test Data
// ============================================================================

func carsTable(t *testing.T) *dataset.Table {
	t.Helper()
	cars, err := dataset.Load("cars")
	require.NoError(t, err)
	return cars
}

// ============================================================================
// Spec construction
// ============================================================================

func TestScatterSpec(t *testing.T) {
	cars := carsTable(t)

	c := New(cars).
		MarkCircle().
		EncodeX("Acceleration:Q").
		EncodeY("Displacement:Q")

	spec, err := c.Spec()
	require.NoError(t, err)

	assert.Equal(t, SchemaURL, spec["$schema"])
	assert.Equal(t, "circle", spec["mark"])
	assert.Equal(t, 400, spec["width"])
	assert.Equal(t, 300, spec["height"])

	assert.Equal(t, map[string]any{
		"x": map[string]any{"field": "Acceleration", "type": "quantitative"},
		"y": map[string]any{"field": "Displacement", "type": "quantitative"},
	}, spec["encoding"])

	data, ok := spec["data"].(map[string]any)
	require.True(t, ok, "data should be a reference mapping")
	values, ok := data["values"].([]map[string]any)
	require.True(t, ok, "default transformer embeds values inline")
	assert.Len(t, values, cars.Len())

	// Nothing else sneaks into the top level.
	assert.Len(t, spec, 6)
}

func TestSpecInfersOmittedTypes(t *testing.T) {
	c := New(carsTable(t)).
		MarkPoint().
		EncodeX("Acceleration").
		EncodeY("Displacement").
		EncodeColor("Origin")

	spec, err := c.Spec()
	require.NoError(t, err)

	enc := spec["encoding"].(map[string]any)
	assert.Equal(t, "quantitative", enc["x"].(map[string]any)["type"])
	assert.Equal(t, "quantitative", enc["y"].(map[string]any)["type"])
	assert.Equal(t, "nominal", enc["color"].(map[string]any)["type"])
}

func TestSpecMarkProperties(t *testing.T) {
	c := New(carsTable(t)).
		MarkPoint(map[string]any{"filled": true, "opacity": 0.4}).
		EncodeX("Horsepower:Q").
		EncodeY("Miles_per_Gallon:Q")

	spec, err := c.Spec()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"type":    "point",
		"filled":  true,
		"opacity": 0.4,
	}, spec["mark"])
}

func TestSpecTitleSelectionConfig(t *testing.T) {
	c := New(carsTable(t)).
		MarkLine().
		EncodeX("Year:T").
		EncodeY("mean(Miles_per_Gallon)").
		Title("Fuel economy over time").
		Interactive("grid", true, true).
		WithConfig(map[string]any{"background": "#fff"})

	spec, err := c.Spec()
	require.NoError(t, err)

	assert.Equal(t, "Fuel economy over time", spec["title"])
	assert.Equal(t, map[string]any{"background": "#fff"}, spec["config"])
	assert.Equal(t, map[string]any{
		"grid": map[string]any{
			"bind":      "scales",
			"type":      "interval",
			"encodings": []string{"x", "y"},
		},
	}, spec["selection"])

	enc := spec["encoding"].(map[string]any)
	y := enc["y"].(map[string]any)
	assert.Equal(t, "mean", y["aggregate"])
	assert.Equal(t, "quantitative", y["type"])
}

func TestURLData(t *testing.T) {
	c := NewFromURL("https://example.com/cars.json").
		MarkPoint().
		EncodeX("Horsepower:Q").
		EncodeY("Miles_per_Gallon:Q")

	spec, err := c.Spec()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"url": "https://example.com/cars.json"}, spec["data"])
}

// ============================================================================
// Immutability
// ============================================================================

func TestBuilderIsCopyOnWrite(t *testing.T) {
	base := New(carsTable(t)).MarkPoint().EncodeX("Horsepower:Q").EncodeY("Acceleration:Q")

	derived := base.MarkBar().
		EncodeColor("Origin:N").
		Title("derived").
		Size(800, 600).
		Interactive("grid", true, false)

	baseSpec, err := base.Spec()
	require.NoError(t, err)
	derivedSpec, err := derived.Spec()
	require.NoError(t, err)

	assert.Equal(t, "point", baseSpec["mark"])
	assert.Equal(t, "bar", derivedSpec["mark"])
	assert.NotContains(t, baseSpec, "title")
	assert.NotContains(t, baseSpec, "selection")
	assert.Equal(t, 400, baseSpec["width"])
	assert.Equal(t, 800, derivedSpec["width"])
	assert.NotContains(t, baseSpec["encoding"], "color")

	// The dataset itself is shared, not copied.
	assert.Same(t, base.Data(), derived.Data())
}

// ============================================================================
// Round trip
// ============================================================================

func TestSpecJSONRoundTrip(t *testing.T) {
	c := New(carsTable(t)).
		MarkCircle().
		EncodeX("Acceleration:Q").
		EncodeY("Displacement:Q").
		Title("round trip")

	first, err := c.JSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(first, &decoded))

	second, err := json.Marshal(decoded)
	require.NoError(t, err)

	var redecoded map[string]any
	require.NoError(t, json.Unmarshal(second, &redecoded))

	assert.Equal(t, decoded, redecoded)
	assert.Equal(t, "circle", decoded["mark"])
	assert.Equal(t, SchemaURL, decoded["$schema"])
}

// ============================================================================
// Composition
// ============================================================================

func TestLayerSpec(t *testing.T) {
	cars := carsTable(t)
	points := New(cars).MarkPoint().EncodeX("Horsepower:Q").EncodeY("Miles_per_Gallon:Q")
	line := New(cars).MarkLine().EncodeX("Horsepower:Q").EncodeY("mean(Miles_per_Gallon)")

	spec, err := Layer(points, line).Spec()
	require.NoError(t, err)

	assert.Equal(t, SchemaURL, spec["$schema"])
	subs, ok := spec["layer"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, subs, 2)

	// Sub-specs carry their own mark/encoding but no $schema.
	assert.Equal(t, "point", subs[0]["mark"])
	assert.Equal(t, "line", subs[1]["mark"])
	assert.NotContains(t, subs[0], "$schema")
	assert.NotContains(t, subs[1], "$schema")
}

func TestConcatSpec(t *testing.T) {
	cars := carsTable(t)
	a := New(cars).MarkBar().EncodeX("Origin:N").EncodeY("count()")
	b := New(cars).MarkPoint().EncodeX("Horsepower:Q").EncodeY("Acceleration:Q")

	hspec, err := HConcat(a, b).Spec()
	require.NoError(t, err)
	assert.Len(t, hspec["hconcat"], 2)

	vspec, err := VConcat(a, b).Spec()
	require.NoError(t, err)
	assert.Len(t, vspec["vconcat"], 2)
}

func TestEmptyCompositionFails(t *testing.T) {
	_, err := Layer().Spec()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

// ============================================================================
// count() channel
// ============================================================================

func TestCountEncoding(t *testing.T) {
	c := New(carsTable(t)).MarkBar().EncodeX("Origin:N").EncodeY("count()")

	spec, err := c.Spec()
	require.NoError(t, err)

	y := spec["encoding"].(map[string]any)["y"].(map[string]any)
	assert.Equal(t, "count", y["aggregate"])
	assert.Equal(t, string(schema.Quantitative), y["type"])
	assert.NotContains(t, y, "field")
}
