// Package vizlite builds declarative chart specifications for any dataset.
//
// Usage:
//
//	import (
//	    "github.com/vizlite-org/vizlite/chart"
//	    "github.com/vizlite-org/vizlite/dataset"
//	    "github.com/vizlite-org/vizlite/render"
//	)
//
//	cars, _ := dataset.Load("cars")
//	c := chart.New(cars).
//	    MarkCircle().
//	    EncodeX("Acceleration:Q").
//	    EncodeY("Displacement:Q")
//	r, _ := render.Get("html")
//	html, err := r.Render(c) // or c.JSON() for the raw spec
//
// A chart is an immutable description of a visualization (data reference,
// encoding channels, mark type, dimensions), independent of any rendering
// backend. Builders never touch the network or the filesystem; the render
// package decides how the spec and its data leave the process.
package vizlite
