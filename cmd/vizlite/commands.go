package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/vizlite-org/vizlite/chart"
	"github.com/vizlite-org/vizlite/dataset"
	"github.com/vizlite-org/vizlite/render"
	"github.com/vizlite-org/vizlite/schema"
	"github.com/vizlite-org/vizlite/theme"
)

// ============================================================================
// COMMANDS
// ============================================================================

// chartFlags are the shared chart-construction flags.
type chartFlags struct {
	Dataset string `short:"d" help:"Built-in dataset name (see 'vizlite datasets')"`
	File    string `short:"f" help:"CSV or JSON data file (overrides --dataset)" type:"existingfile"`

	X     string `short:"x" help:"X channel shorthand, e.g. 'Acceleration:Q'"`
	Y     string `short:"y" help:"Y channel shorthand, e.g. 'Displacement:Q'"`
	Color string `help:"Color channel shorthand"`
	Size  string `help:"Size channel shorthand"`

	Mark   string `short:"m" default:"point" help:"Mark type (point, circle, bar, line, ...)"`
	Width  int    `default:"400" help:"Chart width in pixels"`
	Height int    `default:"300" help:"Chart height in pixels"`
	Title  string `help:"Chart title"`

	Theme     string `env:"VIZLITE_THEME" help:"Theme name to apply"`
	ThemeFile string `help:"YAML theme file to load and apply" type:"existingfile"`
}

// loadTable resolves the data flags into a Table.
func (cf *chartFlags) loadTable() (*dataset.Table, error) {
	if cf.File != "" {
		data, err := os.ReadFile(cf.File)
		if err != nil {
			return nil, fmt.Errorf("failed to read data file: %w", err)
		}
		name := strings.TrimSuffix(filepath.Base(cf.File), filepath.Ext(cf.File))
		if strings.EqualFold(filepath.Ext(cf.File), ".json") {
			return dataset.FromJSON(name, data)
		}
		return dataset.FromCSV(name, data)
	}
	if cf.Dataset != "" {
		return dataset.Load(cf.Dataset)
	}
	return nil, fmt.Errorf("either --dataset or --file is required")
}

// buildChart constructs the chart from the shared flags.
func (cf *chartFlags) buildChart() (*chart.Chart, error) {
	table, err := cf.loadTable()
	if err != nil {
		return nil, err
	}

	c := chart.New(table).Mark(cf.Mark).Size(cf.Width, cf.Height)
	if cf.Title != "" {
		c = c.Title(cf.Title)
	}
	if cf.X != "" {
		c = c.EncodeX(cf.X)
	}
	if cf.Y != "" {
		c = c.EncodeY(cf.Y)
	}
	if cf.Color != "" {
		c = c.EncodeColor(cf.Color)
	}
	if cf.Size != "" {
		c = c.EncodeSize(cf.Size)
	}

	if cf.ThemeFile != "" {
		name, err := theme.LoadFile(cf.ThemeFile)
		if err != nil {
			return nil, err
		}
		if cf.Theme == "" {
			cf.Theme = name
		}
	}
	if cf.Theme != "" {
		c, err = theme.Apply(c, cf.Theme)
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ── render ───────────────────────────────────────────────────────────────────

type RenderCmd struct {
	chartFlags

	Renderer    string `short:"r" default:"html" env:"VIZLITE_RENDERER" help:"Output renderer: html or json"`
	Transformer string `default:"inline" env:"VIZLITE_TRANSFORMER" help:"Data transformer: inline or file"`
	Out         string `short:"o" help:"Output file (default stdout)"`
}

func (cmd *RenderCmd) Run() error {
	c, err := cmd.buildChart()
	if err != nil {
		return err
	}

	tr, err := render.NewTransformer(cmd.Transformer, filepath.Dir(cmd.Out))
	if err != nil {
		return err
	}

	// Built-in renderers get the chosen transformer wired in; anything else
	// comes from the registry as registered.
	var r render.Renderer
	switch cmd.Renderer {
	case "html":
		hr := render.NewHTMLRenderer()
		hr.Transformer = tr
		r = hr
	case "json":
		r = &render.JSONRenderer{Indent: true, Transformer: tr}
	default:
		if r, err = render.Get(cmd.Renderer); err != nil {
			return err
		}
	}

	artifact, err := r.Render(c)
	if err != nil {
		return err
	}

	if cmd.Out == "" {
		_, err = os.Stdout.Write(artifact)
		return err
	}
	if err := os.WriteFile(cmd.Out, artifact, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	slog.Info("chart written", "path", cmd.Out, "renderer", cmd.Renderer, "bytes", len(artifact))
	return nil
}

// ── datasets ─────────────────────────────────────────────────────────────────

type DatasetsCmd struct{}

func (cmd *DatasetsCmd) Run() error {
	for _, name := range dataset.Names() {
		t, err := dataset.Load(name)
		if err != nil {
			return err
		}
		fmt.Printf("%-20s %5d rows  %2d columns\n", name, t.Len(), len(t.Columns()))
	}
	return nil
}

// ── inspect ──────────────────────────────────────────────────────────────────

type InspectCmd struct {
	Dataset string `short:"d" help:"Built-in dataset name"`
	File    string `short:"f" help:"CSV or JSON data file" type:"existingfile"`
}

func (cmd *InspectCmd) Run() error {
	cf := chartFlags{Dataset: cmd.Dataset, File: cmd.File}
	table, err := cf.loadTable()
	if err != nil {
		return err
	}

	types := schema.Infer(table)
	columns := table.Columns()
	sort.Strings(columns)

	fmt.Printf("%s: %d rows\n", table.Name(), table.Len())
	for _, col := range columns {
		fmt.Printf("  %-24s %s\n", col, types[col])
	}
	return nil
}

// ── serve ────────────────────────────────────────────────────────────────────

type ServeCmd struct {
	chartFlags

	Addr  string `default:"localhost:8000" env:"VIZLITE_ADDR" help:"Listen address"`
	Watch bool   `short:"w" help:"Re-render when --file changes"`
}

func (cmd *ServeCmd) Run() error {
	// Fail fast on bad flags before binding the port.
	if _, err := cmd.buildChart(); err != nil {
		return err
	}
	if cmd.Watch && cmd.File == "" {
		return fmt.Errorf("--watch requires --file")
	}

	opts := []render.ServerOption{
		render.WithAddr(cmd.Addr),
		render.WithLogger(slog.Default()),
	}
	if cmd.Watch {
		opts = append(opts, render.WithWatch(cmd.File))
	}

	server := render.NewServer(func() (*chart.Chart, error) {
		return cmd.buildChart()
	}, opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.ListenAndServe(ctx)
}
