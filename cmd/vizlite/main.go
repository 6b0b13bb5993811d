package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

// ============================================================================
// VIZLITE CLI — Declarative charts from tabular data
// ============================================================================

var CLI struct {
	Verbose bool `short:"v" help:"Enable verbose logging"`

	Render   RenderCmd   `cmd:"" help:"Render a chart to HTML or raw spec JSON"`
	Datasets DatasetsCmd `cmd:"" help:"List built-in datasets"`
	Inspect  InspectCmd  `cmd:"" help:"Print inferred column types for a dataset"`
	Serve    ServeCmd    `cmd:"" help:"Serve a chart for browser preview"`
}

func main() {
	// Optional .env for VIZLITE_* defaults; absence is fine.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name("vizlite"),
		kong.Description("Build and render declarative chart specifications."),
		kong.UsageOnError(),
	)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if err := ctx.Run(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
