package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/utxo-foundation/entries-publisher/internal/adapters/elasticsearch"
	"github.com/utxo-foundation/entries-publisher/internal/adapters/schemasource"
	"github.com/utxo-foundation/entries-publisher/internal/adapters/sitestore"
	"github.com/utxo-foundation/entries-publisher/internal/adapters/yamlsource"
	"github.com/utxo-foundation/entries-publisher/internal/app"
	"github.com/utxo-foundation/entries-publisher/internal/common"
	"github.com/utxo-foundation/entries-publisher/internal/config"
	"github.com/utxo-foundation/entries-publisher/internal/ports"
)

var CLI struct {
	Source  string `short:"s" help:"Source entries directory (overrides SOURCE_DIR)"`
	Silent  bool   `help:"Suppress the startup banner"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Build struct {
		Out string `short:"o" help:"Output directory (overrides PUBLISH_OUTPUT_DIR)"`
	} `cmd:"" default:"1" help:"Load the source tree and publish the full output bundle"`

	Check struct{} `cmd:"" help:"Load and validate the source tree without publishing"`
}

func main() {
	kctx := kong.Parse(&CLI)

	// Load configuration first to determine logging mode
	cfg := config.MustLoad()

	// CLI flags take precedence over the environment
	if CLI.Source != "" {
		cfg.Source.Dir = CLI.Source
	}
	if CLI.Build.Out != "" {
		cfg.Publish.OutputDir = CLI.Build.Out
	}
	if CLI.Silent {
		cfg.Application.Silent = true
	}

	// Configure logging based on mode
	level := slog.LevelInfo
	if cfg.Application.Mode.IsDevelopment() || CLI.Verbose {
		level = slog.LevelDebug
	}
	var logger *slog.Logger
	if cfg.Application.Mode.IsDevelopment() {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		}))
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		}))
	}
	slog.SetDefault(logger)

	if !cfg.Application.Silent {
		common.PrintBanner()
	}

	logger.Info("configuration loaded",
		"mode", cfg.Application.Mode,
		"sourceDir", cfg.Source.Dir,
		"outputDir", cfg.Publish.OutputDir,
		"baseURL", cfg.Publish.BaseURL,
		"schemaVersion", cfg.Schema.DefaultVersion,
		"searchExport", cfg.Elasticsearch.IsConfigured(),
	)

	ctx := config.WithConfig(context.Background(), cfg)

	// Initialize source loader
	loader, err := yamlsource.New(ctx)
	if err != nil {
		logger.Error("failed to create loader", "error", err)
		os.Exit(1)
	}

	store := sitestore.New()
	schemas := schemasource.New(ctx)

	// The search export is optional; it only runs when a backend is configured
	var search ports.SearchIndex
	if cfg.Elasticsearch.IsConfigured() {
		esClient, err := elasticsearch.New(ctx)
		if err != nil {
			logger.Error("failed to create elasticsearch client", "error", err)
			os.Exit(1)
		}
		search = esClient
		logger.Info("elasticsearch client initialized")
	}

	publisher := app.NewPublisherService(ctx, loader, store, schemas, search, elasticsearch.RecordIndexMapping)
	logger.Info("publisher service initialized")

	switch kctx.Command() {
	case "build":
		if err := publisher.Load(ctx); err != nil {
			logger.Error("load failed", "error", err)
			os.Exit(1)
		}
		if err := publisher.Build(ctx, cfg.Publish.OutputDir); err != nil {
			logger.Error("build failed", "error", err)
			os.Exit(1)
		}
		logger.Info("publish completed", "outDir", cfg.Publish.OutputDir)

	case "check":
		if err := publisher.Load(ctx); err != nil {
			logger.Error("check failed", "error", err)
			os.Exit(1)
		}
		for _, entry := range publisher.Entries() {
			records := 0
			for _, specType := range entry.SpecTypes() {
				records += entry.Specs[specType].Len()
			}
			logger.Info("entry ok",
				"entryID", entry.ID,
				"specs", len(entry.Specs),
				"records", records,
			)
		}
		logger.Info("check completed", "entries", len(publisher.Entries()))
	}
}
