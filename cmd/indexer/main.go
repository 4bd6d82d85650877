package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/TraistaruAndreea/Parallel-Inverted-Index/internal/manifest"
	"github.com/TraistaruAndreea/Parallel-Inverted-Index/internal/pipeline"
	"github.com/TraistaruAndreea/Parallel-Inverted-Index/pkg/config"
	"github.com/TraistaruAndreea/Parallel-Inverted-Index/pkg/fs"
	"github.com/TraistaruAndreea/Parallel-Inverted-Index/pkg/logger"
	"github.com/TraistaruAndreea/Parallel-Inverted-Index/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	manifestPath := flag.String("manifest", "", "path to the input file manifest (required)")
	mappers := flag.Int("mappers", 0, "number of mapper workers (overrides config)")
	reducers := flag.Int("reducers", 0, "number of reducer workers (overrides config)")
	outDir := flag.String("out", "", "output directory for letter artifacts (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *mappers > 0 {
		cfg.Pipeline.Mappers = *mappers
	}
	if *reducers > 0 {
		cfg.Pipeline.Reducers = *reducers
	}
	if *outDir != "" {
		cfg.Pipeline.OutputDir = *outDir
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}
	if *manifestPath == "" {
		fmt.Fprintln(os.Stderr, "usage: indexer -manifest <file> [-mappers N] [-reducers M] [-out DIR]")
		os.Exit(1)
	}

	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
	runID := uuid.NewString()
	ctx := logger.WithRunID(context.Background(), runID)
	log := logger.FromContext(ctx)

	m := metrics.New()
	if cfg.Metrics.Enabled {
		shutdown := metrics.StartServer(cfg.Metrics.Port, m)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				log.Error("metrics server shutdown failed", "error", err)
			}
		}()
	}

	files, err := manifest.Load(*manifestPath)
	if err != nil {
		log.Error("failed to load manifest", "error", err)
		os.Exit(1)
	}
	log.Info("starting indexing run",
		"run_id", runID,
		"manifest", *manifestPath,
		"files", len(files),
		"mappers", cfg.Pipeline.Mappers,
		"reducers", cfg.Pipeline.Reducers,
		"output_dir", cfg.Pipeline.OutputDir,
	)

	p, err := pipeline.New(pipeline.Config{
		Files:    files,
		Mappers:  cfg.Pipeline.Mappers,
		Reducers: cfg.Pipeline.Reducers,
		Source:   fs.NewLocal(),
		Sinks:    fs.NewArtifactDir(cfg.Pipeline.OutputDir),
		Metrics:  m,
	})
	if err != nil {
		log.Error("failed to build pipeline", "error", err)
		os.Exit(1)
	}
	if err := p.Run(ctx); err != nil {
		log.Error("pipeline run failed", "error", err)
		os.Exit(1)
	}

	log.Info("indexing run complete", "run_id", runID)
}
