// Command editorial is the batch entrypoint for converting ACES EXR render
// sequences into editorial DNxHR MOVs.
//
// It parses flags, validates configuration and paths, and either runs
// system diagnostics (--check) or the two-stage encode pipeline.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/soupkitchen/dailies/internal/check"
	"github.com/soupkitchen/dailies/internal/config"
	"github.com/soupkitchen/dailies/internal/display"
	"github.com/soupkitchen/dailies/internal/logging"
	"github.com/soupkitchen/dailies/internal/pipeline"
)

// version is injected at build time via -ldflags. When built with plain
// "go build" it retains the default.
var version = "1.0.0-dev"

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "editorial: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "editorial: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(cfg.ColorMode, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "editorial: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	display.PrintHeader("Batch EXR to Editorial MOV Converter")

	if cfg.CheckOnly {
		check.RunCheck(&cfg, log)
		return 0
	}

	// Input must exist and be a directory before anything is processed.
	if fi, err := os.Stat(cfg.InputDir); err != nil || !fi.IsDir() {
		log.Error("Input directory not found: %s", cfg.InputDir)
		return 1
	}

	log.Info("Input:  %s", cfg.InputDir)
	log.Info("Output: %s", cfg.OutputDir)
	log.Info("LUT:    %s", filepath.Base(cfg.LUTPath))
	log.Info("FPS:    %d", cfg.FPS)
	if cfg.ShotFilter != "" {
		log.Info("Filter: %s", cfg.ShotFilter)
	}
	if cfg.DryRun {
		log.Warn("DRY RUN — no files will be written")
	}
	log.Info("")

	// Fail fast if oiiotool/ffmpeg/DNxHD or the LUT are unavailable.
	if err := check.CheckDeps(&cfg); err != nil {
		log.Error("%v", err)
		return 1
	}

	// Phase 3: Signal handling — cancel context on SIGINT/SIGTERM so the
	// batch stops between sequences without leaving partial output behind.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, stopping...")
		cancel()
	}()

	// Phase 4: Run the batch (scan → resolve → color → encode).
	stats, err := pipeline.Run(ctx, &cfg, log)
	if err != nil {
		log.Error("%v", err)
		return 1
	}

	if stats.Failed > 0 {
		return 1
	}
	return 0
}
