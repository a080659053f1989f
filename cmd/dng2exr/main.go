// Command dng2exr is the batch entrypoint for the archival DNG to EXR
// converter. Every metadata field of the source frame is carried into the
// output, with colliding namespaces renamed for EXR compatibility.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/soupkitchen/dailies/internal/check"
	"github.com/soupkitchen/dailies/internal/config"
	"github.com/soupkitchen/dailies/internal/display"
	"github.com/soupkitchen/dailies/internal/logging"
	"github.com/soupkitchen/dailies/internal/pipeline"
)

// version is injected at build time via -ldflags.
var version = "1.0.0-dev"

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.DefaultArchiveConfig()
	if err := config.ParseArchiveFlags(&cfg, version, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "dng2exr: %v\n", err)
		return 1
	}

	// Pre-flight validation is fatal: nothing is converted on a bad
	// compression level or missing directories.
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "dng2exr: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(cfg.ColorMode, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dng2exr: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintHeader("DNG to EXR Batch Conversion (Full Metadata Preservation)")

	if fi, err := os.Stat(cfg.InputDir); err != nil {
		log.Error("Input directory not found: %s", cfg.InputDir)
		return 1
	} else if !fi.IsDir() {
		log.Error("Input path is not a directory: %s", cfg.InputDir)
		return 1
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		log.Error("Cannot create output directory: %s", cfg.OutputDir)
		return 1
	}

	if err := check.CheckArchiveDeps(); err != nil {
		log.Error("%v", err)
		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, stopping...")
		cancel()
	}()

	stats, err := pipeline.RunArchive(ctx, &cfg, log)
	if err != nil {
		log.Error("%v", err)
		return 1
	}

	if stats.Failed > 0 {
		return 1
	}
	return 0
}
