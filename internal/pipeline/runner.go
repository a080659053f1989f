package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/soupkitchen/dailies/internal/config"
	"github.com/soupkitchen/dailies/internal/display"
	"github.com/soupkitchen/dailies/internal/logging"
	"github.com/soupkitchen/dailies/internal/meta"
	"github.com/soupkitchen/dailies/internal/sequence"
)

// Run is the editorial batch entry point. It discovers sequences, processes
// each sequentially, and returns aggregate stats. A scan failure is fatal
// and returned; per-sequence failures are counted, and the caller maps
// stats.Failed onto the process exit status.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) (RunStats, error) {
	var stats RunStats
	start := time.Now()

	log.Info("Scanning for EXR sequences...")
	seqs, err := sequence.Scan(cfg.InputDir, cfg.Extension, cfg.ShotFilter)
	if err != nil {
		return stats, fmt.Errorf("sequence scan failed: %w", err)
	}
	if len(seqs) == 0 {
		log.Info("No EXR sequences found.")
		return stats, nil
	}

	stats.Total = len(seqs)
	log.Info("Found %d sequence(s)", stats.Total)
	fmt.Println()

	for i, seq := range seqs {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		processSequence(ctx, cfg, log, seq, &stats)
	}

	stats.Elapsed = time.Since(start)
	logSummary(log, &stats)
	return stats, nil
}

// processSequence handles one sequence: resolve slate -> encode -> count.
func processSequence(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	seq sequence.Sequence,
	stats *RunStats,
) {
	outputPath := filepath.Join(cfg.OutputDir, seq.Name()+".mov")

	log.Info("[%d/%d] %s", stats.Current, stats.Total, seq.Name())
	log.Info("  Input:  %s", seq.Pattern())
	log.Info("  Output: %s", outputPath)

	// --- Resolve slate frame and timecode ---
	res, err := seq.Resolve(cfg.SlateFrame, cfg.FPS, func(path string) string {
		return meta.ReadTimecode(ctx, path)
	})
	if err != nil {
		if errors.Is(err, sequence.ErrMissingSlate) {
			log.Error("SKIPPING: %s", seq.Name())
			log.Error("  %v", err)
			log.Error("  Editorial MOVs must include the slate frame.")
		} else {
			log.Error("Cannot resolve sequence: %v", err)
		}
		stats.Failed++
		fmt.Println()
		return
	}

	log.Info("  Frames: %d-%d (starting from slate)", res.StartFrame, seq.End)
	log.Info("  TC:     %s", res.Timecode)

	// --- Dry-run ---
	if cfg.DryRun {
		log.Success("[DRY RUN] Skipping encode")
		stats.Processed++
		fmt.Println()
		return
	}

	// --- Create output directory ---
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		log.Error("Cannot create output directory: %v", err)
		stats.Failed++
		fmt.Println()
		return
	}

	// --- Two-stage encode ---
	itemStart := time.Now()
	if err := encodeSequence(ctx, cfg, log, seq, res, outputPath); err != nil {
		log.Error("Encode failed: %v", err)
		os.Remove(outputPath)
		stats.Failed++
		fmt.Println()
		return
	}

	var size int64
	if fi, err := os.Stat(outputPath); err == nil {
		size = fi.Size()
	}
	stats.Processed++
	log.Success("Encoded in %ds (%s)", int(time.Since(itemStart).Seconds()), display.FormatBytes(size))
	fmt.Println()
}

func logSummary(log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	if stats.Failed == 0 {
		log.Success("Summary: %d succeeded, %d failed", stats.Processed, stats.Failed)
	} else {
		log.Warn("Summary: %d succeeded, %d failed", stats.Processed, stats.Failed)
	}
	log.Info("Duration: %s", display.FormatClock(stats.Elapsed))
}
