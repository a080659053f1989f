package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/soupkitchen/dailies/internal/config"
	"github.com/soupkitchen/dailies/internal/ffmpeg"
	"github.com/soupkitchen/dailies/internal/logging"
	"github.com/soupkitchen/dailies/internal/oiio"
	"github.com/soupkitchen/dailies/internal/sequence"
)

// Per-item encode failures. All are final for the item and non-fatal for
// the batch; there is no retry on a non-zero tool exit.
var (
	ErrColorStage       = errors.New("color stage failed")
	ErrEncodeStage      = errors.New("encode stage failed")
	ErrOutputNotCreated = errors.New("output file not created")
)

// encodeSequence runs the two-stage encode for one resolved sequence:
// oiiotool color transform into scratch intermediates, then the DNxHR
// encode. The scratch directory is created before stage 1 and removed on
// every exit path, success or failure.
func encodeSequence(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	seq sequence.Sequence,
	res sequence.Resolution,
	outputPath string,
) error {
	if err := os.MkdirAll(cfg.ScratchRoot, 0o755); err != nil {
		return fmt.Errorf("create scratch root %s: %w", cfg.ScratchRoot, err)
	}
	scratch, err := os.MkdirTemp(cfg.ScratchRoot, "editorial_encode_")
	if err != nil {
		return fmt.Errorf("create scratch dir: %w", err)
	}
	defer os.RemoveAll(scratch)

	// --- Stage 1: color transform over the whole frame range ---
	log.Render("  [1/2] Color: %s -> %s -> LUT...", cfg.SourceSpace, cfg.LogSpace)

	colorArgs := oiio.BuildColorArgs(oiio.ColorJob{
		InputPattern:  seq.Pattern(),
		SourceSpace:   cfg.SourceSpace,
		LogSpace:      cfg.LogSpace,
		LUTPath:       cfg.LUTPath,
		OutputPattern: filepath.Join(scratch, "graded.%04d.png"),
	})
	log.Debug(cfg.Verbose, "  %s", strings.Join(colorArgs, " "))

	if r := oiio.Run(ctx, colorArgs, cfg.OCIOConfig, cfg.Verbose); r.Err != nil {
		logStderr(log, r.Stderr)
		return fmt.Errorf("%w: oiiotool: %v", ErrColorStage, r.Err)
	}

	// --- Stage 2: DNxHR encode with burn-ins ---
	log.Render("  [2/2] Encoding DNxHR (%s)...", cfg.DNxHRProfile)

	job := ffmpeg.EncodeJob{
		InputPattern: filepath.Join(scratch, "graded.%04d.png"),
		StartFrame:   res.StartFrame,
		FPS:          cfg.FPS,
		FilterChain: ffmpeg.BuildFilterChain(ffmpeg.Burnins{
			Vendor:   cfg.Vendor,
			ShotID:   seq.ShotID(),
			Date:     time.Now().Format("20060102"),
			Filename: filepath.Base(outputPath),
		}, res.StartFrame, cfg.LetterboxH),
		Profile:    cfg.DNxHRProfile,
		PixFmt:     cfg.PixFmt,
		Timecode:   res.Timecode,
		OutputPath: outputPath,
	}
	log.Debug(cfg.Verbose, "  %s", strings.Join(ffmpeg.Build(job), " "))

	if r := ffmpeg.Execute(ctx, job, cfg.Verbose); r.Err != nil {
		logStderr(log, r.Stderr)
		return fmt.Errorf("%w: ffmpeg: %v", ErrEncodeStage, r.Err)
	}

	// Tools can report success without producing the file (e.g. full disk
	// caught by the muxer). Treat that as a failed item.
	if _, err := os.Stat(outputPath); err != nil {
		return fmt.Errorf("%w: %s", ErrOutputNotCreated, outputPath)
	}
	return nil
}

// logStderr surfaces the tail of a failed tool's stderr, capped at 20 lines.
func logStderr(log *logging.Logger, stderr string) {
	if stderr == "" {
		return
	}
	log.Error("Last tool output:")
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	start := 0
	if len(lines) > 20 {
		start = len(lines) - 20
	}
	for _, l := range lines[start:] {
		log.Error("  %s", l)
	}
}
