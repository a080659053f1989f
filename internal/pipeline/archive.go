package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/soupkitchen/dailies/internal/config"
	"github.com/soupkitchen/dailies/internal/display"
	"github.com/soupkitchen/dailies/internal/logging"
	"github.com/soupkitchen/dailies/internal/meta"
	"github.com/soupkitchen/dailies/internal/oiio"
)

// ErrNoInputFiles is the pre-flight failure for an archival run over a
// directory with no DNG files. Fatal: nothing would be converted.
var ErrNoInputFiles = errors.New("no DNG files found")

// ErrWriteFailed reports that oiiotool could not write an output EXR.
var ErrWriteFailed = errors.New("cannot write output")

// ListDNGs returns the DNG files directly inside dir (both .DNG and .dng),
// sorted by name. The listing is non-recursive: archival runs operate on
// one camera-roll directory at a time.
func ListDNGs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".DNG") || strings.HasSuffix(name, ".dng") {
			files = append(files, filepath.Join(dir, name))
		}
	}
	sort.Strings(files)
	return files, nil
}

// RunArchive is the archival batch entry point: convert every DNG in the
// input directory to EXR with full metadata preservation. Returns an error
// only for the empty-input pre-flight case; per-file failures are counted.
func RunArchive(ctx context.Context, cfg *config.ArchiveConfig, log *logging.Logger) (RunStats, error) {
	var stats RunStats
	start := time.Now()

	files, err := ListDNGs(cfg.InputDir)
	if err != nil {
		return stats, err
	}
	if len(files) == 0 {
		return stats, fmt.Errorf("%w in %s", ErrNoInputFiles, cfg.InputDir)
	}

	stats.Total = len(files)
	logArchiveHeader(cfg, log, &stats)

	for i, path := range files {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		outputPath := outputEXRPath(cfg.OutputDir, path)
		if err := convertFile(ctx, cfg, log, path, outputPath); err != nil {
			stats.Failed++
			log.Error("  FAILED: %s - %v", filepath.Base(path), err)
		} else {
			stats.Processed++
		}

		logProgress(log, &stats, start)
	}

	stats.Elapsed = time.Since(start)
	logArchiveSummary(log, &stats)
	return stats, nil
}

// convertFile converts one DNG: read the full attribute set, rewrite
// colliding namespaces, and write the EXR through oiiotool.
func convertFile(
	ctx context.Context,
	cfg *config.ArchiveConfig,
	log *logging.Logger,
	inputPath, outputPath string,
) error {
	attrs, err := meta.ReadAttrs(ctx, inputPath)
	if err != nil {
		return err
	}

	rw := meta.RewriteAttrs(attrs, fmt.Sprintf("dwaa:%d", cfg.Compression))
	args := oiio.BuildConvertArgs(inputPath, outputPath, rw)
	log.Debug(cfg.Verbose, "  %s", strings.Join(args, " "))

	if r := oiio.Run(ctx, args, "", cfg.Verbose); r.Err != nil {
		logStderr(log, r.Stderr)
		return fmt.Errorf("%w: oiiotool: %v", ErrWriteFailed, r.Err)
	}
	if _, err := os.Stat(outputPath); err != nil {
		return fmt.Errorf("%w: %s", ErrOutputNotCreated, outputPath)
	}
	return nil
}

// outputEXRPath maps a source file into outputDir with its extension
// replaced by .exr, preserving the base filename.
func outputEXRPath(outputDir, inputPath string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outputDir, stem+".exr")
}

// logProgress reports every 10 completed files and on the last file:
// percent, counts, rate, and an ETA from current throughput.
func logProgress(log *logging.Logger, stats *RunStats, start time.Time) {
	done := stats.Processed + stats.Failed
	if done%10 != 0 && done != stats.Total {
		return
	}

	percent := done * 100 / stats.Total
	elapsed := time.Since(start)

	rate := 0.0
	if elapsed > 0 {
		rate = float64(stats.Processed) / elapsed.Seconds()
	}
	eta := time.Duration(0)
	if rate > 0 {
		eta = time.Duration(float64(stats.Remaining())/rate) * time.Second
	}

	log.Info("  [%3d%%] %d / %d files  (%.1f fps, ETA: %s)",
		percent, stats.Processed, stats.Total, rate, display.FormatClock(eta))
}

func logArchiveHeader(cfg *config.ArchiveConfig, log *logging.Logger, stats *RunStats) {
	log.Info("Input:       %s", cfg.InputDir)
	log.Info("Output:      %s", cfg.OutputDir)
	log.Info("Files:       %d DNG files", stats.Total)
	log.Info("Compression: DWAA level %d", cfg.Compression)
	log.Info("Format:      half (16-bit float)")
	log.Info("Metadata:    all fields preserved (raw:*, oiio:* renamed to DNG:*)")
	fmt.Println()
	log.Info("Starting conversion...")
	fmt.Println()
}

func logArchiveSummary(log *logging.Logger, stats *RunStats) {
	fmt.Println()
	log.Info("==============================")
	if stats.Failed == 0 {
		log.Success("Conversion complete")
	} else {
		log.Warn("Conversion complete with %d errors", stats.Failed)
	}
	log.Info("Processed: %d files", stats.Processed)
	if stats.Failed > 0 {
		log.Info("Failed:    %d files", stats.Failed)
	}
	log.Info("Duration:  %s", display.FormatClock(stats.Elapsed))
	if stats.Elapsed > 0 {
		log.Info("Average:   %.2f fps", stats.Throughput())
	}
}
