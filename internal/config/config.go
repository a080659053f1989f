// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. Show-policy defaults (LUT, OCIO config, slate frame) match the
// legacy pipeline scripts for parity.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings for the editorial pipeline. It is
// populated by [DefaultConfig] and then mutated by [ParseFlags] before being
// passed (by pointer) to packages that need it. Show-policy fields carry the
// fixed values from the legacy scripts; keeping them on the config (rather
// than as package globals) keeps the resolver and encoder independently
// testable with substituted values.
type Config struct {
	// Paths (input from positional arg, output from -o).
	InputDir  string
	OutputDir string // Default: <InputDir>/editorial.

	// Sequence selection.
	ShotFilter string // Only process sequences whose filenames contain this substring.
	Extension  string // Fixed: ".exr".

	// Color stage.
	LUTPath     string // Show LUT (LogC4 -> Rec709 Gamma 2.4). Overridden by --lut.
	OCIOConfig  string // OCIO config identifier, exported as $OCIO for oiiotool.
	SourceSpace string // Fixed: "ACES2065-1".
	LogSpace    string // Fixed: "ARRI LogC4".

	// Encode stage.
	FPS          int    // Default: 24. Overridden by --fps.
	SlateFrame   int    // Fixed: 1000. Every encode starts at the slate.
	DNxHRProfile string // Fixed: "dnxhr_sq".
	PixFmt       string // Fixed: "yuv422p".
	Vendor       string // Burn-in vendor name.
	LetterboxH   int    // Letterbox bar height in pixels.

	// Scratch root for intermediate frames. Exists on all render machines
	// including the farm workers.
	ScratchRoot string

	// Behavior flags.
	DryRun bool

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults matching the legacy
// batch_exr_to_editorial script. Used as the base before [ParseFlags]
// applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		Extension:    ".exr",
		LUTPath:      "/Volumes/soupnas_02/Soupkitchen_Jobs/MNG/LUTS/v4_LUTs/v4_LUTs/post/mon_show_v4_logc4-r709g24_d65_33.cube",
		OCIOConfig:   "ocio://studio-config-v2.1.0_aces-v1.3_ocio-v2.3",
		SourceSpace:  "ACES2065-1",
		LogSpace:     "ARRI LogC4",
		FPS:          24,
		SlateFrame:   1000,
		DNxHRProfile: "dnxhr_sq",
		PixFmt:       "yuv422p",
		Vendor:       "soup kitchen films",
		LetterboxH:   35,
		ScratchRoot:  "/mnt/caches/cache_ffmpeg",
		ColorMode:    ColorAuto,
	}
}

// ArchiveConfig holds runtime settings for the dng2exr archival converter.
type ArchiveConfig struct {
	InputDir  string
	OutputDir string

	// Compression is the DWAA level written into each output EXR.
	// Valid range 30-100; default 45 as in the legacy script.
	Compression int

	Verbose   bool
	ColorMode ColorMode
	LogFile   string
}

// DefaultArchiveConfig returns an ArchiveConfig with legacy-script defaults.
func DefaultArchiveConfig() ArchiveConfig {
	return ArchiveConfig{
		Compression: 45,
		ColorMode:   ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum and range fields and, when not in CheckOnly mode,
// requires the input directory positional argument.
func (c *Config) Validate() error {
	if err := validateColorMode(c.ColorMode); err != nil {
		return err
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive (got %d)", c.FPS)
	}
	if c.CheckOnly {
		return nil
	}
	if c.InputDir == "" {
		return errors.New("need an input directory")
	}
	return nil
}

// Validate checks the compression range and required directories.
// An out-of-range level is fatal before any file is touched.
func (c *ArchiveConfig) Validate() error {
	if err := validateColorMode(c.ColorMode); err != nil {
		return err
	}
	if c.Compression < 30 || c.Compression > 100 {
		return fmt.Errorf("compression level must be 30-100, got %d", c.Compression)
	}
	if c.InputDir == "" || c.OutputDir == "" {
		return errors.New("need exactly input_dir and output_dir")
	}
	return nil
}

func validateColorMode(m ColorMode) error {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}
}
