package config

// This file implements CLI flag parsing and help text for both binaries.
// Override flags (e.g. --no-color) are applied after Parse so Config
// defaults hold unless the user passes the flag.

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses args (typically os.Args[1:]) into cfg for the editorial
// binary. On --help or --version it prints and exits. On error it returns
// non-nil (e.g. unknown flag, missing positional arg).
func ParseFlags(cfg *Config, version string, args []string) error {
	fs := flag.NewFlagSet("editorial", flag.ContinueOnError)
	fs.Usage = func() { printEditorialUsage(version) }

	var ov overrideFlags

	fs.StringVar(&cfg.OutputDir, "output-dir", "", "Output directory (default: <input_dir>/editorial)")
	fs.StringVar(&cfg.OutputDir, "o", "", "Same as --output-dir")
	fs.StringVar(&cfg.ShotFilter, "shot", "", "Process only sequences containing this string")
	fs.StringVar(&cfg.ShotFilter, "s", "", "Same as --shot")
	fs.StringVar(&cfg.LUTPath, "lut", cfg.LUTPath, "Show LUT file path")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "Frame rate")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Show what would be processed without encoding")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")

	defineSharedFlags(fs, &cfg.Verbose, &cfg.LogFile, &ov)
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run system diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")

	if err := fs.Parse(args); err != nil {
		return err
	}

	applyOverrides(&cfg.ColorMode, &ov)

	if ov.showHelp {
		printEditorialUsage(version)
		os.Exit(0)
	}
	if ov.showVersion {
		fmt.Fprintln(os.Stdout, "editorial v"+version)
		os.Exit(0)
	}

	if cfg.CheckOnly {
		return nil
	}
	rest := fs.Args()
	if len(rest) != 1 {
		return fmt.Errorf("need exactly one input directory")
	}
	cfg.InputDir = NormalizeDirArg(rest[0])
	if cfg.OutputDir == "" {
		cfg.OutputDir = cfg.InputDir + "/editorial"
	} else {
		cfg.OutputDir = NormalizeDirArg(cfg.OutputDir)
	}
	return nil
}

// ParseArchiveFlags parses args into cfg for the dng2exr binary.
func ParseArchiveFlags(cfg *ArchiveConfig, version string, args []string) error {
	fs := flag.NewFlagSet("dng2exr", flag.ContinueOnError)
	fs.Usage = func() { printArchiveUsage(version) }

	var ov overrideFlags

	fs.IntVar(&cfg.Compression, "compression", cfg.Compression, "DWAA compression level (30-100)")
	defineSharedFlags(fs, &cfg.Verbose, &cfg.LogFile, &ov)

	if err := fs.Parse(args); err != nil {
		return err
	}

	applyOverrides(&cfg.ColorMode, &ov)

	if ov.showHelp {
		printArchiveUsage(version)
		os.Exit(0)
	}
	if ov.showVersion {
		fmt.Fprintln(os.Stdout, "dng2exr v"+version)
		os.Exit(0)
	}

	rest := fs.Args()
	if len(rest) != 2 {
		return fmt.Errorf("need exactly input_dir and output_dir")
	}
	cfg.InputDir = NormalizeDirArg(rest[0])
	cfg.OutputDir = NormalizeDirArg(rest[1])
	return nil
}

// overrideFlags holds boolean flags applied after Parse. These either invert
// a default (forceColor/noColor -> ColorMode) or trigger exit (help, version).
type overrideFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineSharedFlags registers the display/logging flags common to both
// binaries: color, verbose, log file, version, help.
func defineSharedFlags(fs *flag.FlagSet, verbose *bool, logFile *string, ov *overrideFlags) {
	fs.BoolVar(&ov.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&ov.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(verbose, "verbose", false, "Verbose output (show tool command lines)")
	fs.BoolVar(verbose, "v", false, "Same as --verbose")
	fs.StringVar(logFile, "log", "", "Append logs to file")
	fs.StringVar(logFile, "l", "", "Same as --log")
	fs.BoolVar(&ov.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&ov.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&ov.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&ov.showHelp, "h", false, "Same as --help")
}

// applyOverrides copies override flag values into the config (e.g.
// noColor -> ColorNever). --no-color wins over --color.
func applyOverrides(mode *ColorMode, ov *overrideFlags) {
	if ov.noColor {
		*mode = ColorNever
	} else if ov.forceColor {
		*mode = ColorAlways
	}
}

// usageLine is one row of column-aligned help output.
type usageLine struct {
	flags string
	desc  string
}

func printEditorialUsage(version string) {
	printUsage([]usageLine{
		{"", "editorial v" + version + " — batch ACES EXR sequences to editorial DNxHR MOVs"},
		{"", ""},
		{"  editorial [OPTIONS] <input_dir>", ""},
		{"", ""},
		{"Selection", ""},
		{"  -s, --shot <string>", "Process only sequences containing this string"},
		{"", ""},
		{"Output", ""},
		{"  -o, --output-dir <dir>", "Output directory (default: <input_dir>/editorial)"},
		{"  --lut <path>", "Show LUT file path"},
		{"  --fps <rate>", "Frame rate (default: 24)"},
		{"  -d, --dry-run", "Show what would be processed without encoding"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output (show tool command lines)"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "System diagnostics (oiiotool, iinfo, ffmpeg, DNxHD)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	})
}

func printArchiveUsage(version string) {
	printUsage([]usageLine{
		{"", "dng2exr v" + version + " — batch DNG to EXR with full metadata preservation"},
		{"", ""},
		{"  dng2exr [OPTIONS] <input_dir> <output_dir>", ""},
		{"", ""},
		{"Output", ""},
		{"  --compression <30-100>", "DWAA compression level (default: 45)"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	})
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(lines []usageLine) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
