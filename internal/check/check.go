// Package check provides system diagnostics (--check mode) and pre-pipeline
// dependency validation for oiiotool, iinfo, ffmpeg, and the DNxHD encoder.
package check

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/soupkitchen/dailies/internal/config"
)

// Sentinel errors returned by the CheckDeps functions when a required tool
// or file is missing.
var (
	ErrOiiotoolNotFound = errors.New("oiiotool not found on PATH")
	ErrIinfoNotFound    = errors.New("iinfo not found on PATH")
	ErrFfmpegNotFound   = errors.New("ffmpeg not found on PATH")
	ErrDNxHDUnusable    = errors.New("ffmpeg found but DNxHD test encode failed")
	ErrLUTNotFound      = errors.New("LUT file not found")
)

// Logger is the minimal logging interface needed by RunCheck. Defined here
// (rather than importing the logging package) so that check remains
// dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck runs the interactive --check flow: prints availability of
// oiiotool (with OCIO support), iinfo, ffmpeg, and the DNxHD encoder.
// Informational only; it does not stop on failure.
func RunCheck(cfg *config.Config, log Logger) {
	log.Info("=== System Check ===")

	checkOiiotool(log)
	checkIinfo(log)
	checkFfmpeg(log)
	checkDNxHD(cfg, log)
	checkLUT(cfg, log)
}

// checkOiiotool verifies oiiotool is on PATH and logs its version line.
func checkOiiotool(log Logger) {
	if _, err := exec.LookPath("oiiotool"); err != nil {
		log.Error("oiiotool not found")
		return
	}
	out, err := exec.Command("oiiotool", "--version").Output()
	if err != nil {
		log.Warn("oiiotool found but --version failed: %v", err)
		return
	}
	log.Success("oiiotool: %s", firstLine(string(out)))
}

// checkIinfo reports iinfo availability. Missing iinfo is a warning only:
// timecode reads degrade to the synthetic fallback.
func checkIinfo(log Logger) {
	if _, err := exec.LookPath("iinfo"); err != nil {
		log.Warn("iinfo not found (embedded timecodes unavailable, synthetic fallback only)")
		return
	}
	log.Success("iinfo: found")
}

// checkFfmpeg verifies ffmpeg is on PATH and logs its version string.
func checkFfmpeg(log Logger) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		log.Error("ffmpeg not found")
		return
	}
	out, err := exec.Command("ffmpeg", "-version").Output()
	if err != nil {
		log.Warn("ffmpeg found but -version failed: %v", err)
		return
	}
	log.Success("ffmpeg: %s", firstLine(string(out)))
}

// checkDNxHD runs a minimal DNxHR encode to verify the encoder works with
// the configured profile and pixel format.
func checkDNxHD(cfg *config.Config, log Logger) {
	log.Info("Testing DNxHD encoder (%s)...", cfg.DNxHRProfile)
	if runSilent("ffmpeg", dnxhdTestArgs(cfg)...) {
		log.Success("DNxHD encoder works")
	} else {
		log.Error("DNxHD test encode failed")
	}
}

// checkLUT reports whether the configured show LUT exists.
func checkLUT(cfg *config.Config, log Logger) {
	if _, err := os.Stat(cfg.LUTPath); err != nil {
		log.Warn("LUT not found: %s", cfg.LUTPath)
		return
	}
	log.Success("LUT: %s", cfg.LUTPath)
}

// CheckDeps is the editorial pre-pipeline validation: oiiotool and ffmpeg
// must be on PATH, the DNxHD encoder must pass a short test encode, and
// (except on dry runs) the show LUT must exist. iinfo is not required;
// its absence only disables embedded-timecode reads.
func CheckDeps(cfg *config.Config) error {
	if _, err := exec.LookPath("oiiotool"); err != nil {
		return ErrOiiotoolNotFound
	}
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return ErrFfmpegNotFound
	}
	if !runSilent("ffmpeg", dnxhdTestArgs(cfg)...) {
		return ErrDNxHDUnusable
	}
	if !cfg.DryRun {
		if _, err := os.Stat(cfg.LUTPath); err != nil {
			return fmt.Errorf("%w: %s", ErrLUTNotFound, cfg.LUTPath)
		}
	}
	return nil
}

// CheckArchiveDeps is the archival pre-pipeline validation: both oiiotool
// (the writer) and iinfo (the attribute reader) are required.
func CheckArchiveDeps() error {
	if _, err := exec.LookPath("oiiotool"); err != nil {
		return ErrOiiotoolNotFound
	}
	if _, err := exec.LookPath("iinfo"); err != nil {
		return ErrIinfoNotFound
	}
	return nil
}

// --- internal helpers ---

// dnxhdTestArgs returns the ffmpeg arguments for a minimal DNxHR test
// encode at the configured profile. Shared by checkDNxHD and CheckDeps.
func dnxhdTestArgs(cfg *config.Config) []string {
	return []string{
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", "color=black:s=1920x1080:d=0.1:r=24",
		"-c:v", "dnxhd",
		"-profile:v", cfg.DNxHRProfile,
		"-pix_fmt", cfg.PixFmt,
		"-f", "null", "-",
	}
}

// runSilent runs a command and returns true if it exits with status 0.
// Both stdout and stderr are discarded.
func runSilent(name string, args ...string) bool {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, "\n"); idx > 0 {
		s = s[:idx]
	}
	return s
}
