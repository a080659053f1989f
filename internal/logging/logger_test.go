package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soupkitchen/dailies/internal/config"
)

func TestNewLogger_ColorNever(t *testing.T) {
	log, err := NewLogger(config.ColorNever, "")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	defer log.Close()

	if Red != "" || Green != "" || NC != "" {
		t.Error("color codes should be empty with colors disabled")
	}
}

func TestNewLogger_ColorAlways(t *testing.T) {
	log, err := NewLogger(config.ColorAlways, "")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	defer log.Close()

	if Red == "" || NC == "" {
		t.Error("color codes should be set with colors forced")
	}

	// Reset for other tests in the package.
	if _, err := NewLogger(config.ColorNever, ""); err != nil {
		t.Fatal(err)
	}
}

func TestLogger_FileSink(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logs", "run.log")

	log, err := NewLogger(config.ColorNever, path)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	log.Info("first %s", "entry")
	log.Error("second entry")
	log.Debug(false, "suppressed")
	log.Debug(true, "shown")
	if err := log.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	content := string(data)

	for _, want := range []string{"[INFO] first entry", "[ERROR] second entry", "[DEBUG] shown"} {
		if !strings.Contains(content, want) {
			t.Errorf("log file missing %q:\n%s", want, content)
		}
	}
	if strings.Contains(content, "suppressed") {
		t.Error("non-verbose Debug line reached the log file")
	}

	// Re-opening appends rather than truncates.
	log2, err := NewLogger(config.ColorNever, path)
	if err != nil {
		t.Fatal(err)
	}
	log2.Info("third entry")
	log2.Close()

	data, err = os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "first entry") || !strings.Contains(string(data), "third entry") {
		t.Error("log file should append across logger instances")
	}
}

func TestNewLogger_BadLogPath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	if err := os.WriteFile(blocker, []byte{}, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewLogger(config.ColorNever, filepath.Join(blocker, "run.log")); err == nil {
		t.Error("log path under a regular file: want error")
	}
}
