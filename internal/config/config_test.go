package config

import (
	"strings"
	"testing"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/renders/show/", "/renders/show"},
		{"/renders/show///", "/renders/show"},
		{"/renders/show", "/renders/show"},
		{"/", "/"},
		{"relative/", "relative"},
	}
	for _, tt := range tests {
		if got := NormalizeDirArg(tt.in); got != tt.want {
			t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseFlags(t *testing.T) {
	cfg := DefaultConfig()
	err := ParseFlags(&cfg, "test", []string{"-s", "ACD1000", "--fps", "25", "/renders/show/"})
	if err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}

	if cfg.InputDir != "/renders/show" {
		t.Errorf("InputDir = %q, want trailing slash stripped", cfg.InputDir)
	}
	if cfg.OutputDir != "/renders/show/editorial" {
		t.Errorf("OutputDir = %q, want default <input>/editorial", cfg.OutputDir)
	}
	if cfg.ShotFilter != "ACD1000" {
		t.Errorf("ShotFilter = %q, want %q", cfg.ShotFilter, "ACD1000")
	}
	if cfg.FPS != 25 {
		t.Errorf("FPS = %d, want 25", cfg.FPS)
	}
	// Untouched defaults survive parsing.
	if cfg.SlateFrame != 1000 || cfg.DNxHRProfile != "dnxhr_sq" {
		t.Errorf("defaults changed: slate=%d profile=%q", cfg.SlateFrame, cfg.DNxHRProfile)
	}
}

func TestParseFlags_ExplicitOutputDir(t *testing.T) {
	cfg := DefaultConfig()
	err := ParseFlags(&cfg, "test", []string{"-o", "/delivery/out/", "/renders/show"})
	if err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if cfg.OutputDir != "/delivery/out" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "/delivery/out")
	}
}

func TestParseFlags_PositionalArgCount(t *testing.T) {
	cfg := DefaultConfig()
	if err := ParseFlags(&cfg, "test", nil); err == nil {
		t.Error("no positional arg: want error")
	}

	cfg = DefaultConfig()
	if err := ParseFlags(&cfg, "test", []string{"/a", "/b"}); err == nil {
		t.Error("two positional args: want error")
	}

	// --check needs no input directory.
	cfg = DefaultConfig()
	if err := ParseFlags(&cfg, "test", []string{"--check"}); err != nil {
		t.Errorf("--check without input dir: %v", err)
	}
}

func TestParseFlags_ColorOverrides(t *testing.T) {
	cfg := DefaultConfig()
	if err := ParseFlags(&cfg, "test", []string{"--color", "/in"}); err != nil {
		t.Fatal(err)
	}
	if cfg.ColorMode != ColorAlways {
		t.Errorf("--color: mode = %q, want always", cfg.ColorMode)
	}

	// --no-color wins when both are given.
	cfg = DefaultConfig()
	if err := ParseFlags(&cfg, "test", []string{"--color", "--no-color", "/in"}); err != nil {
		t.Fatal(err)
	}
	if cfg.ColorMode != ColorNever {
		t.Errorf("--color --no-color: mode = %q, want never", cfg.ColorMode)
	}
}

func TestParseArchiveFlags(t *testing.T) {
	cfg := DefaultArchiveConfig()
	err := ParseArchiveFlags(&cfg, "test", []string{"--compression", "60", "/cam/roll_a/", "/archive/out"})
	if err != nil {
		t.Fatalf("ParseArchiveFlags: %v", err)
	}
	if cfg.InputDir != "/cam/roll_a" || cfg.OutputDir != "/archive/out" {
		t.Errorf("dirs = %q, %q", cfg.InputDir, cfg.OutputDir)
	}
	if cfg.Compression != 60 {
		t.Errorf("Compression = %d, want 60", cfg.Compression)
	}

	cfg = DefaultArchiveConfig()
	if err := ParseArchiveFlags(&cfg, "test", []string{"/only-one"}); err == nil {
		t.Error("one positional arg: want error")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputDir = "/in"
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config: %v", err)
	}

	cfg.FPS = 0
	if err := cfg.Validate(); err == nil {
		t.Error("fps 0: want error")
	}

	cfg = DefaultConfig()
	cfg.ColorMode = "sometimes"
	if err := cfg.Validate(); err == nil {
		t.Error("bad color mode: want error")
	}

	cfg = DefaultConfig()
	cfg.CheckOnly = true
	if err := cfg.Validate(); err != nil {
		t.Errorf("check-only without input dir: %v", err)
	}
}

func TestArchiveConfigValidate(t *testing.T) {
	base := DefaultArchiveConfig()
	base.InputDir = "/in"
	base.OutputDir = "/out"

	tests := []struct {
		name        string
		compression int
		wantErr     bool
	}{
		{"default", 45, false},
		{"lower bound", 30, false},
		{"upper bound", 100, false},
		{"below range", 29, true},
		{"above range", 101, true},
		{"zero", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			cfg.Compression = tt.compression
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() with compression %d: err = %v, wantErr %v", tt.compression, err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), "30-100") {
				t.Errorf("error %q should state the valid range", err)
			}
		})
	}

	cfg := base
	cfg.OutputDir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("missing output dir: want error")
	}
}
