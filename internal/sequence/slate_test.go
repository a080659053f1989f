package sequence

import (
	"errors"
	"testing"
)

func TestResolve_MissingSlateFrame(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "shot.1001.exr")
	touch(t, dir, "shot.1002.exr")

	seqs, err := Scan(dir, ".exr", "")
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(seqs) != 1 {
		t.Fatalf("got %d sequences, want 1", len(seqs))
	}

	_, err = seqs[0].Resolve(1000, 24, nil)
	if !errors.Is(err, ErrMissingSlate) {
		t.Fatalf("Resolve without slate frame: err = %v, want ErrMissingSlate", err)
	}
}

func TestResolve_SyntheticTimecode(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "shot.1000.exr")
	touch(t, dir, "shot.1001.exr")

	seqs, err := Scan(dir, ".exr", "")
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	// readTC returns "" — the embedded timecode is unavailable, so the
	// resolution falls back to frame-number arithmetic.
	res, err := seqs[0].Resolve(1000, 24, func(string) string { return "" })
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.StartFrame != 1000 {
		t.Errorf("StartFrame = %d, want 1000", res.StartFrame)
	}
	if res.Timecode != "00:00:41:16" {
		t.Errorf("Timecode = %q, want %q", res.Timecode, "00:00:41:16")
	}
}

func TestResolve_EmbeddedTimecodeWins(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "shot.1000.exr")

	seqs, err := Scan(dir, ".exr", "")
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	var readPath string
	res, err := seqs[0].Resolve(1000, 24, func(path string) string {
		readPath = path
		return "10:30:00:12"
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Timecode != "10:30:00:12" {
		t.Errorf("Timecode = %q, want embedded value verbatim", res.Timecode)
	}
	if readPath != res.SlatePath {
		t.Errorf("timecode read from %q, want slate path %q", readPath, res.SlatePath)
	}
}

func TestResolve_RepadsSlateFrame(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "shot.00100.exr")

	seqs, err := Scan(dir, ".exr", "")
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	// Slate frame 100 must be looked up at the sequence's own padding
	// width (00100), not a default four digits.
	res, err := seqs[0].Resolve(100, 24, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.SlatePath != seqs[0].FramePath(100) {
		t.Errorf("SlatePath = %q, want %q", res.SlatePath, seqs[0].FramePath(100))
	}
}
