package meta

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// ErrReadFailed reports that a frame's metadata could not be read.
var ErrReadFailed = errors.New("cannot read image metadata")

// dumpTimeout bounds a single iinfo call. Network mounts can hang; a stuck
// reader must not stall the whole batch.
const dumpTimeout = 10 * time.Second

// ReadDump runs iinfo -v against path and returns the raw textual dump.
func ReadDump(ctx context.Context, path string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, dumpTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "iinfo", "-v", path)
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%w: iinfo %q: %v", ErrReadFailed, path, err)
	}
	return string(out), nil
}

// ReadAttrs reads path's attribute set via iinfo.
func ReadAttrs(ctx context.Context, path string) ([]Attr, error) {
	dump, err := ReadDump(ctx, path)
	if err != nil {
		return nil, err
	}
	return ParseDump(dump), nil
}

// ParseDump extracts attribute triples from an iinfo -v dump. Attribute
// lines are indented "name: value" pairs; the geometry header and channel
// summary lines are skipped. Exported for testing without a real iinfo
// binary.
func ParseDump(dump string) []Attr {
	var attrs []Attr
	for _, line := range strings.Split(dump, "\n") {
		if !strings.HasPrefix(line, "    ") {
			continue
		}
		trimmed := strings.TrimSpace(line)
		idx := strings.Index(trimmed, ": ")
		if idx <= 0 {
			continue
		}
		name := trimmed[:idx]
		raw := strings.TrimSpace(trimmed[idx+2:])
		if name == "" || raw == "" {
			continue
		}
		attrs = append(attrs, Attr{
			Name:  name,
			Type:  inferType(raw),
			Value: unquote(raw),
		})
	}
	return attrs
}

// inferType classifies a dumped value as int, float, an array of either
// ("float[9]" for a color matrix), or string. Anything quoted or
// non-numeric stays a string.
func inferType(raw string) string {
	if strings.HasPrefix(raw, "\"") {
		return "string"
	}
	if _, err := strconv.Atoi(raw); err == nil {
		return "int"
	}
	if _, err := strconv.ParseFloat(raw, 64); err == nil {
		return "float"
	}
	if t, ok := inferArrayType(raw); ok {
		return t
	}
	return "string"
}

// inferArrayType classifies comma-separated numeric lists, as dumped for
// matrix and multiplier attributes: "0.9, -0.2, 0.1" -> "float[3]". A list
// with any non-numeric element is not an array.
func inferArrayType(raw string) (string, bool) {
	parts := strings.Split(raw, ",")
	if len(parts) < 2 {
		return "", false
	}
	allInt := true
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return "", false
		}
		if _, err := strconv.Atoi(p); err == nil {
			continue
		}
		allInt = false
		if _, err := strconv.ParseFloat(p, 64); err != nil {
			return "", false
		}
	}
	if allInt {
		return fmt.Sprintf("int[%d]", len(parts)), true
	}
	return fmt.Sprintf("float[%d]", len(parts)), true
}

func unquote(raw string) string {
	if len(raw) >= 2 && strings.HasPrefix(raw, "\"") && strings.HasSuffix(raw, "\"") {
		return raw[1 : len(raw)-1]
	}
	return raw
}
