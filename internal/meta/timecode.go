package meta

import (
	"context"
	"regexp"
)

// reTimecode matches an embedded timecode attribute in an iinfo dump:
// HH:MM:SS:FF or the drop-frame HH:MM:SS;FF variant, optionally quoted.
var reTimecode = regexp.MustCompile(`(?i)timecode[:\s]+"?(\d{2}:\d{2}:\d{2}[:;]\d{2})"?`)

// ReadTimecode returns the timecode embedded in path's metadata, or "" when
// the tool is unavailable, times out, or the dump carries no timecode.
// Failures never abort: callers fall back to a synthetic timecode.
func ReadTimecode(ctx context.Context, path string) string {
	dump, err := ReadDump(ctx, path)
	if err != nil {
		return ""
	}
	return ExtractTimecode(dump)
}

// ExtractTimecode pattern-matches a timecode out of a raw metadata dump.
func ExtractTimecode(dump string) string {
	m := reTimecode.FindStringSubmatch(dump)
	if m == nil {
		return ""
	}
	return m[1]
}
