// Package sequence discovers numbered frame sequences on disk and resolves
// the slate-anchored start frame and timecode for each encode.
//
// A sequence is the set of files in one directory sharing a common head,
// extension, and frame-number padding width. Grouping is by the exact
// (head, ext, pad) tuple: mixed padding widths are never merged, since they
// cannot share one printf-style frame pattern. Gaps and duplicate frame
// numbers inside a sequence's numeric range are accepted silently; only the
// extent and file count are reported.
package sequence
