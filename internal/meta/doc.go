// Package meta reads frame metadata through the iinfo tool and provides the
// EXR-safe attribute rewrite used by the archival converter.
//
// iinfo output is a textual dump, not a structured format; parsing is
// line-oriented and deliberately forgiving. A single dump call per frame
// replaces per-attribute tool invocations.
package meta
