// Package oiio builds and executes oiiotool commands: the per-sequence
// color-transform stage of the editorial pipeline and the archival DNG to
// EXR conversion. Argument construction and process execution are split so
// builders stay testable without the tool installed.
package oiio
