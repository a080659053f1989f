// Package pipeline drives the two batch flows: editorial sequence encoding
// (scan, slate resolution, two-stage encode) and archival DNG to EXR
// conversion. Items are processed strictly one at a time; a failed item is
// counted and reported but never stops the batch.
package pipeline
