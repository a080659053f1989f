// Package ffmpeg builds and executes the DNxHR encode stage: graded
// intermediate frames in, one editorial MOV out. The argument builder and
// the burn-in filter chain are pure functions; execution captures stderr
// for failure diagnostics.
package ffmpeg
