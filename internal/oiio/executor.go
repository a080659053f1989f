package oiio

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
)

// ExecResult holds the outcome of a single oiiotool invocation.
type ExecResult struct {
	Stderr string
	Err    error
}

// Run executes an oiiotool command built by one of the Build functions.
// When ocioConfig is non-empty it is exported as $OCIO so the built-in ACES
// config (and its camera input transforms) resolve. Stderr is captured for
// diagnostics; when verbose it is also tee'd to os.Stderr in real time.
func Run(ctx context.Context, args []string, ocioConfig string, verbose bool) ExecResult {
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	if ocioConfig != "" {
		cmd.Env = append(os.Environ(), "OCIO="+ocioConfig)
	}

	var stderrBuf bytes.Buffer
	if verbose {
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()
	return ExecResult{
		Stderr: stderrBuf.String(),
		Err:    err,
	}
}
