package oiio

import (
	"github.com/soupkitchen/dailies/internal/meta"
)

// ColorJob describes one color-stage invocation over a whole frame range.
type ColorJob struct {
	InputPattern  string // printf-style source pattern, e.g. ".../shot.%04d.exr".
	SourceSpace   string // e.g. "ACES2065-1".
	LogSpace      string // e.g. "ARRI LogC4".
	LUTPath       string // show LUT applied after the log conversion.
	OutputPattern string // scratch pattern for intermediates, e.g. ".../graded.%04d.png".
}

// BuildColorArgs constructs the oiiotool argument slice for the fixed
// three-step transform: source space -> camera log space -> show LUT,
// written at 16-bit integer precision.
func BuildColorArgs(job ColorJob) []string {
	return []string{
		"oiiotool",
		job.InputPattern,
		"--colorconvert", job.SourceSpace, job.LogSpace,
		"--ociofiletransform", job.LUTPath,
		"-d", "uint16",
		"-o", job.OutputPattern,
	}
}

// BuildConvertArgs constructs the oiiotool argument slice for one archival
// conversion. Attributes carry over by default; the colliding namespaces
// are erased and re-added under their rewritten names with their dumped
// types ("--attrib:type=float[9]" for a matrix), then the output is
// written at half-float precision with the rewrite's compression setting.
func BuildConvertArgs(input, output string, rw meta.Rewrite) []string {
	args := []string{"oiiotool", input}

	for _, p := range meta.CollidingPrefixes() {
		args = append(args, "--eraseattrib", p+".*")
	}

	for _, a := range rw.Renamed {
		switch a.Type {
		case "string":
			args = append(args, "--sattrib", a.Name, a.Value)
		default:
			args = append(args, "--attrib:type="+a.Type, a.Name, a.Value)
		}
	}

	args = append(args,
		"-d", "half",
		"--compression", rw.Compression,
		"-o", output,
	)
	return args
}
