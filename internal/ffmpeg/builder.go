package ffmpeg

import "strconv"

// EncodeJob describes one DNxHR encode over a graded intermediate sequence.
type EncodeJob struct {
	InputPattern string // scratch pattern, e.g. "<scratch>/graded.%04d.png".
	StartFrame   int    // resolved slate frame; first frame read and counter seed.
	FPS          int
	FilterChain  string // from BuildFilterChain.
	Profile      string // e.g. "dnxhr_sq".
	PixFmt       string // e.g. "yuv422p".
	Timecode     string // embedded output timecode.
	OutputPath   string
}

// Build constructs the complete ffmpeg argument slice for one encode.
// Thread counts are left unconstrained (-threads 0): the batch runs one
// tool at a time, so each invocation may use the whole machine.
func Build(job EncodeJob) []string {
	args := make([]string, 0, 32)

	// --- Preamble ---
	args = append(args, "ffmpeg", "-hide_banner", "-nostdin", "-y", "-threads", "0")

	// --- Input: image sequence at the slate start number ---
	args = append(args,
		"-framerate", strconv.Itoa(job.FPS),
		"-start_number", strconv.Itoa(job.StartFrame),
		"-i", job.InputPattern,
	)

	// --- Filter chain (scale, crop, letterbox, burn-ins) ---
	args = append(args, "-filter_threads", "0", "-vf", job.FilterChain)

	// --- Video codec ---
	args = append(args,
		"-c:v", "dnxhd",
		"-profile:v", job.Profile,
		"-pix_fmt", job.PixFmt,
	)

	// --- Timecode and Rec.709 color tags ---
	args = append(args,
		"-timecode", job.Timecode,
		"-color_primaries", "bt709",
		"-color_trc", "bt709",
		"-colorspace", "bt709",
	)

	// --- Container opts ---
	args = append(args, "-movflags", "+faststart")

	// --- Output ---
	args = append(args, job.OutputPath)

	return args
}
