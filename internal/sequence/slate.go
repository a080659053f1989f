package sequence

import (
	"errors"
	"fmt"
	"os"
)

// ErrMissingSlate reports that a sequence lacks the required slate frame.
// Editorial MOVs must include the slate, so the sequence is skipped.
var ErrMissingSlate = errors.New("slate frame not found")

// Resolution carries the encode parameters derived from the slate frame.
// StartFrame is always the slate frame number; the sequence's own Start/End
// describe the true extent but never move the encode start.
type Resolution struct {
	StartFrame int
	Timecode   string
	SlatePath  string
}

// TimecodeFunc reads an embedded timecode from a frame file, returning ""
// when none is available. Failures never abort resolution; they fall back
// to the synthetic timecode.
type TimecodeFunc func(path string) string

// Resolve checks that the slate frame exists as a physical file and returns
// the start frame and timecode to encode with. The timecode is the slate
// frame's embedded value when readTC finds one, otherwise synthesized from
// the slate frame number and fps.
func (s Sequence) Resolve(slateFrame, fps int, readTC TimecodeFunc) (Resolution, error) {
	path := s.FramePath(slateFrame)
	if _, err := os.Stat(path); err != nil {
		return Resolution{}, fmt.Errorf("%w: %s", ErrMissingSlate, path)
	}

	tc := ""
	if readTC != nil {
		tc = readTC(path)
	}
	if tc == "" {
		tc = Timecode(slateFrame, fps)
	}

	return Resolution{
		StartFrame: slateFrame,
		Timecode:   tc,
		SlatePath:  path,
	}, nil
}
