package ffmpeg

import (
	"fmt"
	"strings"
)

// Burnins is the text overlay set rendered into every editorial frame.
type Burnins struct {
	Vendor   string // top-left
	ShotID   string // top-center
	Date     string // top-right, submission date as YYYYMMDD
	Filename string // bottom-left, the output video filename
}

const burninFontSize = 18

// BuildFilterChain assembles the -vf filter string in the fixed order:
// scale to 1920 wide, center-crop to 1080, two half-transparent letterbox
// bars, the four text burn-ins, and the running frame counter bottom-right
// seeded at startFrame. The order matters: crop before the bars so the bar
// geometry is in output coordinates.
func BuildFilterChain(b Burnins, startFrame, letterboxH int) string {
	var sb strings.Builder

	sb.WriteString("scale=1920:-1,crop=1920:1080")
	fmt.Fprintf(&sb, ",drawbox=x=0:y=0:w=1920:h=%d:color=black@0.5:t=fill", letterboxH)
	fmt.Fprintf(&sb, ",drawbox=x=0:y=ih-%d:w=1920:h=%d:color=black@0.5:t=fill", letterboxH, letterboxH)
	fmt.Fprintf(&sb, ",drawtext=text='%s':fontsize=%d:fontcolor=white:x=10:y=8", escapeText(b.Vendor), burninFontSize)
	fmt.Fprintf(&sb, ",drawtext=text='%s':fontsize=%d:fontcolor=white:x=(w-text_w)/2:y=8", escapeText(b.ShotID), burninFontSize)
	fmt.Fprintf(&sb, ",drawtext=text='%s':fontsize=%d:fontcolor=white:x=w-text_w-10:y=8", escapeText(b.Date), burninFontSize)
	fmt.Fprintf(&sb, ",drawtext=text='%s':fontsize=%d:fontcolor=white:x=10:y=h-text_h-8", escapeText(b.Filename), burninFontSize)
	fmt.Fprintf(&sb, ",drawtext=text='%%{frame_num}':start_number=%d:fontsize=%d:fontcolor=white:x=w-text_w-10:y=h-text_h-8", startFrame, burninFontSize)

	return sb.String()
}

// escapeText guards burn-in strings against drawtext's quoting. The quoted
// form protects ':' and ',' and keeps backslashes literal; a literal quote
// must end the quoted run, so it becomes '\'' (close, escaped quote, reopen).
func escapeText(s string) string {
	return strings.ReplaceAll(s, `'`, `'\''`)
}
