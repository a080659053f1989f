package sequence

import "fmt"

// Timecode converts a frame number to a non-drop-frame HH:MM:SS:FF string
// at the given frame rate.
func Timecode(frame, fps int) string {
	hours := frame / (fps * 3600)
	mins := (frame % (fps * 3600)) / (fps * 60)
	secs := (frame % (fps * 60)) / fps
	frames := frame % fps
	return fmt.Sprintf("%02d:%02d:%02d:%02d", hours, mins, secs, frames)
}
