package util

import "fmt"

// FormatAudioDuration renders a duration in seconds as "m:ss", or "h:mm:ss"
// past one hour. 185 -> "3:05". Negative input clamps to "0:00".
func FormatAudioDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
